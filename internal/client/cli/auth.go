package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fitbuddy/internal/client/store"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, validates the form, and dispatches a login
// intent. Validation failures are shown per field and never reach the store.
// An authentication failure is read back from auth state, shown once, and
// cleared.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if fe := ValidateLogin(username, string(password)); fe != nil {
		fmt.Print(fe.Format())
		return nil
	}

	if err := a.store.Dispatch(ctx, store.Login{Username: username, Password: string(password)}); err != nil {
		a.showAuthError(ctx)
		return nil
	}

	fmt.Println("Welcome, " + a.store.Auth().User.Name + "!")
	return nil
}

// Register prompts for the sign-up form and dispatches a registration
// intent. The demo backend never rejects a well-formed registration.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if fe := ValidateRegistration(name, username, email, string(password), string(confirm)); fe != nil {
		fmt.Print(fe.Format())
		return nil
	}

	cmd := store.Register{Name: name, Username: username, Email: email, Password: string(password)}
	if err := a.store.Dispatch(ctx, cmd); err != nil {
		a.showAuthError(ctx)
		return nil
	}

	fmt.Println("Account created. Welcome, " + name + "!")
	return nil
}

// Logout always succeeds from the user's point of view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Dispatch(ctx, store.Logout{}); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// showAuthError prints the stored auth failure once and clears it.
func (a *App) showAuthError(ctx context.Context) {
	if msg := a.store.Auth().Err; msg != "" {
		fmt.Println(msg)
	}
	_ = a.store.Dispatch(ctx, store.ClearAuthError{})
}
