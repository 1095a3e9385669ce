package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fitbuddy/internal/client/store"
)

// ToggleTheme flips the dark-mode preference.
func (a *App) ToggleTheme(ctx context.Context) error {
	if err := a.store.Dispatch(ctx, store.ToggleTheme{}); err != nil {
		return err
	}

	if a.store.DarkMode() {
		fmt.Println("Dark mode on")
	} else {
		fmt.Println("Dark mode off")
	}
	return nil
}

// Profile prints the signed-in user's details, favorite count and theme.
func (a *App) Profile(ctx context.Context) error {
	auth := a.store.Auth()
	if !auth.IsAuthenticated || auth.User == nil {
		fmt.Println("Not signed in")
		return nil
	}

	theme := "light"
	if a.store.DarkMode() {
		theme = "dark"
	}

	fmt.Printf("Name:      %s\n", auth.User.Name)
	fmt.Printf("Username:  %s\n", auth.User.Username)
	fmt.Printf("Email:     %s\n", auth.User.Email)
	fmt.Printf("Favorites: %d\n", len(a.store.Favorites()))
	fmt.Printf("Theme:     %s\n", theme)
	return nil
}
