package cli

import (
	"regexp"
	"sort"
	"strings"
)

// Credential validation mirrors the FitBuddy sign-in rules. Field errors are
// surfaced to the user before any command reaches the store; they are never
// recorded in core state.

var (
	usernameRe  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
)

// FieldErrors maps field name to a human-readable message.
type FieldErrors map[string]string

// Format renders the errors one per line in stable field order.
func (fe FieldErrors) Format() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(fe[f])
		b.WriteString("\n")
	}
	return b.String()
}

// ValidateLogin checks the sign-in form. Returns nil when the input is valid.
func ValidateLogin(username, password string) FieldErrors {
	fe := FieldErrors{}

	if username == "" {
		fe["username"] = "Username is required"
	} else if len(username) < 3 {
		fe["username"] = "Username must be at least 3 characters"
	}

	if password == "" {
		fe["password"] = "Password is required"
	} else if len(password) < 6 {
		fe["password"] = "Password must be at least 6 characters"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

// ValidateRegistration checks the sign-up form. Returns nil when the input
// is valid.
func ValidateRegistration(name, username, email, password, confirm string) FieldErrors {
	fe := FieldErrors{}

	if name == "" {
		fe["name"] = "Name is required"
	} else if len(name) < 2 {
		fe["name"] = "Name must be at least 2 characters"
	}

	switch {
	case username == "":
		fe["username"] = "Username is required"
	case len(username) < 3:
		fe["username"] = "Username must be at least 3 characters"
	case !usernameRe.MatchString(username):
		fe["username"] = "Username can only contain letters, numbers, and underscores"
	}

	if email == "" {
		fe["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		fe["email"] = "Please enter a valid email"
	}

	switch {
	case password == "":
		fe["password"] = "Password is required"
	case len(password) < 6:
		fe["password"] = "Password must be at least 6 characters"
	case !uppercaseRe.MatchString(password):
		fe["password"] = "Password must contain at least one uppercase letter"
	case !digitRe.MatchString(password):
		fe["password"] = "Password must contain at least one number"
	}

	if confirm == "" {
		fe["confirmPassword"] = "Please confirm your password"
	} else if confirm != password {
		fe["confirmPassword"] = "Passwords must match"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}
