package store

import "github.com/dmitrijs2005/fitbuddy/internal/client/models"

// Command is a user intent dispatched into the store. Each variant maps to a
// transition of exactly one slice; transitions are applied atomically and in
// dispatch order.
type Command interface {
	isCommand()
}

// Login authenticates with the given credentials and, on success, persists
// the session. The demo credential policy lives in the auth provider; field
// validation happens in the presentation layer before dispatch.
type Login struct {
	Username string
	Password string
}

// Register creates a fresh account and an authenticated session.
type Register struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Logout clears the session in memory and in storage. It always succeeds
// from the caller's perspective.
type Logout struct{}

// ClearAuthError resets the auth error after the presentation layer has
// shown it once.
type ClearAuthError struct{}

// AddFavorite appends the exercise unless one with the same name is already
// favorited (idempotent).
type AddFavorite struct {
	Exercise models.Exercise
}

// RemoveFavorite removes the favorite with the given name, if any
// (idempotent).
type RemoveFavorite struct {
	Name string
}

// ToggleFavorite removes the exercise when favorited, appends it otherwise.
type ToggleFavorite struct {
	Exercise models.Exercise
}

// ToggleTheme flips the dark-mode preference.
type ToggleTheme struct{}

func (Login) isCommand()          {}
func (Register) isCommand()       {}
func (Logout) isCommand()         {}
func (ClearAuthError) isCommand() {}
func (AddFavorite) isCommand()    {}
func (RemoveFavorite) isCommand() {}
func (ToggleFavorite) isCommand() {}
func (ToggleTheme) isCommand()    {}
