// Package common defines shared constants and sentinel errors used across
// FitBuddy client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Catalog errors.
	ErrExerciseNotFound = errors.New("exercise not found")
)
