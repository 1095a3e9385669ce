// Package models defines the client-side data models of the FitBuddy app.
package models

// User is the identity record created on login or registration.
// It is immutable after creation and cleared on logout.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

// Session pairs a User with an opaque token. A session exists if and only if
// the auth slice is authenticated.
type Session struct {
	User  User
	Token string
}
