// Package api contains the outward-facing collaborators of the client:
// the authentication provider and the exercise catalog provider.
//
// The auth provider is a demo stand-in. It accepts any well-formed
// credentials and mints a locally signed token; it is explicitly not a
// security design. Input validation (minimum lengths etc.) is the
// presentation layer's job and happens before these calls.
package api

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthAPI issues sessions for login and registration.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, name, username, email, password string) (*models.Session, error)
}

// MockAuthAPI accepts any non-empty credentials and fabricates the user
// record the way the FitBuddy demo backend would: email derived from the
// username, display name capitalized.
type MockAuthAPI struct {
	signingKey []byte
	now        func() time.Time
}

func NewMockAuthAPI() *MockAuthAPI {
	key := make([]byte, 32)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(key)
	return &MockAuthAPI{signingKey: key, now: time.Now}
}

func (a *MockAuthAPI) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user := models.User{
		ID:       "1",
		Username: username,
		Email:    username + "@fitbuddy.com",
		Name:     capitalize(username),
	}
	return a.mintSession(user)
}

func (a *MockAuthAPI) Register(ctx context.Context, name, username, email, password string) (*models.Session, error) {
	if username == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	user := models.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    email,
		Name:     name,
	}
	return a.mintSession(user)
}

// mintSession signs an HS256 token for the user. Nothing ever verifies it;
// it only has to look and behave like an opaque bearer token.
func (a *MockAuthAPI) mintSession(user models.User) (*models.Session, error) {
	claims := jwt.MapClaims{
		"sub": user.Username,
		"jti": uuid.NewString(),
		"iat": a.now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &models.Session{User: user, Token: token}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
