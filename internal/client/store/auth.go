package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/client/repositories/kv"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
)

// AuthState is the auth slice snapshot. IsAuthenticated is true iff both
// User and Token are present. Loading is true only while a login or
// registration is in flight. Err holds the last authentication failure
// message until cleared.
type AuthState struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	Loading         bool
	Err             string
}

// Auth returns a copy of the current auth state.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.authState
	if st.User != nil {
		u := *st.User
		st.User = &u
	}
	return st
}

func (s *Store) login(ctx context.Context, c Login) error {
	s.setAuthPending()

	sess, err := s.auth.Login(ctx, c.Username, c.Password)
	if err != nil {
		s.setAuthError("Login failed: " + err.Error())
		return err
	}

	s.setAuthenticated(ctx, sess)
	return nil
}

func (s *Store) register(ctx context.Context, c Register) error {
	s.setAuthPending()

	sess, err := s.auth.Register(ctx, c.Name, c.Username, c.Email, c.Password)
	if err != nil {
		s.setAuthError("Registration failed: " + err.Error())
		return err
	}

	s.setAuthenticated(ctx, sess)
	return nil
}

// logout clears the session in memory and removes both persisted keys.
// Storage errors are logged only; the caller always observes success.
func (s *Store) logout(ctx context.Context) error {
	s.mu.Lock()
	s.authState = AuthState{}
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, KeyUser, KeyToken); err != nil {
		s.log.Error(ctx, "failed to remove persisted session", "error", err)
	}

	s.notify(SliceAuth)
	return nil
}

func (s *Store) clearAuthError() {
	s.mu.Lock()
	s.authState.Err = ""
	s.mu.Unlock()
	s.notify(SliceAuth)
}

func (s *Store) setAuthPending() {
	s.mu.Lock()
	s.authState.Loading = true
	s.authState.Err = ""
	s.mu.Unlock()
	s.notify(SliceAuth)
}

func (s *Store) setAuthError(msg string) {
	s.mu.Lock()
	s.authState.Loading = false
	s.authState.Err = msg
	s.mu.Unlock()
	s.notify(SliceAuth)
}

func (s *Store) setAuthenticated(ctx context.Context, sess *models.Session) {
	user := sess.User

	s.mu.Lock()
	s.authState = AuthState{
		User:            &user,
		Token:           sess.Token,
		IsAuthenticated: true,
	}
	s.mu.Unlock()

	if data, err := json.Marshal(user); err != nil {
		s.log.Error(ctx, "failed to serialize user", "error", err)
	} else {
		s.persist(ctx, "auth",
			kv.Pair{Key: KeyUser, Value: data},
			kv.Pair{Key: KeyToken, Value: []byte(sess.Token)},
		)
	}

	s.notify(SliceAuth)
}

// restoreAuth loads the persisted session, if any. A missing session is the
// normal first-run state, not an error; a corrupt one is logged and the
// slice stays unauthenticated.
func (s *Store) restoreAuth(ctx context.Context) {
	userData, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "failed to read stored user", "error", err)
		}
		return
	}

	tokenData, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "failed to read stored token", "error", err)
		}
		return
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.log.Warn(ctx, "stored user is not parseable, ignoring", "error", err)
		return
	}

	s.mu.Lock()
	s.authState = AuthState{
		User:            &user,
		Token:           string(tokenData),
		IsAuthenticated: true,
	}
	s.mu.Unlock()

	s.notify(SliceAuth)
}
