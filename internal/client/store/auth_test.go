package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/fitbuddy/internal/common"
	"github.com/stretchr/testify/require"
)

func TestLogin_TransitionsToAuthenticated(t *testing.T) {
	s, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", Password: "secret1A"}))

	auth := s.Auth()
	require.True(t, auth.IsAuthenticated)
	require.False(t, auth.Loading)
	require.Empty(t, auth.Err)
	require.Equal(t, "alice", auth.User.Username)
	require.Equal(t, "tok-alice", auth.Token)

	// session persisted under both fixed keys
	user, err := repo.Get(ctx, KeyUser)
	require.NoError(t, err)
	require.Contains(t, string(user), `"username":"alice"`)
	token, err := repo.Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Equal(t, "tok-alice", string(token))
}

func TestLogin_FailureRecordsErrorAndStaysUnauthenticated(t *testing.T) {
	repo := newFakeRepo()
	s := New(repo, &fakeAuth{loginErr: common.ErrInvalidCredentials}, testLogger())
	ctx := context.Background()

	err := s.Dispatch(ctx, Login{Username: "alice", Password: "bad"})
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	auth := s.Auth()
	require.False(t, auth.IsAuthenticated)
	require.False(t, auth.Loading)
	require.Contains(t, auth.Err, "Login failed")

	// nothing persisted
	_, err = repo.Get(ctx, KeyUser)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestRegister_TransitionsToAuthenticated(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Dispatch(ctx, Register{
		Name:     "Bob Smith",
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Passw0rd",
	}))

	auth := s.Auth()
	require.True(t, auth.IsAuthenticated)
	require.Equal(t, "bob", auth.User.Username)
	require.Equal(t, "bob@example.com", auth.User.Email)
}

func TestClearAuthError(t *testing.T) {
	s := New(newFakeRepo(), &fakeAuth{loginErr: errors.New("nope")}, testLogger())
	ctx := context.Background()

	_ = s.Dispatch(ctx, Login{Username: "a", Password: "b"})
	require.NotEmpty(t, s.Auth().Err)

	require.NoError(t, s.Dispatch(ctx, ClearAuthError{}))
	require.Empty(t, s.Auth().Err)
}

func TestLogout_ClearsStateAndPersistedKeys(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	s := New(repo, &fakeAuth{}, testLogger())

	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", Password: "secret1A"}))
	require.NoError(t, s.Dispatch(ctx, Logout{}))

	auth := s.Auth()
	require.False(t, auth.IsAuthenticated)
	require.Nil(t, auth.User)
	require.Empty(t, auth.Token)

	// a fresh process finds nothing and stays unauthenticated
	fresh := New(repo, &fakeAuth{}, testLogger())
	fresh.LoadAll(ctx)
	require.False(t, fresh.Auth().IsAuthenticated)
}

func TestLogin_PersistFailureKeepsInMemoryState(t *testing.T) {
	repo := newFakeRepo()
	repo.setErr = errors.New("disk full")
	s := New(repo, &fakeAuth{}, testLogger())

	require.NoError(t, s.Dispatch(context.Background(), Login{Username: "alice", Password: "secret1A"}))

	// the write failure is absorbed; the session is still live in memory
	require.True(t, s.Auth().IsAuthenticated)
}

func TestConcurrentLogins_LastWriteWinsWithoutCrash(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Dispatch(ctx, Login{Username: "alice", Password: "secret1A"})
		}()
	}
	wg.Wait()

	auth := s.Auth()
	require.True(t, auth.IsAuthenticated)
	require.Equal(t, "alice", auth.User.Username)
}

func TestAuthSnapshot_IsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Dispatch(ctx, Login{Username: "alice", Password: "secret1A"}))

	snap := s.Auth()
	snap.User.Username = "mallory"

	require.Equal(t, "alice", s.Auth().User.Username)
}
