package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/fitbuddy/internal/client/api"
	"github.com/dmitrijs2005/fitbuddy/internal/client/config"
	"github.com/dmitrijs2005/fitbuddy/internal/client/repositories/kv"
	"github.com/dmitrijs2005/fitbuddy/internal/client/store"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
	"github.com/dmitrijs2005/fitbuddy/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var appSeq int

// newTestApp wires a real store over in-memory SQLite with the offline
// (built-in catalog) fitness API.
func newTestApp(t *testing.T) *App {
	t.Helper()
	appSeq++

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	dsn := fmt.Sprintf("file:clitest%d?mode=memory&cache=shared", appSeq)
	db, err := kv.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := kv.NewSQLiteRepository(db)
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:  cfg,
		store:   store.New(repo, api.NewMockAuthAPI(), log),
		fitness: api.NewHTTPFitnessAPI("http://unused", "", nil, log),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// stubInputs replaces the interactive input seams with canned answers.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPass := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPass })

	ti, pi := 0, 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(prompt string, w io.Writer) ([]byte, error) {
		v := passwords[pi]
		pi++
		return []byte(v), nil
	}
}

func TestAppLogin_Authenticates(t *testing.T) {
	a := newTestApp(t)
	stubInputs(t, []string{"alice"}, []string{"secret1A"})

	require.NoError(t, a.Login(context.Background()))

	require.True(t, a.isLoggedIn())
	require.Equal(t, "alice", a.store.Auth().User.Username)
}

func TestAppLogin_ValidationStopsDispatch(t *testing.T) {
	a := newTestApp(t)
	stubInputs(t, []string{"al"}, []string{"short"})

	require.NoError(t, a.Login(context.Background()))

	require.False(t, a.isLoggedIn())
	require.Empty(t, a.store.Auth().Err)
}

func TestAppRegister_Authenticates(t *testing.T) {
	a := newTestApp(t)
	stubInputs(t, []string{"Bob Smith", "bob_1", "bob@example.com"}, []string{"Passw0rd", "Passw0rd"})

	require.NoError(t, a.Register(context.Background()))

	auth := a.store.Auth()
	require.True(t, auth.IsAuthenticated)
	require.Equal(t, "bob_1", auth.User.Username)
	require.Equal(t, "bob@example.com", auth.User.Email)
}

func TestAppRegister_ConfirmMismatchStopsDispatch(t *testing.T) {
	a := newTestApp(t)
	stubInputs(t, []string{"Bob Smith", "bob_1", "bob@example.com"}, []string{"Passw0rd", "Other1A"})

	require.NoError(t, a.Register(context.Background()))
	require.False(t, a.isLoggedIn())
}

func TestAppLogout_ClearsSession(t *testing.T) {
	a := newTestApp(t)
	stubInputs(t, []string{"alice"}, []string{"secret1A"})
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
}

func TestAppFavorite_TogglesByCatalogName(t *testing.T) {
	a := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, a.Favorite(ctx, "squats"))
	require.True(t, a.store.IsFavorite("Squats"))

	require.NoError(t, a.Favorite(ctx, "Squats"))
	require.False(t, a.store.IsFavorite("Squats"))
}

func TestAppFavorite_UnknownExercise(t *testing.T) {
	a := newTestApp(t)

	err := a.Favorite(context.Background(), "Deadlift")
	require.ErrorIs(t, err, common.ErrExerciseNotFound)
}

func TestAppList_PopulatesCache(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.List(context.Background(), "triceps"))
	require.Len(t, a.exercises, 1)
	require.Equal(t, "Tricep Dips", a.exercises[0].Name)
}

func TestAppShow_FindsOutsideCache(t *testing.T) {
	a := newTestApp(t)

	// cache only holds triceps; Plank must be resolved from the full catalog
	require.NoError(t, a.List(context.Background(), "triceps"))
	require.NoError(t, a.Show(context.Background(), "Plank"))
}

func TestAppStatus(t *testing.T) {
	a := newTestApp(t)
	require.Equal(t, "guest [light]", a.status())

	require.NoError(t, a.ToggleTheme(context.Background()))
	require.Equal(t, "guest [dark]", a.status())

	stubInputs(t, []string{"alice"}, []string{"secret1A"})
	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "alice [dark]", a.status())
}
