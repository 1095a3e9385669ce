package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrijs2005/fitbuddy/internal/client/api"
	"github.com/dmitrijs2005/fitbuddy/internal/client/config"
	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/client/repositories/kv"
	"github.com/dmitrijs2005/fitbuddy/internal/client/store"
	"github.com/dmitrijs2005/fitbuddy/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the config, database, APIs and state store together and exposes
// the REPL command handlers.
type App struct {
	config  *config.Config
	store   *store.Store
	fitness api.FitnessAPI
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader

	// exercises caches the last listed/searched result so fav/show can
	// resolve an exercise by name without refetching.
	exercises []models.Exercise
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := kv.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := kv.NewSQLiteRepository(db)
	authAPI := api.NewMockAuthAPI()
	fitnessAPI := api.NewHTTPFitnessAPI(
		cfg.FitnessAPIBaseURL,
		cfg.FitnessAPIKey,
		&http.Client{Timeout: cfg.RequestTimeout},
		log,
	)

	return &App{
		config:  cfg,
		store:   store.New(repo, authAPI, log),
		fitness: fitnessAPI,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores persisted state, then serves the REPL until EOF or exit.
// The prompt is not shown before all three restores have settled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.store.LoadAll(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth().IsAuthenticated
}

// status renders the prompt fragment: the signed-in username (or "guest")
// plus the active theme.
func (a *App) status() string {
	theme := "light"
	if a.store.DarkMode() {
		theme = "dark"
	}

	auth := a.store.Auth()
	if auth.IsAuthenticated && auth.User != nil {
		return auth.User.Username + " [" + theme + "]"
	}
	return "guest [" + theme + "]"
}
