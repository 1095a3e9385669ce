// Package store implements the client-side state container: three
// independent slices (auth, favorites, theme), each mirrored to the durable
// key-value store. All mutation goes through Dispatch; the presentation
// layer reads snapshots and subscribes to change notifications.
//
// Concurrency model: a single mutex serializes every transition, so each one
// is atomic from the caller's point of view and per-slice ordering follows
// dispatch order. Slices use disjoint storage keys, so no cross-slice
// coordination is needed when persisting.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/fitbuddy/internal/client/api"
	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/client/repositories/kv"
	"github.com/dmitrijs2005/fitbuddy/internal/logging"
)

// Storage keys. Each slice owns its own namespace.
const (
	KeyUser      = "auth_user"
	KeyToken     = "auth_token"
	KeyFavorites = "favorites"
	KeyTheme     = "theme"
)

// Slice identifies one of the three state slices for subscriptions.
type Slice int

const (
	SliceAuth Slice = iota
	SliceFavorites
	SliceTheme
)

// Store owns all client state. Construct with New, populate with LoadAll,
// then serve intents via Dispatch.
type Store struct {
	log  logging.Logger
	repo kv.Repository
	auth api.AuthAPI

	mu        sync.Mutex
	authState AuthState
	favorites []models.Exercise
	darkMode  bool

	subMu  sync.Mutex
	nextID int
	subs   map[Slice]map[int]chan struct{}
}

func New(repo kv.Repository, auth api.AuthAPI, log logging.Logger) *Store {
	return &Store{
		log:  log,
		repo: repo,
		auth: auth,
		subs: make(map[Slice]map[int]chan struct{}),
	}
}

// Dispatch applies a command to its slice. For Login/Register the call
// blocks until the auth provider settles; the pending state is observable
// through Auth() snapshots in the meantime.
func (s *Store) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Login:
		return s.login(ctx, c)
	case Register:
		return s.register(ctx, c)
	case Logout:
		return s.logout(ctx)
	case ClearAuthError:
		s.clearAuthError()
		return nil
	case AddFavorite:
		s.addFavorite(ctx, c.Exercise)
		return nil
	case RemoveFavorite:
		s.removeFavorite(ctx, c.Name)
		return nil
	case ToggleFavorite:
		s.toggleFavorite(ctx, c.Exercise)
		return nil
	case ToggleTheme:
		s.toggleTheme(ctx)
		return nil
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

// LoadAll restores all three slices from storage concurrently and returns
// once every restore has settled. A failed restore leaves its slice at the
// default state and never affects the other two; missing values are an
// expected first-run condition and are not treated as errors.
func (s *Store) LoadAll(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		s.restoreAuth(ctx)
	}()
	go func() {
		defer wg.Done()
		s.restoreFavorites(ctx)
	}()
	go func() {
		defer wg.Done()
		s.restoreTheme(ctx)
	}()
	wg.Wait()
}

// Subscribe returns a channel that receives a signal after every applied
// transition of the given slice, plus a cancel function. Notifications are
// coalesced: a slow consumer sees at least one signal for any burst of
// changes.
func (s *Store) Subscribe(slice Slice) (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	ch := make(chan struct{}, 1)

	if s.subs[slice] == nil {
		s.subs[slice] = make(map[int]chan struct{})
	}
	s.subs[slice][id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs[slice], id)
	}
	return ch, cancel
}

func (s *Store) notify(slice Slice) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs[slice] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// persist writes pairs for a slice and logs failures instead of surfacing
// them: in-memory state stays correct for the current session even when the
// write is lost.
func (s *Store) persist(ctx context.Context, slice string, pairs ...kv.Pair) {
	if err := s.repo.SetMulti(ctx, pairs...); err != nil {
		s.log.Error(ctx, "failed to persist state", "slice", slice, "error", err)
	}
}
