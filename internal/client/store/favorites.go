package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/client/repositories/kv"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
)

// Favorites returns a copy of the favorites sequence in insertion order.
func (s *Store) Favorites() []models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Exercise, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// IsFavorite reports whether an exercise with the given name is favorited.
func (s *Store) IsFavorite(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return containsName(s.favorites, name)
}

// Pure transitions. Uniqueness is by Name only: two entries with the same
// name are the same favorite even if other fields differ.

func applyAdd(list []models.Exercise, ex models.Exercise) ([]models.Exercise, bool) {
	if containsName(list, ex.Name) {
		return list, false
	}
	return append(list, ex), true
}

func applyRemove(list []models.Exercise, name string) ([]models.Exercise, bool) {
	for i, e := range list {
		if e.Name == name {
			return append(list[:i:i], list[i+1:]...), true
		}
	}
	return list, false
}

func applyToggle(list []models.Exercise, ex models.Exercise) []models.Exercise {
	if out, removed := applyRemove(list, ex.Name); removed {
		return out
	}
	return append(list, ex)
}

func containsName(list []models.Exercise, name string) bool {
	for _, e := range list {
		if e.Name == name {
			return true
		}
	}
	return false
}

// addFavorite is idempotent: a duplicate name is a no-op and nothing is
// written back to storage.
func (s *Store) addFavorite(ctx context.Context, ex models.Exercise) {
	s.mu.Lock()
	next, changed := applyAdd(s.favorites, ex)
	s.favorites = next
	s.mu.Unlock()

	if !changed {
		return
	}
	s.persistFavorites(ctx, next)
	s.notify(SliceFavorites)
}

func (s *Store) removeFavorite(ctx context.Context, name string) {
	s.mu.Lock()
	next, changed := applyRemove(s.favorites, name)
	s.favorites = next
	s.mu.Unlock()

	if !changed {
		return
	}
	s.persistFavorites(ctx, next)
	s.notify(SliceFavorites)
}

// toggleFavorite always changes membership, so it persists unconditionally.
func (s *Store) toggleFavorite(ctx context.Context, ex models.Exercise) {
	s.mu.Lock()
	next := applyToggle(s.favorites, ex)
	s.favorites = next
	s.mu.Unlock()

	s.persistFavorites(ctx, next)
	s.notify(SliceFavorites)
}

func (s *Store) persistFavorites(ctx context.Context, list []models.Exercise) {
	data, err := json.Marshal(list)
	if err != nil {
		s.log.Error(ctx, "failed to serialize favorites", "error", err)
		return
	}
	s.persist(ctx, "favorites", kv.Pair{Key: KeyFavorites, Value: data})
}

// restoreFavorites replaces the sequence wholesale with the stored one.
// It deliberately does not write back what it just read.
func (s *Store) restoreFavorites(ctx context.Context) {
	data, err := s.repo.Get(ctx, KeyFavorites)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "failed to read stored favorites", "error", err)
		}
		return
	}

	var list []models.Exercise
	if err := json.Unmarshal(data, &list); err != nil {
		s.log.Warn(ctx, "stored favorites are not parseable, ignoring", "error", err)
		return
	}

	s.mu.Lock()
	s.favorites = list
	s.mu.Unlock()

	s.notify(SliceFavorites)
}
