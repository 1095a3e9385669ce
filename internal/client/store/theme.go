package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrijs2005/fitbuddy/internal/client/repositories/kv"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
)

// DarkMode reports the current theme preference. The default is light mode.
func (s *Store) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.darkMode
}

func (s *Store) toggleTheme(ctx context.Context) {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	value := s.darkMode
	s.mu.Unlock()

	data, _ := json.Marshal(value)
	s.persist(ctx, "theme", kv.Pair{Key: KeyTheme, Value: data})
	s.notify(SliceTheme)
}

// restoreTheme overwrites the default with the stored preference, if any.
// The value just came from storage, so nothing is written back.
func (s *Store) restoreTheme(ctx context.Context) {
	data, err := s.repo.Get(ctx, KeyTheme)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "failed to read stored theme", "error", err)
		}
		return
	}

	var value bool
	if err := json.Unmarshal(data, &value); err != nil {
		s.log.Warn(ctx, "stored theme is not parseable, ignoring", "error", err)
		return
	}

	s.mu.Lock()
	s.darkMode = value
	s.mu.Unlock()

	s.notify(SliceTheme)
}
