package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fitbuddy/internal/client/store"
)

// Favorite toggles the named exercise as a favorite.
func (a *App) Favorite(ctx context.Context, name string) error {
	ex, err := a.findExercise(ctx, name)
	if err != nil {
		return err
	}

	if err := a.store.Dispatch(ctx, store.ToggleFavorite{Exercise: *ex}); err != nil {
		return err
	}

	if a.store.IsFavorite(ex.Name) {
		fmt.Println("Added to favorites: " + ex.Name)
	} else {
		fmt.Println("Removed from favorites: " + ex.Name)
	}
	return nil
}

// Unfavorite removes the named exercise from favorites. Removing a
// non-favorite is a no-op.
func (a *App) Unfavorite(ctx context.Context, name string) error {
	return a.store.Dispatch(ctx, store.RemoveFavorite{Name: name})
}

// Favorites prints the favorites in insertion order.
func (a *App) Favorites(ctx context.Context) error {
	favs := a.store.Favorites()
	if len(favs) == 0 {
		fmt.Println("No favorites yet")
		return nil
	}
	for _, ex := range favs {
		fmt.Printf("♥ %-20s %-10s %-12s %s\n", ex.Name, ex.Type, ex.Muscle, ex.Difficulty)
	}
	return nil
}
