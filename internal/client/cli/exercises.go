package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/dmitrijs2005/fitbuddy/internal/common"
)

// List fetches and prints the catalog, optionally restricted to one muscle
// group. The result is cached for name-based commands (show, fav, unfav).
func (a *App) List(ctx context.Context, muscle string) error {
	list, err := a.fitness.GetExercises(ctx, muscle)
	if err != nil {
		return err
	}
	a.exercises = list
	a.printExercises(list)
	return nil
}

// Search fetches and prints exercises whose name matches the query.
func (a *App) Search(ctx context.Context, query string) error {
	list, err := a.fitness.SearchExercises(ctx, query)
	if err != nil {
		return err
	}
	a.exercises = list
	a.printExercises(list)
	return nil
}

// Show prints a single exercise in full, including instructions.
func (a *App) Show(ctx context.Context, name string) error {
	ex, err := a.findExercise(ctx, name)
	if err != nil {
		return err
	}

	fav := ""
	if a.store.IsFavorite(ex.Name) {
		fav = " ♥"
	}
	fmt.Printf("%s%s\n", ex.Name, fav)
	fmt.Printf("  type:       %s\n", ex.Type)
	fmt.Printf("  muscle:     %s\n", ex.Muscle)
	fmt.Printf("  equipment:  %s\n", ex.Equipment)
	fmt.Printf("  difficulty: %s\n", ex.Difficulty)
	fmt.Printf("  %s\n", ex.Instructions)
	return nil
}

// findExercise resolves a name against the cached result first, then the
// full catalog. Matching is case-insensitive on the exact name.
func (a *App) findExercise(ctx context.Context, name string) (*models.Exercise, error) {
	if ex := matchByName(a.exercises, name); ex != nil {
		return ex, nil
	}

	list, err := a.fitness.GetExercises(ctx, "")
	if err != nil {
		return nil, err
	}
	if ex := matchByName(list, name); ex != nil {
		return ex, nil
	}
	return nil, fmt.Errorf("%w: %s", common.ErrExerciseNotFound, name)
}

func matchByName(list []models.Exercise, name string) *models.Exercise {
	for i := range list {
		if strings.EqualFold(list[i].Name, name) {
			return &list[i]
		}
	}
	return nil
}

func (a *App) printExercises(list []models.Exercise) {
	if len(list) == 0 {
		fmt.Println("No exercises found")
		return
	}
	for _, ex := range list {
		fav := " "
		if a.store.IsFavorite(ex.Name) {
			fav = "♥"
		}
		fmt.Printf("%s %-20s %-10s %-12s %s\n", fav, ex.Name, ex.Type, ex.Muscle, ex.Difficulty)
	}
}
