package catalog

import (
	"strings"

	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
)

// Filter returns the subsequence of list matching both conditions:
//   - if query is non-empty, the exercise name contains it (case-insensitive);
//   - if muscle is non-empty, the exercise muscle equals it (case-insensitive).
//
// Empty query and empty muscle are identities, so Filter(list, "", "")
// returns the list unchanged in content and order. The function is pure and
// keeps no memory of previous results.
func Filter(list []models.Exercise, query, muscle string) []models.Exercise {
	if query == "" && muscle == "" {
		return list
	}

	q := strings.ToLower(query)
	out := make([]models.Exercise, 0, len(list))
	for _, ex := range list {
		if q != "" && !strings.Contains(strings.ToLower(ex.Name), q) {
			continue
		}
		if muscle != "" && !strings.EqualFold(ex.Muscle, muscle) {
			continue
		}
		out = append(out, ex)
	}
	return out
}
