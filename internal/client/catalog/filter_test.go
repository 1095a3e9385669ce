package catalog

import (
	"testing"

	"github.com/dmitrijs2005/fitbuddy/internal/client/models"
	"github.com/stretchr/testify/require"
)

func names(list []models.Exercise) []string {
	out := make([]string, 0, len(list))
	for _, ex := range list {
		out = append(out, ex.Name)
	}
	return out
}

func TestFilter_EmptyFiltersAreIdentity(t *testing.T) {
	full := Builtin()
	got := Filter(full, "", "")
	require.Equal(t, full, got)
}

func TestFilter_NameSubstringCaseInsensitive(t *testing.T) {
	got := Filter(Builtin(), "push", "")
	require.Equal(t, []string{"Push-ups"}, names(got))

	got = Filter(Builtin(), "PUSH", "")
	require.Equal(t, []string{"Push-ups"}, names(got))
}

func TestFilter_MuscleEqualityCaseInsensitive(t *testing.T) {
	got := Filter(Builtin(), "", "Quadriceps")
	require.Equal(t,
		[]string{"Squats", "Lunges", "Burpees", "Jumping Jacks", "High Knees"},
		names(got))
}

func TestFilter_ComposesWithAnd(t *testing.T) {
	got := Filter(Builtin(), "e", "quadriceps")
	require.Equal(t, []string{"Squats", "Lunges", "Burpees"}, names(got))
}

func TestFilter_NoMatches(t *testing.T) {
	require.Empty(t, Filter(Builtin(), "deadlift", ""))
	require.Empty(t, Filter(Builtin(), "", "calves"))
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(Builtin(), "s", "")
	// subsequence of the catalog, in original order
	var prev int = -1
	full := names(Builtin())
	for _, n := range names(got) {
		idx := indexOf(full, n)
		require.Greater(t, idx, prev)
		prev = idx
	}
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a := Builtin()
	a[0].Name = "mutated"
	require.Equal(t, "Push-ups", Builtin()[0].Name)
}
