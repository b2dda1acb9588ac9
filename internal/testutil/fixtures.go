package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thruflo/statewindow/internal/verdict"
)

// History parses s with verdict.ParseHistory and fails the test on error.
func History(t *testing.T, s string) verdict.History {
	t.Helper()
	h, err := verdict.ParseHistory(s)
	require.NoError(t, err, "parse history %q", s)
	return h
}

// SampleLongProgress returns a long window with a 0.75 true ratio.
// Returns a new slice each time to prevent test interference.
func SampleLongProgress() verdict.History {
	return verdict.History{true, true, true, false}
}

// SampleLongHalf returns a long window with exactly half true.
func SampleLongHalf() verdict.History {
	return verdict.History{false, false, true, true}
}

// SampleShortSaturated returns a short window that is all true.
func SampleShortSaturated() verdict.History {
	return verdict.History{true, true}
}

// SampleShortQuiet returns a short window that is all false.
func SampleShortQuiet() verdict.History {
	return verdict.History{false, false}
}

// SampleObservations returns a stream that stays false, turns true for a
// stretch, and goes back to false.
func SampleObservations() []bool {
	obs := make([]bool, 0, 24)
	for i := 0; i < 24; i++ {
		obs = append(obs, i >= 6 && i < 16)
	}
	return obs
}
