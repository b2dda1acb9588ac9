package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thruflo/statewindow/internal/verdict"
)

// AssertResult asserts that two results carry the same flags.
func AssertResult(t *testing.T, expected, actual verdict.Result) {
	t.Helper()
	assert.Equal(t, expected.InProgress, actual.InProgress, "InProgress mismatch")
	assert.Equal(t, expected.StartJudgment, actual.StartJudgment, "StartJudgment mismatch")
	assert.Equal(t, expected.EndJudgment, actual.EndJudgment, "EndJudgment mismatch")
}

// AssertFlags asserts the three flags of r positionally.
func AssertFlags(t *testing.T, r verdict.Result, inProgress, start, end bool) {
	t.Helper()
	AssertResult(t, verdict.Result{
		InProgress:    inProgress,
		StartJudgment: start,
		EndJudgment:   end,
	}, r)
}

// AssertAllFalse asserts that no flag of r is set.
func AssertAllFalse(t *testing.T, r verdict.Result) {
	t.Helper()
	assert.False(t, r.Any(), "expected all flags false, got %+v", r)
}
