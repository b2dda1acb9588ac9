package tracker

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/statewindow/internal/config"
	"github.com/thruflo/statewindow/internal/logging"
	"github.com/thruflo/statewindow/internal/testutil"
	"github.com/thruflo/statewindow/internal/verdict"
)

// stream rises for four steps then falls.
const stream = "FFTTTTFFFF"

func testConfig(mode config.Mode) config.Config {
	cfg := config.DefaultConfig()
	cfg.Windows = config.Windows{Long: 4, Short: 2}
	cfg.Mode = mode
	return cfg
}

func quietLogger() *logging.Logger {
	l := logging.New()
	l.SetOutput(log.New(&bytes.Buffer{}, "", 0))
	return l
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig(config.ModeCount)
	cfg.Windows.Short = 0

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))

	cfg = testConfig("fuzzy")
	_, err = New(cfg)
	assert.True(t, config.IsValidationError(err))

	// A one-observation short window would never leave ratio warmup.
	cfg = testConfig(config.ModeRatio)
	cfg.Windows.Short = 1
	_, err = New(cfg)
	require.Error(t, err)
	assert.True(t, config.IsValidationError(err))
	assert.Contains(t, err.Error(), "windows.short")
}

func TestTracker_RiseHoldFall(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Windows = config.Windows{Long: 8, Short: 3}

	tests := []struct {
		mode       config.Mode
		starts     []int
		ends       []int
		inProgress int
	}{
		// The stream is false for steps 1-6, true for 7-16, false for 17-24.
		// The long window holds exactly four trues at step 10 (rising, short
		// window saturated) and at step 20 (falling, short window empty).
		{config.ModeCount, []int{10}, []int{20}, 8},
		// Ratio mode needs the long ratio strictly above 0.5 to be in
		// progress, which drops step 10, and step 17 misses the 0.9 short
		// ratio with two of three true.
		{config.ModeRatio, []int{10}, []int{20}, 6},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			cfg := cfg
			cfg.Mode = tt.mode
			tr, err := New(cfg, WithLogger(quietLogger()))
			require.NoError(t, err)

			var starts, ends []int
			inProgress := 0
			for i, obs := range testutil.SampleObservations() {
				r, err := tr.Observe(obs)
				if err != nil {
					require.True(t, verdict.IsInsufficientHistory(err), "step %d", i+1)
					continue
				}
				if r.StartJudgment {
					starts = append(starts, i+1)
				}
				if r.EndJudgment {
					ends = append(ends, i+1)
				}
				if r.InProgress {
					inProgress++
				}
			}

			assert.Equal(t, tt.starts, starts, "start steps")
			assert.Equal(t, tt.ends, ends, "end steps")
			assert.Equal(t, tt.inProgress, inProgress, "in-progress steps")
		})
	}
}

func TestTracker_CountMode(t *testing.T) {
	t.Parallel()

	tr, err := New(testConfig(config.ModeCount), WithLogger(quietLogger()))
	require.NoError(t, err)

	expected := []verdict.Result{
		{}, {}, {}, // windows still filling
		{InProgress: true, StartJudgment: true},
		{InProgress: true},
		{InProgress: true},
		{InProgress: true},
		{EndJudgment: true},
		{},
		{},
	}

	for i, obs := range testutil.History(t, stream) {
		r, err := tr.Observe(obs)
		require.NoError(t, err, "step %d", i+1)
		testutil.AssertResult(t, expected[i], r)
		assert.Equal(t, r, tr.Last())
	}
	assert.Equal(t, len(stream), tr.Steps())
	assert.True(t, tr.Ready())
}

func TestTracker_RatioMode(t *testing.T) {
	t.Parallel()

	tr, err := New(testConfig(config.ModeRatio), WithLogger(quietLogger()))
	require.NoError(t, err)

	obs := testutil.History(t, stream)

	_, err = tr.Observe(obs[0])
	require.Error(t, err)
	assert.True(t, verdict.IsInsufficientHistory(err))
	assert.Equal(t, 1, tr.Steps(), "observation is recorded even when judging fails")

	expected := []verdict.Result{
		{},
		{},
		{StartJudgment: true},
		{InProgress: true},
		{InProgress: true},
		{},
		{EndJudgment: true},
		{},
		{},
	}
	for i, o := range obs[1:] {
		r, err := tr.Observe(o)
		require.NoError(t, err, "step %d", i+2)
		testutil.AssertResult(t, expected[i], r)
	}
}

func TestTracker_TallyMode(t *testing.T) {
	t.Parallel()

	tr, err := New(testConfig(config.ModeTally), WithLogger(quietLogger()))
	require.NoError(t, err)

	// A single false observation already satisfies every count formula.
	r, err := tr.Observe(false)
	require.NoError(t, err)
	testutil.AssertFlags(t, r, true, true, true)
	assert.False(t, tr.Ready())

	// Two false observations put the long window below floor(N/2).
	r, err = tr.Observe(false)
	require.NoError(t, err)
	testutil.AssertAllFalse(t, r)
}

func TestTracker_Reset(t *testing.T) {
	t.Parallel()

	tr, err := New(testConfig(config.ModeCount), WithLogger(quietLogger()))
	require.NoError(t, err)

	for _, obs := range testutil.History(t, "FFTT") {
		_, err := tr.Observe(obs)
		require.NoError(t, err)
	}
	require.True(t, tr.Last().StartJudgment)

	tr.Reset()
	assert.Equal(t, 0, tr.Steps())
	assert.False(t, tr.Ready())
	testutil.AssertAllFalse(t, tr.Last())

	// Gating applies again after a reset.
	r, err := tr.Observe(true)
	require.NoError(t, err)
	testutil.AssertAllFalse(t, r)
}

func TestTracker_LogsEdges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New()
	logger.SetLevel(logging.LevelInfo)
	logger.SetOutput(log.New(&buf, "", 0))

	tr, err := New(testConfig(config.ModeCount), WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, config.ModeCount, tr.Mode())

	for _, obs := range testutil.History(t, stream) {
		_, err := tr.Observe(obs)
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO: state started | long=4 mode=count short=2 step=4", lines[0])
	assert.Equal(t, "INFO: state ended | long=4 mode=count short=2 step=8", lines[1])
}

func TestTracker_FollowsLoggerLevelChanges(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New()
	logger.SetOutput(log.New(&buf, "", 0))

	tr, err := New(testConfig(config.ModeCount), WithLogger(logger))
	require.NoError(t, err)

	// Raised after the tracker was built.
	logger.SetLevel(logging.LevelInfo)

	for _, obs := range testutil.History(t, "FFTT") {
		_, err := tr.Observe(obs)
		require.NoError(t, err)
	}
	assert.Contains(t, buf.String(), "INFO: state started")
}

func TestTracker_LogsRatioWarmup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New()
	logger.SetOutput(log.New(&buf, "", 0))

	tr, err := New(testConfig(config.ModeRatio), WithLogger(logger))
	require.NoError(t, err)

	_, err = tr.Observe(true)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "WARN: verdict failed")
	assert.Contains(t, buf.String(), "step=1")
}
