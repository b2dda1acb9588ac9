// Package tracker keeps a long and a short observation window in step and
// evaluates a state verdict after every observation.
package tracker

import (
	"fmt"

	"github.com/thruflo/statewindow/internal/config"
	"github.com/thruflo/statewindow/internal/logging"
	"github.com/thruflo/statewindow/internal/queue"
	"github.com/thruflo/statewindow/internal/verdict"
)

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the logger used for step and edge messages. The tracker
// logs through a child of l, so later level changes on l apply.
func WithLogger(l *logging.Logger) Option {
	return func(t *Tracker) {
		t.log = l
	}
}

// Tracker pushes each observation into both windows and judges them.
// A Tracker is not safe for concurrent use.
type Tracker struct {
	long  *queue.Fixed[bool]
	short *queue.Fixed[bool]
	mode  config.Mode
	log   *logging.Logger

	steps int
	last  verdict.Result
}

// New creates a Tracker with windows sized from cfg.
func New(cfg config.Config, opts ...Option) (*Tracker, error) {
	if err := config.ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	long, err := queue.NewFixed[bool](cfg.Windows.Long)
	if err != nil {
		return nil, fmt.Errorf("long window: %w", err)
	}
	short, err := queue.NewFixed[bool](cfg.Windows.Short)
	if err != nil {
		return nil, fmt.Errorf("short window: %w", err)
	}

	t := &Tracker{
		long:  long,
		short: short,
		mode:  cfg.Mode,
		log:   logging.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.WithFields(map[string]interface{}{
		"mode":  string(cfg.Mode),
		"long":  cfg.Windows.Long,
		"short": cfg.Windows.Short,
	})
	return t, nil
}

// Observe records one observation and returns the verdict for the updated
// windows. In ratio mode the first observation yields an
// InsufficientHistoryError; the observation is still recorded.
func (t *Tracker) Observe(obs bool) (verdict.Result, error) {
	t.long.Push(obs)
	t.short.Push(obs)
	t.steps++

	long := verdict.History(t.long.Snapshot())
	short := verdict.History(t.short.Snapshot())

	r, err := t.judge(long, short)
	if err != nil {
		t.log.Warn("verdict failed", "step", t.steps, "error", err)
		t.last = verdict.Result{}
		return verdict.Result{}, err
	}

	t.log.Debug("observed",
		"step", t.steps,
		"obs", obs,
		"long_history", long,
		"short_history", short,
		"in_progress", r.InProgress,
	)
	if r.StartJudgment {
		t.log.Info("state started", "step", t.steps)
	}
	if r.EndJudgment {
		t.log.Info("state ended", "step", t.steps)
	}

	t.last = r
	return r, nil
}

func (t *Tracker) judge(long, short verdict.History) (verdict.Result, error) {
	switch t.mode {
	case config.ModeRatio:
		return verdict.Ratio(long, short)
	case config.ModeCount:
		return verdict.Count(long, short, t.long.MaxLength(), t.short.MaxLength())
	case config.ModeTally:
		return verdict.Tally(long, short), nil
	}
	return verdict.Result{}, fmt.Errorf("unknown mode %q", t.mode)
}

// Steps returns the number of observations recorded since the last Reset.
func (t *Tracker) Steps() int { return t.steps }

// Last returns the verdict of the latest observation, or the zero Result
// if that observation failed to evaluate.
func (t *Tracker) Last() verdict.Result { return t.last }

// Ready reports whether both windows are full.
func (t *Tracker) Ready() bool { return t.long.Full() && t.short.Full() }

// Mode returns the threshold convention in use.
func (t *Tracker) Mode() config.Mode { return t.mode }

// Reset clears both windows.
func (t *Tracker) Reset() {
	t.long.Reset()
	t.short.Reset()
	t.steps = 0
	t.last = verdict.Result{}
	t.log.Debug("reset")
}
