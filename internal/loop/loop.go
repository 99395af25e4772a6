// Package loop runs logic at a fixed rate against a variable-rate clock.
// Time owed by the clock accumulates as debt and is paid in whole steps;
// the debt is clamped so a stall never turns into a burst of catch-up work.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/input"
)

// ErrStopped wraps the failure that stopped a scheduler.
var ErrStopped = errors.New("loop: stopped")

// Config tunes the scheduler.
type Config struct {
	FrameTime  float64 `yaml:"frame_time_ms"` // logic step length in milliseconds
	MaxCatchUp int     `yaml:"max_catch_up"`  // steps of debt kept after a stall
}

// DefaultConfig returns a 60 Hz loop with five steps of catch-up.
func DefaultConfig() Config {
	return Config{FrameTime: core.FrameTime, MaxCatchUp: core.MaxCatchUpSteps}
}

// Scheduler turns timestamps into logic steps and renders.
type Scheduler struct {
	// Step runs one logic step. A returned error stops the scheduler.
	Step func() error
	// Render runs once per Advance after the due steps.
	Render func()
	// OnError receives the error that stopped the scheduler. It is
	// called once.
	OnError func(error)

	cfg    Config
	input  *input.Input
	logger *log.Logger

	debt    float64
	last    float64
	started bool
	steps   int64
	err     error
}

// New creates a scheduler. in may be nil for runs without controls.
func New(cfg Config, in *input.Input, logger *log.Logger) *Scheduler {
	if cfg.FrameTime <= 0 {
		cfg.FrameTime = core.FrameTime
	}
	if cfg.MaxCatchUp <= 0 {
		cfg.MaxCatchUp = core.MaxCatchUpSteps
	}
	return &Scheduler{cfg: cfg, input: in, logger: logger}
}

// FrameTime returns the logic step length in milliseconds.
func (s *Scheduler) FrameTime() float64 {
	return s.cfg.FrameTime
}

// Steps returns the number of logic steps run so far.
func (s *Scheduler) Steps() int64 {
	return s.steps
}

// Debt returns the time owed, in milliseconds.
func (s *Scheduler) Debt() float64 {
	return s.debt
}

// Err returns the error that stopped the scheduler, or nil.
func (s *Scheduler) Err() error {
	return s.err
}

// Advance accounts for the clock reaching ts milliseconds, runs every
// step now due and renders once. The first call only sets the clock.
// Time going backwards counts as no time.
//
// Edge state is read from the input on the first step of the call only;
// later catch-up steps see held buttons as down.
func (s *Scheduler) Advance(ts float64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if !s.started {
		s.started = true
		s.last = ts
	}
	delta := max(ts-s.last, 0)
	s.last = max(ts, s.last)
	return s.pay(delta)
}

// pay adds delta to the debt, runs the due steps and renders.
func (s *Scheduler) pay(delta float64) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.stop(fmt.Errorf("%w: panic: %v", ErrStopped, r))
		}
	}()

	s.debt = min(s.debt+delta, float64(s.cfg.MaxCatchUp)*s.cfg.FrameTime)
	for s.debt >= s.cfg.FrameTime {
		if s.input != nil {
			if n == 0 {
				s.input.Update()
			} else {
				s.input.Carry()
			}
		}
		if s.Step != nil {
			if err := s.Step(); err != nil {
				return n, s.stop(fmt.Errorf("%w: %w", ErrStopped, err))
			}
		}
		s.debt -= s.cfg.FrameTime
		s.steps++
		n++
	}

	if s.Render != nil {
		s.Render()
	}
	return n, nil
}

func (s *Scheduler) stop(err error) error {
	s.err = err
	if s.logger != nil {
		s.logger.Error("loop stopped", "steps", s.steps, "err", err)
	}
	if s.OnError != nil {
		s.OnError(err)
	}
	return err
}

// RunSteps runs exactly n steps, one per render, without waiting on
// the clock.
func (s *Scheduler) RunSteps(n int64) error {
	for i := int64(0); i < n; i++ {
		if s.err != nil {
			return s.err
		}
		if _, err := s.pay(s.cfg.FrameTime); err != nil {
			return err
		}
	}
	return s.err
}

// Run drives the scheduler from the wall clock until ctx is done or a
// step fails. Cancellation is not an error.
func (s *Scheduler) Run(ctx context.Context) error {
	interval := time.Duration(s.cfg.FrameTime * float64(time.Millisecond))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	if _, err := s.Advance(0); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			ms := float64(now.Sub(start)) / float64(time.Millisecond)
			if _, err := s.Advance(ms); err != nil {
				return err
			}
		}
	}
}
