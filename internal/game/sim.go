package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/loop"
	"github.com/vovakirdan/tui-platformer/internal/stage"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// SimOptions configures a headless run of one level.
type SimOptions struct {
	Config   config.PlatformerConfig
	LevelDir string
	Level    string
	Seed     int64
	Steps    int64
	Logger   *log.Logger
}

// SimResult is the state after a headless run.
type SimResult struct {
	Steps    int64
	Snapshot stage.Snapshot
	Hash     uint64
}

// Simulate runs a level without input, audio or a terminal. Two runs with
// the same options give the same hash.
func Simulate(opts SimOptions) (SimResult, error) {
	lvl, err := world.NewLoader(opts.LevelDir).LoadByID(opts.Level)
	if err != nil {
		return SimResult{}, fmt.Errorf("game: %w", err)
	}
	cfg := opts.Config
	st, err := stage.New(stage.Options{
		Level:   lvl,
		Player:  cfg.PlayerSettings(),
		Physics: cfg.Physics,
		Env:     cfg.Env(),
		Seed:    opts.Seed,
		Logger:  opts.Logger,
	})
	if err != nil {
		return SimResult{}, fmt.Errorf("game: %w", err)
	}

	sched := loop.New(cfg.Loop, nil, opts.Logger)
	sched.Step = func() error {
		st.Update()
		return nil
	}
	if err := sched.RunSteps(opts.Steps); err != nil {
		return SimResult{}, fmt.Errorf("game: %w", err)
	}
	snap := st.Snapshot()
	return SimResult{Steps: sched.Steps(), Snapshot: snap, Hash: snap.Hash()}, nil
}
