// Package game wires one play session: configuration, input, assets,
// audio, saved stats, levels, the scene manager and the scheduler.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/assets"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/loop"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/scene"
	"github.com/vovakirdan/tui-platformer/internal/stage"
	"github.com/vovakirdan/tui-platformer/internal/stats"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Options configures a session.
type Options struct {
	Config   config.PlatformerConfig
	LevelDir string        // extra levels; may be empty
	Backend  stats.Backend // nil keeps progress in memory
	Slot     string
	Seed     int64
	Width    int
	Height   int
	Audio    audio.Audio // nil opens the speaker per Config.Audio
	Logger   *log.Logger
	Sync     bool // load assets before New returns
}

// Session is one player's game.
type Session struct {
	Config config.PlatformerConfig
	Input  *input.Input
	Camera *render.Camera
	Assets *assets.Registry
	Audio  audio.Audio
	Stats  *stats.Stats
	Levels *world.Loader
	Scenes *scene.Manager
	Loop   *loop.Scheduler

	screen *core.Screen
	frame  render.Frame
	logger *log.Logger
}

// New builds a session. Call Start to show the first scene.
func New(opts Options) (*Session, error) {
	cfg := opts.Config
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}

	inCfg, err := cfg.Input.InputSettings()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	st, err := stats.New(opts.Backend, opts.Slot)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	reg := assets.NewRegistry(opts.Logger)
	if opts.Sync {
		if err := reg.Load(assets.DefaultManifest()); err != nil && opts.Logger != nil {
			opts.Logger.Warn("some assets failed to load", "err", err)
		}
	} else {
		reg.LoadAsync(assets.DefaultManifest())
	}

	au := opts.Audio
	if au == nil {
		au = audio.New(cfg.Audio, opts.Logger)
	}

	s := &Session{
		Config: cfg,
		Input:  input.New(inCfg),
		Camera: render.NewCamera(opts.Width, opts.Height),
		Assets: reg,
		Audio:  au,
		Stats:  st,
		Levels: world.NewLoader(opts.LevelDir),
		screen: core.NewScreen(opts.Width, opts.Height),
		logger: opts.Logger,
	}
	s.frame = render.Frame{
		Canvas: render.NewScreenCanvas(s.screen),
		Camera: s.Camera,
		Assets: reg,
	}

	s.Scenes = scene.NewManager(&scene.Env{
		Levels: s.Levels,
		Stage: stage.Options{
			Player:  cfg.PlayerSettings(),
			Physics: cfg.Physics,
			Env:     cfg.Env(),
			Seed:    opts.Seed,
			Stats:   st,
			Logger:  opts.Logger,
		},
		Input:  s.Input,
		Camera: s.Camera,
		Audio:  au,
		Assets: reg,
		Runs:   st,
		Logger: opts.Logger,
	})

	s.Loop = loop.New(cfg.Loop, s.Input, opts.Logger)
	s.Loop.Step = s.step
	s.Loop.Render = s.render
	return s, nil
}

// Start shows the title, or goes straight to level when it is not empty,
// once assets are loaded.
func (s *Session) Start(level string) {
	s.Scenes.Set(scene.NewLoading(func(m *scene.Manager) {
		if level == "" {
			m.Set(scene.NewTitle(m.Env))
			return
		}
		if err := m.StartLevel(level, nil); err != nil {
			m.Set(scene.NewTitle(m.Env))
		}
	}))
}

func (s *Session) step() error {
	s.Scenes.Update()
	return nil
}

func (s *Session) render() {
	s.screen.Clear()
	s.frame.Count++
	s.Scenes.Draw(&s.frame)
}

// Advance feeds the clock to the scheduler; see loop.Scheduler.Advance.
func (s *Session) Advance(ts float64) (int, error) {
	return s.Loop.Advance(ts)
}

// Screen returns the cell buffer the last render drew into.
func (s *Session) Screen() *core.Screen {
	return s.screen
}

// Resize changes the screen and the camera view.
func (s *Session) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.screen.Resize(width, height)
	s.Camera.Resize(width, height)
}

// Play returns the running stage scene, if any.
func (s *Session) Play() (*scene.Play, bool) {
	p, ok := s.Scenes.Current().(*scene.Play)
	return p, ok
}

// Close stops audio. Progress since the last checkpoint is not saved.
func (s *Session) Close() {
	s.Audio.Close()
}
