// Package scene switches between the title, the running stage and the
// result screens, and turns each step's event bag into sound, camera
// shake and scene changes.
package scene

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/assets"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/stage"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Scene is one screen of the game.
type Scene interface {
	Update(m *Manager)
	Draw(f *render.Frame)
}

// Enterer runs when the scene becomes current.
type Enterer interface {
	Enter(m *Manager)
}

// Leaver runs when the scene stops being current.
type Leaver interface {
	Leave(m *Manager)
}

// RunRecorder stores finished level runs.
type RunRecorder interface {
	RecordRun(level string, coins int, steps int64) error
}

// Env is what scenes need from the session.
type Env struct {
	Levels *world.Loader
	Stage  stage.Options // template; Level and Start are set per run
	Input  *input.Input
	Camera *render.Camera
	Audio  audio.Audio
	Assets *assets.Registry
	Runs   RunRecorder
	Logger *log.Logger
}

// Manager owns the current scene and the transition between scenes.
type Manager struct {
	Env *Env

	current Scene
	trans   *Transition
	err     error
}

// NewManager creates a manager with no scene. Missing audio is replaced
// with a silent backend.
func NewManager(env *Env) *Manager {
	if env.Audio == nil {
		env.Audio = &audio.Silent{}
	}
	return &Manager{Env: env, trans: NewTransition(DefaultFade)}
}

// Current returns the active scene.
func (m *Manager) Current() Scene {
	return m.current
}

// Transition exposes the scene transition.
func (m *Manager) Transition() *Transition {
	return m.trans
}

// Err returns the last scene construction error.
func (m *Manager) Err() error {
	return m.err
}

// Set switches scenes at once.
func (m *Manager) Set(s Scene) {
	if l, ok := m.current.(Leaver); ok {
		l.Leave(m)
	}
	m.current = s
	if e, ok := s.(Enterer); ok {
		e.Enter(m)
	}
}

// Change switches scenes through a fade.
func (m *Manager) Change(s Scene) {
	if m.current == nil {
		m.Set(s)
		return
	}
	m.trans.Start(func() { m.Set(s) })
}

// Freeze holds the transition timer.
func (m *Manager) Freeze() { m.trans.Freeze() }

// Unfreeze releases the transition timer.
func (m *Manager) Unfreeze() { m.trans.Unfreeze() }

// Update runs one logic step. The outgoing scene is held still while the
// picture fades out.
func (m *Manager) Update() {
	if m.current != nil && (!m.trans.Active() || m.trans.Swapped()) {
		m.current.Update(m)
	}
	m.trans.Update(core.Tick)
}

// Draw renders the current scene and the transition cover.
func (m *Manager) Draw(f *render.Frame) {
	if m.current != nil {
		m.current.Draw(f)
	}
	m.trans.Draw(f.Canvas)
}

// StartLevel builds a stage for level id and fades to it. A non-nil start
// overrides the level's start position.
func (m *Manager) StartLevel(id string, start *core.Vector) error {
	if m.Env.Levels == nil {
		return m.fail(errors.New("scene: no level loader"))
	}
	lvl, err := m.Env.Levels.LoadByID(id)
	if err != nil {
		return m.fail(fmt.Errorf("scene: %w", err))
	}
	opts := m.Env.Stage
	opts.Level = lvl
	opts.Start = start
	opts.Input = m.Env.Input
	opts.Camera = m.Env.Camera
	st, err := stage.New(opts)
	if err != nil {
		return m.fail(err)
	}
	m.logf("level started", "level", id)
	m.Change(NewPlay(st))
	return nil
}

func (m *Manager) fail(err error) error {
	m.err = err
	if m.Env.Logger != nil {
		m.Env.Logger.Error("scene change failed", "err", err)
	}
	return err
}

func (m *Manager) logf(msg string, kv ...any) {
	if m.Env.Logger != nil {
		m.Env.Logger.Debug(msg, kv...)
	}
}

// PlaySound plays a named sample; unknown names are ignored.
func (m *Manager) PlaySound(name string, volume float64) {
	if smp, ok := m.Env.Assets.GetSample(name); ok {
		m.Env.Audio.PlaySample(smp, volume)
	}
}

// PlayMusic starts a named track, or stops music for an empty name.
func (m *Manager) PlayMusic(name string) {
	if name == "" {
		m.Env.Audio.StopMusic()
		return
	}
	if smp, ok := m.Env.Assets.GetMusic(name); ok {
		m.Env.Audio.PlayMusic(smp)
	}
}

// dispatch routes a bag's sounds and shake. Transitions are left to the
// scene that owns the bag.
func (m *Manager) dispatch(b *event.Bag) {
	for _, s := range b.Sounds {
		m.PlaySound(s.Name, s.Volume)
	}
	if b.Shake > 0 && m.Env.Camera != nil {
		m.Env.Camera.Shake(b.Shake)
	}
}

// pressed reports a one-step press of any of the actions.
func pressed(in *input.Input, actions ...input.Action) bool {
	if in == nil {
		return false
	}
	for _, a := range actions {
		if in.Pressed(a) {
			return true
		}
	}
	return false
}
