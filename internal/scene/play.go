package scene

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/stage"
)

// messageTime is how long a sign or status message stays up, in ticks.
const messageTime = 150.0

// Play runs a stage.
type Play struct {
	Stage  *stage.Stage
	Paused bool

	flash    int
	message  string
	msgTimer float64
	done     bool
}

func NewPlay(st *stage.Stage) *Play {
	return &Play{Stage: st}
}

func (p *Play) Enter(m *Manager) {
	m.PlayMusic(p.Stage.Level.Music)
}

func (p *Play) Leave(m *Manager) {
	if p.Paused {
		m.Unfreeze()
		m.Env.Audio.ResumeMusic()
	}
}

func (p *Play) Update(m *Manager) {
	if pressed(m.Env.Input, input.ActionPause) && !p.done {
		p.togglePause(m)
	}
	if p.Paused {
		return
	}

	if p.flash > 0 {
		p.flash--
	}
	if p.msgTimer > 0 {
		p.msgTimer -= core.Tick
	}
	if p.done {
		return
	}

	p.Stage.Update()
	if m.Env.Camera != nil {
		m.Env.Camera.Update(core.Tick)
	}

	bag := p.Stage.Events
	m.dispatch(bag)
	if bag.Flash > 0 {
		p.flash = max(p.flash, bag.Flash)
	}
	if n := len(bag.Messages); n > 0 {
		p.message = bag.Messages[n-1]
		p.msgTimer = messageTime
	}
	if bag.Saved {
		p.message = "Progress saved."
		p.msgTimer = messageTime / 2
	}
	p.follow(m, bag.Transition)
}

func (p *Play) togglePause(m *Manager) {
	p.Paused = !p.Paused
	m.PlaySound("pause", 0.5)
	if p.Paused {
		m.Freeze()
		m.Env.Audio.PauseMusic()
		return
	}
	m.Unfreeze()
	m.Env.Audio.ResumeMusic()
}

// follow acts on a transition request from the stage.
func (p *Play) follow(m *Manager, t event.Transition) {
	st := p.Stage
	switch t.Kind {
	case event.KindNone:
		return
	case event.KindLevel:
		p.record(m)
		if err := m.StartLevel(t.Level, nil); err != nil {
			m.Change(NewTitle(m.Env))
		}
	case event.KindStageClear:
		p.record(m)
		m.Change(NewClear(st.Level, st.Player.Coins, st.StepCount()))
	case event.KindGameOver:
		m.Change(NewGameOver(st.Level, st.Player.Checkpoint, st.Player.Coins))
	case event.KindTitle:
		m.Change(NewTitle(m.Env))
	}
	p.done = true
}

func (p *Play) record(m *Manager) {
	if m.Env.Runs == nil {
		return
	}
	st := p.Stage
	if err := m.Env.Runs.RecordRun(st.Level.ID, st.Player.Coins, st.StepCount()); err != nil && m.Env.Logger != nil {
		m.Env.Logger.Warn("run not recorded", "level", st.Level.ID, "err", err)
	}
}

func (p *Play) Draw(f *render.Frame) {
	if t, ok := f.Canvas.(interface{ SetTint(core.Color) }); ok {
		tint := core.ColorDefault
		if p.flash > 0 {
			tint = core.ColorBrightWhite
		}
		t.SetTint(tint)
		defer t.SetTint(core.ColorDefault)
	}
	p.Stage.Draw(f)
	p.drawHUD(f.Canvas)

	c := f.Canvas
	if p.msgTimer > 0 && p.message != "" {
		_, h := c.Size()
		c.SetColor(core.ColorWhite)
		centre(c, h-2, p.message)
	}
	if p.Paused {
		_, h := c.Size()
		c.SetColor(core.ColorBrightYellow)
		centre(c, h/2, " PAUSED ")
		c.SetColor(core.ColorGray)
		centre(c, h/2+1, "p to resume")
	}
}

func (p *Play) drawHUD(c render.Canvas) {
	pl := p.Stage.Player
	hearts := strings.Repeat("♥", pl.Health) + strings.Repeat("♡", max(0, pl.MaxHealth-pl.Health))
	c.SetColor(core.ColorBrightRed)
	c.DrawText(1, 0, hearts)
	c.SetColor(core.ColorBrightYellow)
	c.DrawText(pl.MaxHealth+3, 0, fmt.Sprintf("$%d", pl.Coins))

	w, _ := c.Size()
	name := p.Stage.Level.Name
	c.SetColor(core.ColorGray)
	c.DrawText(w-len([]rune(name))-1, 0, name)

	if b, ok := p.Stage.Boss(); ok && b.Alive() {
		bar := 20
		fill := core.Clamp(int(b.HealthFraction()*float64(bar)+0.5), 0, bar)
		c.SetColor(core.ColorRed)
		c.DrawText((w-bar-2)/2, 1, "["+strings.Repeat("█", fill)+strings.Repeat("·", bar-fill)+"]")
	}
}
