package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// GameOver offers a retry from the last checkpoint.
type GameOver struct {
	Level      world.Level
	Checkpoint core.Vector
	Coins      int
}

func NewGameOver(lvl world.Level, checkpoint core.Vector, coins int) *GameOver {
	return &GameOver{Level: lvl, Checkpoint: checkpoint, Coins: coins}
}

// Discarder drops progress made since the last save.
type Discarder interface {
	Discard()
}

// Enter forgets items obtained since the last checkpoint save, so the
// retry finds them again.
func (g *GameOver) Enter(m *Manager) {
	m.PlayMusic("")
	if d, ok := m.Env.Stage.Stats.(Discarder); ok {
		d.Discard()
	}
}

func (g *GameOver) Update(m *Manager) {
	in := m.Env.Input
	switch {
	case pressed(in, input.ActionConfirm, input.ActionJump):
		cp := g.Checkpoint
		if err := m.StartLevel(g.Level.ID, &cp); err != nil {
			m.Change(NewTitle(m.Env))
		}
	case pressed(in, input.ActionBack, input.ActionPause):
		m.Change(NewTitle(m.Env))
	}
}

func (g *GameOver) Draw(f *render.Frame) {
	c := f.Canvas
	_, h := c.Size()
	c.SetColor(core.ColorBrightRed)
	centre(c, h/2-2, "G A M E   O V E R")
	c.SetColor(core.ColorBrightYellow)
	centre(c, h/2, fmt.Sprintf("%s · $%d", g.Level.Name, g.Coins))
	c.SetColor(core.ColorGray)
	centre(c, h/2+2, "enter retry · esc title")
}

// Clear is shown after a level is finished.
type Clear struct {
	Level world.Level
	Coins int
	Steps int64
}

func NewClear(lvl world.Level, coins int, steps int64) *Clear {
	return &Clear{Level: lvl, Coins: coins, Steps: steps}
}

func (c *Clear) Enter(m *Manager) {
	m.PlayMusic("")
	m.PlaySound("chest", 0.7)
}

func (c *Clear) Update(m *Manager) {
	if !pressed(m.Env.Input, input.ActionConfirm, input.ActionJump) {
		return
	}
	if c.Level.Next == "" {
		m.Change(NewTitle(m.Env))
		return
	}
	if err := m.StartLevel(c.Level.Next, nil); err != nil {
		m.Change(NewTitle(m.Env))
	}
}

func (c *Clear) Draw(f *render.Frame) {
	cv := f.Canvas
	_, h := cv.Size()
	head := "S T A G E   C L E A R"
	if c.Level.Next == "" {
		head = "T H E   E N D"
	}
	cv.SetColor(core.ColorBrightGreen)
	centre(cv, h/2-2, head)
	cv.SetColor(core.ColorBrightYellow)
	centre(cv, h/2, fmt.Sprintf("%s · $%d · %s", c.Level.Name, c.Coins, FormatSteps(c.Steps)))
	cv.SetColor(core.ColorGray)
	centre(cv, h/2+2, "enter continue")
}

// FormatSteps renders a step count as play time.
func FormatSteps(steps int64) string {
	ms := float64(steps) * core.FrameTime
	secs := int64(ms / 1000)
	return fmt.Sprintf("%d:%02d.%d", secs/60, secs%60, int64(ms/100)%10)
}
