package scene

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

var logo = []string{
	"╔╦╗╦ ╦╦  ╔═╗╦  ╔═╗╔╦╗╔═╗╔═╗╦═╗╔╦╗",
	" ║ ║ ║║  ╠═╝║  ╠═╣ ║ ╠╣ ║ ║╠╦╝║║║",
	" ╩ ╚═╝╩  ╩  ╩═╝╩ ╩ ╩ ╚  ╚═╝╩╚═╩ ╩",
}

// Title lists the levels and starts the selected one.
type Title struct {
	Levels []world.Level
	Cursor int

	err error
}

// NewTitle loads the level list.
func NewTitle(env *Env) *Title {
	t := &Title{}
	if env.Levels == nil {
		return t
	}
	t.Levels, t.err = env.Levels.LoadAll()
	return t
}

func (t *Title) Enter(m *Manager) {
	m.PlayMusic("title")
}

func (t *Title) Update(m *Manager) {
	in := m.Env.Input
	if in == nil || len(t.Levels) == 0 {
		return
	}
	switch {
	case in.UpPress():
		t.move(m, -1)
	case in.DownPress():
		t.move(m, 1)
	case pressed(in, input.ActionConfirm, input.ActionJump):
		m.PlaySound("door", 0.5)
		_ = m.StartLevel(t.Levels[t.Cursor].ID, nil)
	}
}

func (t *Title) move(m *Manager, d int) {
	n := len(t.Levels)
	t.Cursor = (t.Cursor + d + n) % n
	m.PlaySound("lever", 0.3)
}

func (t *Title) Draw(f *render.Frame) {
	c := f.Canvas
	w, h := c.Size()
	top := max(1, h/2-len(logo)-len(t.Levels)/2-2)

	c.SetColor(core.ColorBrightCyan)
	for i, line := range logo {
		c.DrawText((w-len([]rune(line)))/2, top+i, line)
	}

	y := top + len(logo) + 2
	if t.err != nil || len(t.Levels) == 0 {
		c.SetColor(core.ColorRed)
		centre(c, y, "no levels found")
		return
	}
	for i, lvl := range t.Levels {
		label := fmt.Sprintf("  %s  ", lvl.Name)
		c.SetColor(core.ColorGray)
		if i == t.Cursor {
			label = fmt.Sprintf("> %s <", lvl.Name)
			c.SetColor(core.ColorBrightYellow)
		}
		centre(c, y+i, label)
	}
	c.SetColor(core.ColorDarkGray)
	centre(c, y+len(t.Levels)+2, "↑/↓ select · enter play · ctrl+c quit")
}

func centre(c render.Canvas, y int, text string) {
	w, _ := c.Size()
	c.DrawText((w-len([]rune(text)))/2, y, text)
}
