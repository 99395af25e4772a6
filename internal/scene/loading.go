package scene

import (
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Loading waits for the asset registry, then runs next.
type Loading struct {
	next  func(m *Manager)
	ticks int
}

func NewLoading(next func(m *Manager)) *Loading {
	return &Loading{next: next}
}

func (l *Loading) Update(m *Manager) {
	l.ticks++
	if m.Env.Assets != nil && !m.Env.Assets.Loaded() {
		return
	}
	if l.next != nil {
		next := l.next
		l.next = nil
		next(m)
	}
}

func (l *Loading) Draw(f *render.Frame) {
	c := f.Canvas
	_, h := c.Size()
	c.SetColor(core.ColorGray)
	centre(c, h/2, "loading"+strings.Repeat(".", (l.ticks/15)%4))
}
