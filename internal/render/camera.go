package render

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// World units covered by one terminal cell. Cells are about twice as tall
// as they are wide, so one 16x16 tile spans two columns and one row.
const (
	CellW = 8.0
	CellH = 16.0
)

// Camera tracks the viewport in world space.
type Camera struct {
	Pos          core.Vector // top-left of the view
	ViewW, ViewH float64
	boundW       float64
	boundH       float64

	shake  float64
	offset core.Vector
	rng    *rand.Rand
}

// NewCamera creates a camera showing cols x rows cells.
func NewCamera(cols, rows int) *Camera {
	c := &Camera{rng: rand.New(rand.NewSource(1))}
	c.Resize(cols, rows)
	return c
}

// Resize changes the viewport to cols x rows cells.
func (c *Camera) Resize(cols, rows int) {
	c.ViewW = float64(cols) * CellW
	c.ViewH = float64(rows) * CellH
	c.clamp()
}

// SetBounds limits the view to a w x h world.
func (c *Camera) SetBounds(w, h float64) {
	c.boundW, c.boundH = w, h
	c.clamp()
}

// Follow eases the view toward centring target. rate 1 snaps.
func (c *Camera) Follow(target core.Vector, rate float64) {
	want := core.Vec(target.X-c.ViewW/2, target.Y-c.ViewH/2)
	c.Pos = core.Vec(core.Lerp(c.Pos.X, want.X, rate), core.Lerp(c.Pos.Y, want.Y, rate))
	c.clamp()
}

func (c *Camera) clamp() {
	if c.boundW > 0 {
		c.Pos.X = core.ClampF(c.Pos.X, 0, math.Max(0, c.boundW-c.ViewW))
	}
	if c.boundH > 0 {
		c.Pos.Y = core.ClampF(c.Pos.Y, 0, math.Max(0, c.boundH-c.ViewH))
	}
}

// Shake starts a shake of the given strength in cells; stronger wins.
func (c *Camera) Shake(amount float64) {
	c.shake = math.Max(c.shake, amount)
}

// Update decays the shake and picks this frame's offset. Shake only moves
// the picture; Visible ignores it.
func (c *Camera) Update(tick float64) {
	if c.shake < 0.1 {
		c.shake = 0
		c.offset = core.Vector{}
		return
	}
	c.offset = core.Vec(
		math.Round((c.rng.Float64()*2-1)*c.shake)*CellW,
		math.Round((c.rng.Float64()*2-1)*c.shake*0.5)*CellH,
	)
	c.shake *= math.Pow(0.85, tick)
}

// Shaking reports whether a shake is in progress.
func (c *Camera) Shaking() bool {
	return c.shake > 0
}

// Transform maps world coordinates to cell coordinates.
func (c *Camera) Transform() core.Transform {
	o := c.Pos.Add(c.offset)
	return core.Translation(-o.X, -o.Y).Then(core.Scaling(1/CellW, 1/CellH))
}

// ToCell returns the cell containing world point p.
func (c *Camera) ToCell(p core.Vector) (int, int) {
	v := c.Transform().Apply(p)
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// ToWorld returns the world position of the top-left corner of a cell.
func (c *Camera) ToWorld(x, y int) core.Vector {
	return c.Transform().Inverse().Apply(core.Vec(float64(x), float64(y)))
}

// Visible reports whether a box of half-extent area around pos intersects
// the viewport.
func (c *Camera) Visible(pos, area core.Vector) bool {
	view := core.NewRect(c.ViewW/2, c.ViewH/2, c.ViewW, c.ViewH)
	box := core.NewRect(0, 0, area.X*2, area.Y*2)
	return core.OverlayRect(pos, box, c.Pos, view)
}
