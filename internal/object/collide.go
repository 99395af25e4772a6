package object

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

const (
	// maxSubstep bounds the distance moved between two collision checks,
	// so a fast object cannot skip over a tile or a slope surface.
	maxSubstep = world.TileSize / 4
	// stepTolerance is how far a grounded object may climb or stick
	// downward to follow a slope.
	stepTolerance = world.TileSize / 2
	wallGap       = 1e-6
)

// Collision summarises what a move ran into.
type Collision struct {
	Wall      int // -1 left, 1 right, 0 none
	Floor     bool
	Ceiling   bool
	Slope     bool
	Steepness float64
}

// MoveAndCollide displaces the object by d, resolving against the map in
// substeps no longer than a quarter tile. It updates TouchSurface,
// Steepness, InWater and OnHazard.
func (o *Object) MoveAndCollide(m *world.Map, d core.Vector) Collision {
	var c Collision
	o.TouchSurface = false
	o.Steepness = 0

	if m == nil || o.IgnoreTiles {
		o.Pos = o.Pos.Add(d)
		o.InWater, o.OnHazard = false, false
		return c
	}

	n := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y)) / maxSubstep))
	n = max(n, 1)
	step := d.Scale(1 / float64(n))

	for i := 0; i < n; i++ {
		if step.X != 0 {
			o.Pos.X += step.X
			if dir := o.resolveHorizontal(m, step.X); dir != 0 {
				c.Wall = dir
				step.X = 0
			}
		}

		prevBottom := o.Bottom()
		o.Pos.Y += step.Y
		if o.resolveVertical(m, step.Y, prevBottom, &c) {
			step.Y = 0
		}
	}

	center := o.CollisionBox.Center(o.Pos)
	o.InWater = m.IsWater(center.X, center.Y)
	l, _, r, b := o.CollisionBox.Bounds(o.Pos)
	o.OnHazard = m.IsHazard(l+1, b) || m.IsHazard(r-1, b) || m.IsHazard(center.X, center.Y)
	return c
}

// probes returns sample points from a to b no further than half a tile apart.
func probes(a, b float64) []float64 {
	if b <= a {
		return []float64{a}
	}
	n := int(math.Ceil((b - a) / (world.TileSize / 2)))
	out := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, a+(b-a)*float64(i)/float64(n))
	}
	return out
}

func (o *Object) resolveHorizontal(m *world.Map, dx float64) int {
	l, t, r, b := o.CollisionBox.Bounds(o.Pos)
	edge, dir := r, world.DirRight
	if dx < 0 {
		edge, dir = l, world.DirLeft
	}

	tol := 1.0
	if o.DidTouchSurface || o.TouchSurface {
		tol = stepTolerance
	}
	for _, y := range probes(t+1, b-tol) {
		if !m.IsWall(edge, y, dir) {
			continue
		}
		tx, _ := world.CellOf(edge, y)
		half := o.CollisionBox.W / 2
		if dir == world.DirRight {
			o.Pos.X = float64(tx)*world.TileSize - half - o.CollisionBox.X - wallGap
		} else {
			o.Pos.X = float64(tx+1)*world.TileSize + half - o.CollisionBox.X
		}
		return dir
	}
	return 0
}

func (o *Object) resolveVertical(m *world.Map, dy, prevBottom float64, c *Collision) bool {
	l, t, r, b := o.CollisionBox.Bounds(o.Pos)
	cx := o.Pos.X + o.CollisionBox.X
	xs := [3]float64{l + 1, cx, r - 1}

	if dy < 0 {
		for _, x := range xs {
			if m.IsSolid(x, t) {
				_, ty := world.CellOf(x, t)
				o.Pos.Y += float64(ty+1)*world.TileSize - t
				c.Ceiling = true
				return true
			}
		}
		return false
	}

	stick := 0.0
	if o.DidTouchSurface {
		stick = stepTolerance
	}
	if s, k, ok := slopeUnder(m, cx, b, stick); ok {
		o.Pos.Y += s - b
		o.TouchSurface = true
		o.Steepness = k
		c.Slope = true
		c.Steepness = k
		return true
	}

	// Floor under the foot, then (when grounded last step) floor up to
	// stick below it so walking off a slope keeps contact.
	for _, y := range [2]float64{b, b + stick} {
		for _, x := range xs {
			if !m.IsWall(x, y, world.DirNone) {
				continue
			}
			_, ty := world.CellOf(x, y)
			top := float64(ty) * world.TileSize
			if top-b > stick {
				continue
			}
			if m.IsOneWay(x, y) && (prevBottom > top+wallGap || o.DropThrough) {
				continue
			}
			o.Pos.Y += top - b
			o.TouchSurface = true
			c.Floor = true
			return true
		}
		if stick == 0 {
			break
		}
	}
	return false
}

// slopeUnder finds a slope surface the foot at (x, b) should rest on:
// penetrating it by at most half a tile, or hovering above it by at most
// stick. Rows are searched top-down.
func slopeUnder(m *world.Map, x, b, stick float64) (surface, steepness float64, ok bool) {
	for _, y := range [3]float64{b - stepTolerance, b, b + stick} {
		s, k, found := m.SlopeHeight(x, y)
		if !found {
			continue
		}
		if pen := b - s; pen >= -stick && pen <= stepTolerance {
			return s, k, true
		}
	}
	return 0, 0, false
}
