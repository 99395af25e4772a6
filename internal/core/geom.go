// Package core provides fundamental types and utilities for the platformer runtime.
// It contains no terminal dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the magnitude below which a vector is treated as zero.
const Epsilon = 1e-9

// Vector is a 2D position or displacement. Z and W are kept for padded
// distance calculations and are zero for ordinary positions.
type Vector struct {
	X, Y, Z, W float64
}

// Vec creates a 2D vector.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Clone returns an explicit copy. Vectors are values; Clone exists so that
// call sites sharing state between entities say so.
func (v Vector) Clone() Vector {
	return v
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale multiplies every component by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mul multiplies component-wise.
func (v Vector) Mul(o Vector) Vector {
	return Vector{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Dot returns the 4D dot product.
func (v Vector) Dot(o Vector) float64 {
	return v.vec4().Dot(o.vec4())
}

// Length returns the Euclidean norm over all four components.
func (v Vector) Length() float64 {
	return v.vec4().Len()
}

// Dist returns the distance between two points.
func (v Vector) Dist(o Vector) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector in the same direction.
// Below Epsilon it returns (1,0) when forceUnit is set and the zero vector otherwise.
func (v Vector) Normalize(forceUnit bool) Vector {
	l := v.Length()
	if l < Epsilon {
		if forceUnit {
			return Vec(1, 0)
		}
		return Vector{}
	}
	return v.Scale(1 / l)
}

// Angle returns the 2D heading in radians.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// IsZero reports whether all components are within Epsilon of zero.
func (v Vector) IsZero() bool {
	return v.Length() < Epsilon
}

func (v Vector) vec4() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

// Rect is an axis-aligned box centered at its owner's position plus (X, Y).
// W and H are full extents.
type Rect struct {
	X, Y float64 // Center offset from the owner position
	W, H float64 // Full width and height
}

// NewRect creates a new rectangle with the given offset and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Bounds returns the world-space edges of r shifted by pos.
func (r Rect) Bounds(pos Vector) (left, top, right, bottom float64) {
	cx, cy := pos.X+r.X, pos.Y+r.Y
	hw, hh := r.W/2, r.H/2
	return cx - hw, cy - hh, cx + hw, cy + hh
}

// Center returns the world-space center of r shifted by pos.
func (r Rect) Center(pos Vector) Vector {
	return Vec(pos.X+r.X, pos.Y+r.Y)
}

// Contains reports whether point p lies inside r shifted by pos (edges included).
func (r Rect) Contains(pos, p Vector) bool {
	l, t, rt, b := r.Bounds(pos)
	return p.X >= l && p.X <= rt && p.Y >= t && p.Y <= b
}

// OverlayRect reports whether a shifted by shiftA overlaps b shifted by shiftB.
// Touching edges count as overlapping.
func OverlayRect(shiftA Vector, a Rect, shiftB Vector, b Rect) bool {
	dx := math.Abs((shiftA.X + a.X) - (shiftB.X + b.X))
	dy := math.Abs((shiftA.Y + a.Y) - (shiftB.Y + b.Y))
	return dx <= (a.W+b.W)/2 && dy <= (a.H+b.H)/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
