package core

import "github.com/go-gl/mathgl/mgl64"

// Transform is a 2D affine transform in homogeneous coordinates.
type Transform struct {
	m mgl64.Mat3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: mgl64.Ident3()}
}

// Translation returns a transform that shifts by (x, y).
func Translation(x, y float64) Transform {
	return Transform{m: mgl64.Translate2D(x, y)}
}

// Scaling returns a transform that scales each axis.
func Scaling(sx, sy float64) Transform {
	return Transform{m: mgl64.Scale2D(sx, sy)}
}

// Then returns a transform applying t first and next afterwards.
func (t Transform) Then(next Transform) Transform {
	return Transform{m: next.m.Mul3(t.m)}
}

// Apply maps a point through the transform.
func (t Transform) Apply(v Vector) Vector {
	r := t.m.Mul3x1(mgl64.Vec3{v.X, v.Y, 1})
	return Vec(r[0], r[1])
}

// ApplyDelta maps a displacement, ignoring translation.
func (t Transform) ApplyDelta(v Vector) Vector {
	r := t.m.Mul3x1(mgl64.Vec3{v.X, v.Y, 0})
	return Vec(r[0], r[1])
}

// Inverse returns the inverse transform. A singular transform inverts to zero.
func (t Transform) Inverse() Transform {
	return Transform{m: t.m.Inv()}
}
