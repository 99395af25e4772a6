package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestOverlayRect(t *testing.T) {
	tests := []struct {
		name           string
		shiftA, shiftB Vector
		a, b           Rect
		expected       bool
	}{
		{
			name:     "overlapping",
			shiftA:   Vec(0, 0),
			a:        NewRect(0, 0, 10, 10),
			shiftB:   Vec(5, 5),
			b:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			shiftA:   Vec(0, 0),
			a:        NewRect(0, 0, 10, 10),
			shiftB:   Vec(15, 0),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges count",
			shiftA:   Vec(0, 0),
			a:        NewRect(0, 0, 10, 10),
			shiftB:   Vec(10, 0),
			b:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching corner counts",
			shiftA:   Vec(0, 0),
			a:        NewRect(0, 0, 4, 4),
			shiftB:   Vec(4, 4),
			b:        NewRect(0, 0, 4, 4),
			expected: true,
		},
		{
			name:     "offset moves box away",
			shiftA:   Vec(0, 0),
			a:        NewRect(20, 0, 4, 4),
			shiftB:   Vec(0, 0),
			b:        NewRect(0, 0, 4, 4),
			expected: false,
		},
		{
			name:     "contained",
			shiftA:   Vec(50, 50),
			a:        NewRect(0, 0, 30, 30),
			shiftB:   Vec(52, 48),
			b:        NewRect(1, 1, 2, 2),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := OverlayRect(tc.shiftA, tc.a, tc.shiftB, tc.b)
			if got != tc.expected {
				t.Errorf("OverlayRect() = %v, expected %v", got, tc.expected)
			}
			if rev := OverlayRect(tc.shiftB, tc.b, tc.shiftA, tc.a); rev != got {
				t.Errorf("OverlayRect() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestOverlayRectSymmetryRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		sa := Vec(rng.Float64()*100, rng.Float64()*100)
		sb := Vec(rng.Float64()*100, rng.Float64()*100)
		a := NewRect(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*40, rng.Float64()*40)
		b := NewRect(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*40, rng.Float64()*40)
		if OverlayRect(sa, a, sb, b) != OverlayRect(sb, b, sa, a) {
			t.Fatalf("asymmetric result for %v %v %v %v", sa, a, sb, b)
		}
	}
}

func TestVectorLength(t *testing.T) {
	v := Vector{X: 1, Y: 2, Z: 2, W: 4}
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length() = %f, expected 5", got)
	}
	if got := Vec(3, 4).Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length() = %f, expected 5", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	n := Vec(0, -10).Normalize(false)
	if n.X != 0 || math.Abs(n.Y+1) > 1e-12 {
		t.Errorf("Normalize() = %+v, expected (0,-1)", n)
	}

	if z := (Vector{}).Normalize(false); !z.IsZero() {
		t.Errorf("Normalize(false) of zero = %+v, expected zero", z)
	}
	if u := (Vector{}).Normalize(true); u != Vec(1, 0) {
		t.Errorf("Normalize(true) of zero = %+v, expected (1,0)", u)
	}
}

func TestTransform(t *testing.T) {
	// world -> cells: shift by camera, then halve x
	tr := Translation(-10, -20).Then(Scaling(0.5, 1))
	p := tr.Apply(Vec(30, 25))
	if p.X != 10 || p.Y != 5 {
		t.Errorf("Apply() = %+v, expected (10,5)", p)
	}

	back := tr.Inverse().Apply(p)
	if math.Abs(back.X-30) > 1e-9 || math.Abs(back.Y-25) > 1e-9 {
		t.Errorf("Inverse().Apply() = %+v, expected (30,25)", back)
	}

	d := tr.ApplyDelta(Vec(4, 4))
	if d.X != 2 || d.Y != 4 {
		t.Errorf("ApplyDelta() = %+v, expected (2,4)", d)
	}
}
