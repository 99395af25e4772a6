package core

import (
	"math"
	"math/rand"
)

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

// WrapAngle advances a periodic timer by delta and keeps it in [0, 2π).
func WrapAngle(x, delta float64) float64 {
	r := math.Mod(x+delta, TwoPi)
	if r < 0 {
		r += TwoPi
	}
	// Mod can return exactly TwoPi after the negative correction.
	if r >= TwoPi {
		r = 0
	}
	return r
}

// WeightedIndex walks the cumulative sum of weights and returns the first
// bucket whose running total meets or exceeds draw. When draw exceeds the
// total it returns len(weights), which callers must treat as no selection.
func WeightedIndex(draw float64, weights []float64) int {
	sum := 0.0
	for i, w := range weights {
		sum += w
		if sum >= draw {
			return i
		}
	}
	return len(weights)
}

// residue is the tolerated gap between a full weight table and 1.0.
const residue = 1e-6

// SampleWeighted draws a uniform [0,1) value and picks a bucket.
// ok is false when nothing was selected, which only happens when the
// weights sum to noticeably less than one. Floating point residue on a
// full table clamps to the last non-zero bucket.
func SampleWeighted(rng *rand.Rand, weights []float64) (idx int, ok bool) {
	return pickWeighted(rng.Float64(), weights)
}

func pickWeighted(draw float64, weights []float64) (int, bool) {
	idx := WeightedIndex(draw, weights)
	if idx < len(weights) {
		return idx, true
	}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total < 1-residue {
		return -1, false
	}
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, true
		}
	}
	return -1, false
}

// LerpWeights blends two equally sized weight tables; t=0 yields a, t=1 yields b.
func LerpWeights(a, b []float64, t float64) []float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = Lerp(a[i], b[i], t)
	}
	return out
}
