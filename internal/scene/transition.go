package scene

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// DefaultFade is the length of a scene change in ticks.
const DefaultFade = 30.0

// shades go from light to full cover.
var shades = []rune{'░', '▒', '▓', '█'}

// Transition fades out, calls the swap at its midpoint, then fades in.
// A frozen transition keeps its place until unfrozen; rendering goes on.
type Transition struct {
	Duration float64

	timer   float64
	active  bool
	swapped bool
	frozen  bool
	onSwap  func()
}

// NewTransition creates an idle transition of the given length.
func NewTransition(duration float64) *Transition {
	return &Transition{Duration: max(duration, 2)}
}

// Start begins a transition. Starting during a running one restarts the
// fade-out but keeps a swap that already happened from running twice.
func (t *Transition) Start(onSwap func()) {
	if t.active && !t.swapped {
		t.onSwap = onSwap
		return
	}
	t.timer = 0
	t.active = true
	t.swapped = false
	t.onSwap = onSwap
}

// Update advances the timer by tick unless frozen.
func (t *Transition) Update(tick float64) {
	if !t.active || t.frozen {
		return
	}
	t.timer += tick
	if !t.swapped && t.timer >= t.Duration/2 {
		t.swapped = true
		if t.onSwap != nil {
			t.onSwap()
		}
		t.onSwap = nil
	}
	if t.timer >= t.Duration {
		t.active = false
		t.timer = 0
	}
}

func (t *Transition) Freeze()   { t.frozen = true }
func (t *Transition) Unfreeze() { t.frozen = false }

// Frozen reports whether the timer is held.
func (t *Transition) Frozen() bool { return t.frozen }

// Active reports whether a transition is running.
func (t *Transition) Active() bool { return t.active }

// Swapped reports whether the midpoint has passed.
func (t *Transition) Swapped() bool { return t.swapped }

// Alpha is the cover amount: rising to 1 at the midpoint, then falling.
func (t *Transition) Alpha() float64 {
	if !t.active {
		return 0
	}
	half := t.Duration / 2
	if t.timer < half {
		return t.timer / half
	}
	return core.ClampF((t.Duration-t.timer)/half, 0, 1)
}

// Draw covers the canvas with a shade matching Alpha.
func (t *Transition) Draw(c render.Canvas) {
	a := t.Alpha()
	if a <= 0 {
		return
	}
	idx := core.Clamp(int(a*float64(len(shades))), 0, len(shades)-1)
	w, h := c.Size()
	c.SetColor(core.ColorDarkGray)
	c.FillRect(0, 0, w, h, shades[idx])
}
