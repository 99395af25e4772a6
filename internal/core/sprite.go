package core

// Sprite is an animation cursor over a sheet of equally sized frames.
// Columns are frames, rows are animations.
type Sprite struct {
	W, H  int // Frame size in cells
	Frame int
	Row   int

	timer float64
}

// NewSprite creates a sprite with the given frame size.
func NewSprite(w, h int) Sprite {
	return Sprite{W: w, H: h}
}

// Animate advances through frames [start, end] of row, moving one frame
// every speed ticks. Switching rows or leaving the range restarts at start.
func (s *Sprite) Animate(row, start, end int, speed, tick float64) {
	if row != s.Row || s.Frame < start || s.Frame > end {
		s.Row = row
		s.Frame = start
		s.timer = 0
	}
	if speed <= 0 || end <= start {
		return
	}

	s.timer += tick
	for s.timer >= speed {
		s.timer -= speed
		s.Frame++
		if s.Frame > end {
			s.Frame = start
		}
	}
}

// SetFrame jumps to a specific frame and clears the accumulator.
func (s *Sprite) SetFrame(row, frame int) {
	s.Row = row
	s.Frame = frame
	s.timer = 0
}

// Source returns the sheet rectangle of the current frame in cells.
func (s Sprite) Source() (sx, sy, sw, sh int) {
	return s.Frame * s.W, s.Row * s.H, s.W, s.H
}
