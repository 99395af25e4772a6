package core

import "testing"

func TestSpriteAnimate(t *testing.T) {
	s := NewSprite(2, 1)

	// Frames 1..3 of row 0, one frame every 4 ticks.
	s.Animate(0, 1, 3, 4, 1)
	if s.Frame != 1 {
		t.Fatalf("Frame = %d, expected 1 after entering range", s.Frame)
	}
	for i := 0; i < 3; i++ {
		s.Animate(0, 1, 3, 4, 1)
	}
	if s.Frame != 2 {
		t.Errorf("Frame = %d, expected 2 after 4 ticks", s.Frame)
	}
	for i := 0; i < 8; i++ {
		s.Animate(0, 1, 3, 4, 1)
	}
	if s.Frame != 1 {
		t.Errorf("Frame = %d, expected wrap to 1", s.Frame)
	}

	s.Animate(2, 0, 1, 4, 1)
	if s.Row != 2 || s.Frame != 0 {
		t.Errorf("row switch should restart, got row=%d frame=%d", s.Row, s.Frame)
	}

	sx, sy, sw, sh := s.Source()
	if sx != 0 || sy != 2 || sw != 2 || sh != 1 {
		t.Errorf("Source() = (%d,%d,%d,%d)", sx, sy, sw, sh)
	}
}

func TestSpriteAnimateLargeTick(t *testing.T) {
	s := NewSprite(1, 1)
	s.Animate(0, 0, 3, 1, 0)
	s.Animate(0, 0, 3, 1, 5)
	if s.Frame != 1 {
		t.Errorf("Frame = %d, expected 1 after advancing 5 frames over 4", s.Frame)
	}
}
