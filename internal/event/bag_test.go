package event

import "testing"

func TestBagAccumulatesAndResets(t *testing.T) {
	var b Bag
	b.PlaySound("jump", 1)
	b.PlaySound("coin", 0.5)
	b.ShakeScreen(2)
	b.ShakeScreen(1)
	b.FlashScreen(500)
	b.Request(Transition{Kind: KindGameOver})
	b.Request(Transition{Kind: KindLevel, Level: "x"})
	b.Message("hello")

	if len(b.Sounds) != 2 || b.Sounds[1].Name != "coin" {
		t.Errorf("Sounds = %+v", b.Sounds)
	}
	if b.Shake != 2 {
		t.Errorf("Shake = %v, expected strongest request 2", b.Shake)
	}
	if b.Flash != 60 {
		t.Errorf("Flash = %d, expected clamp to 60", b.Flash)
	}
	if b.Transition.Kind != KindGameOver {
		t.Errorf("Transition = %+v, expected first request to win", b.Transition)
	}

	b.Reset()
	if len(b.Sounds) != 0 || b.Shake != 0 || b.Flash != 0 || b.Transition.Kind != KindNone || len(b.Messages) != 0 {
		t.Errorf("Reset() left %+v", b)
	}
}
