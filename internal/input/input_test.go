package input

import "testing"

func TestButtonStateMachine(t *testing.T) {
	var b Button

	b.Hold(true)
	b.Update()
	if b.State() != StatePressed {
		t.Fatalf("after keydown+update state = %v, expected Pressed", b.State())
	}
	b.Update()
	if b.State() != StateDown {
		t.Fatalf("second update state = %v, expected Down", b.State())
	}
	for i := 0; i < 5; i++ {
		b.Update()
		if b.State() != StateDown {
			t.Fatalf("held state should stay Down, got %v", b.State())
		}
	}

	b.Hold(false)
	b.Update()
	if b.State() != StateReleased {
		t.Fatalf("after keyup+update state = %v, expected Released", b.State())
	}
	b.Update()
	if b.State() != StateUp {
		t.Fatalf("second update state = %v, expected Up", b.State())
	}
	b.Update()
	if b.State() != StateUp {
		t.Fatalf("idle state should stay Up, got %v", b.State())
	}
}

func TestInputPressedLastsOneStep(t *testing.T) {
	in := New(DefaultConfig())
	in.Queue().Push(KeyDown(" "))

	in.Update()
	if !in.Pressed(ActionJump) {
		t.Fatal("Jump should be Pressed on the first step")
	}
	in.Update()
	if in.Pressed(ActionJump) || !in.Down(ActionJump) {
		t.Fatalf("Jump should collapse to Down, got %v", in.State(ActionJump))
	}

	in.Queue().Push(KeyUp(" "))
	in.Update()
	if !in.Released(ActionJump) {
		t.Fatalf("Jump should be Released, got %v", in.State(ActionJump))
	}
	in.Update()
	if in.State(ActionJump) != StateUp {
		t.Fatalf("Jump should be Up, got %v", in.State(ActionJump))
	}
}

func TestTapWithinOneDrain(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   []State
	}{
		{"tap", []Event{KeyDown("z"), KeyUp("z")}, []State{StatePressed, StateReleased, StateUp}},
		{"tap then hold", []Event{KeyDown("z"), KeyUp("z"), KeyDown("z")}, []State{StatePressed, StateDown, StateDown}},
		{"double tap", []Event{KeyDown("z"), KeyUp("z"), KeyDown("z"), KeyUp("z")}, []State{StatePressed, StateReleased, StateUp}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(DefaultConfig())
			for _, ev := range tt.events {
				in.Queue().Push(ev)
			}
			for i, want := range tt.want {
				in.Update()
				if got := in.State(ActionJump); got != want {
					t.Errorf("step %d: State() = %v, expected %v", i, got, want)
				}
			}
		})
	}
}

func TestResetDropsLateRelease(t *testing.T) {
	in := New(DefaultConfig())
	in.Queue().Push(KeyDown("z"))
	in.Queue().Push(KeyUp("z"))
	in.Update()
	in.Reset()
	in.Queue().Push(KeyDown("z"))
	in.Update()
	in.Update()
	if !in.Down(ActionJump) {
		t.Errorf("State() = %v, expected Down after a fresh press", in.State(ActionJump))
	}
}

func TestInputCarryKeepsDown(t *testing.T) {
	in := New(DefaultConfig())
	in.Queue().Push(KeyDown("x"))
	in.Update()
	if !in.Pressed(ActionAttack) {
		t.Fatal("Attack should be Pressed")
	}

	// A catch-up step within the same rendered frame.
	in.Carry()
	if in.Pressed(ActionAttack) {
		t.Error("Carry must not repeat the press edge")
	}
	if !in.Down(ActionAttack) {
		t.Error("Carry must keep the button down")
	}
}

func TestInputCarryDoesNotDrainQueue(t *testing.T) {
	in := New(DefaultConfig())
	in.Update()
	in.Queue().Push(KeyDown("z"))
	in.Carry()
	if in.Down(ActionJump) {
		t.Fatal("events must wait for the next Update")
	}
	in.Update()
	if !in.Pressed(ActionJump) {
		t.Fatal("queued event should register on Update")
	}
}

func TestSharedBindingHeldByEitherKey(t *testing.T) {
	in := New(DefaultConfig())
	in.Queue().Push(KeyDown("left"))
	in.Queue().Push(KeyDown("a"))
	in.Update()
	in.Queue().Push(KeyUp("left"))
	in.Update()
	if !in.Down(ActionLeft) {
		t.Error("Left should stay down while 'a' is held")
	}
}

func TestDirectionalPressEdge(t *testing.T) {
	in := New(DefaultConfig())
	in.Queue().Push(KeyDown("up"))

	in.Update()
	if !in.UpPress() {
		t.Fatalf("stick should cross the threshold on the first step, stick=%+v", in.Stick())
	}
	for i := 0; i < 10; i++ {
		in.Update()
		if in.UpPress() {
			t.Fatalf("holding up must not retrigger (step %d)", i)
		}
	}

	in.Queue().Push(KeyUp("up"))
	for i := 0; i < 10; i++ {
		in.Update()
	}
	in.Queue().Push(KeyDown("up"))
	in.Update()
	if !in.UpPress() {
		t.Error("a fresh press should trigger again")
	}
}

func TestAnalogStickDeadzone(t *testing.T) {
	in := New(DefaultConfig())

	in.Queue().Push(Stick(0.1, 0))
	in.Update()
	if in.Stick().X != 0 {
		t.Errorf("stick inside deadzone should be ignored, got %+v", in.Stick())
	}

	in.Queue().Push(Stick(1, 0))
	in.Update()
	if !in.RightPress() {
		t.Errorf("full deflection should register a right press, stick=%+v", in.Stick())
	}
	for i := 0; i < 20; i++ {
		in.Update()
	}
	if in.Stick().X != 1 {
		t.Errorf("smoothed stick should converge to 1, got %f", in.Stick().X)
	}
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction("Attack")
	if !ok || a != ActionAttack {
		t.Errorf("ParseAction(Attack) = (%v, %v)", a, ok)
	}
	if _, ok := ParseAction("Dance"); ok {
		t.Error("unknown action should not parse")
	}
}
