package input

// State is the per-step edge state of a button.
type State uint8

const (
	StateUp State = iota
	StatePressed
	StateDown
	StateReleased
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateUp:
		return "Up"
	case StatePressed:
		return "Pressed"
	case StateDown:
		return "Down"
	case StateReleased:
		return "Released"
	}
	return "Unknown"
}

// Button tracks Up -> Pressed -> Down -> Released -> Up.
// Pressed and Released last exactly one Update.
type Button struct {
	state State
	held  bool
}

// Hold records the physical state; it takes effect on the next Update.
func (b *Button) Hold(held bool) {
	b.held = held
}

// Update advances the state machine by one logic step.
func (b *Button) Update() {
	if b.held {
		switch b.state {
		case StateUp, StateReleased:
			b.state = StatePressed
		case StatePressed:
			b.state = StateDown
		}
		return
	}
	switch b.state {
	case StateDown, StatePressed:
		b.state = StateReleased
	case StateReleased:
		b.state = StateUp
	}
}

// Carry collapses one-step edges without sampling the device.
// Used for catch-up steps inside a single rendered frame.
func (b *Button) Carry() {
	switch b.state {
	case StatePressed:
		b.state = StateDown
	case StateReleased:
		b.state = StateUp
	}
}

// State returns the current edge state.
func (b *Button) State() State {
	return b.state
}

// IsDown reports Pressed or Down.
func (b *Button) IsDown() bool {
	return b.state == StatePressed || b.state == StateDown
}
