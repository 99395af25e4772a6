package input

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Config holds bindings and analog tuning.
type Config struct {
	Bindings       map[string]Action // physical key name -> action
	Deadzone       float64           // raw stick magnitude ignored below this
	Smoothing      float64           // stick approach rate per step, (0, 1]
	PressThreshold float64           // stick component that counts as a directional press
}

// DefaultBindings covers keyboard, pad and mouse names.
func DefaultBindings() map[string]Action {
	return map[string]Action{
		"left": ActionLeft, "a": ActionLeft, "pad:left": ActionLeft,
		"right": ActionRight, "d": ActionRight, "pad:right": ActionRight,
		"up": ActionUp, "w": ActionUp, "pad:up": ActionUp,
		"down": ActionDown, "s": ActionDown, "pad:down": ActionDown,
		" ": ActionJump, "z": ActionJump, "pad:a": ActionJump,
		"x": ActionAttack, "j": ActionAttack, "pad:x": ActionAttack, "mouse:left": ActionAttack,
		"p": ActionPause, "esc": ActionPause, "pad:start": ActionPause,
		"enter": ActionConfirm, "pad:b": ActionBack, "b": ActionBack,
	}
}

// DefaultConfig returns the standard bindings and stick tuning.
func DefaultConfig() Config {
	return Config{
		Bindings:       DefaultBindings(),
		Deadzone:       0.2,
		Smoothing:      0.5,
		PressThreshold: 0.5,
	}
}

// Input aggregates keyboard, pad and mouse into actions and a smoothed stick.
type Input struct {
	cfg     Config
	queue   *Queue
	buttons [actionCount]Button
	held    map[string]bool
	late    map[string]bool // released in the drain that pressed them

	axis      core.Vector // raw pad stick
	stick     core.Vector // smoothed stick
	prevStick core.Vector
}

// New creates an aggregator reading from a fresh queue.
func New(cfg Config) *Input {
	if cfg.Bindings == nil {
		cfg.Bindings = DefaultBindings()
	}
	if cfg.Smoothing <= 0 || cfg.Smoothing > 1 {
		cfg.Smoothing = 1
	}
	if cfg.PressThreshold <= 0 {
		cfg.PressThreshold = 0.5
	}
	return &Input{
		cfg:   cfg,
		queue: NewQueue(),
		held:  make(map[string]bool),
		late:  make(map[string]bool),
	}
}

// Queue returns the queue device backends push into.
func (in *Input) Queue() *Queue {
	return in.queue
}

// Update drains pending events and advances every button one step.
// Call it on the first logic step of a rendered frame. A key pressed and
// released within one drain counts as held for this step and is released
// on the next, so a tap still yields Pressed then Released.
func (in *Input) Update() {
	for key := range in.late {
		delete(in.held, key)
	}
	clear(in.late)

	pressed := make(map[string]bool)
	for _, ev := range in.queue.Drain() {
		switch ev.Kind {
		case EventDown:
			in.held[ev.Key] = true
			pressed[ev.Key] = true
			delete(in.late, ev.Key)
		case EventUp:
			if pressed[ev.Key] {
				in.late[ev.Key] = true
				continue
			}
			delete(in.held, ev.Key)
		case EventAxis:
			in.axis = ev.Axis
		}
	}

	var down [actionCount]bool
	for key := range in.held {
		if a, ok := in.cfg.Bindings[key]; ok {
			down[a] = true
		}
	}
	for a := range in.buttons {
		in.buttons[a].Hold(down[a])
		in.buttons[a].Update()
	}

	in.prevStick = in.stick
	in.stick = in.approachStick(in.rawStick())
}

// Carry repeats the previous step's held state for a catch-up step:
// edges collapse and the stick does not register a new crossing.
func (in *Input) Carry() {
	for a := range in.buttons {
		in.buttons[a].Carry()
	}
	in.prevStick = in.stick
}

// Reset drops all held keys and edge state.
func (in *Input) Reset() {
	in.queue.Drain()
	in.held = make(map[string]bool)
	in.late = make(map[string]bool)
	in.buttons = [actionCount]Button{}
	in.axis, in.stick, in.prevStick = core.Vector{}, core.Vector{}, core.Vector{}
}

func (in *Input) rawStick() core.Vector {
	if in.axis.Length() > in.cfg.Deadzone {
		return core.Vec(core.ClampF(in.axis.X, -1, 1), core.ClampF(in.axis.Y, -1, 1))
	}
	var v core.Vector
	if in.buttons[ActionLeft].IsDown() {
		v.X--
	}
	if in.buttons[ActionRight].IsDown() {
		v.X++
	}
	if in.buttons[ActionUp].IsDown() {
		v.Y--
	}
	if in.buttons[ActionDown].IsDown() {
		v.Y++
	}
	return v
}

func (in *Input) approachStick(raw core.Vector) core.Vector {
	s := in.stick.Add(raw.Sub(in.stick).Scale(in.cfg.Smoothing))
	if math.Abs(s.X-raw.X) < 1e-3 {
		s.X = raw.X
	}
	if math.Abs(s.Y-raw.Y) < 1e-3 {
		s.Y = raw.Y
	}
	return s
}

// State returns the edge state of an action.
func (in *Input) State(a Action) State {
	return in.buttons[a].State()
}

// Pressed reports whether the action went down this step.
func (in *Input) Pressed(a Action) bool {
	return in.buttons[a].State() == StatePressed
}

// Down reports whether the action is held (including the press step).
func (in *Input) Down(a Action) bool {
	return in.buttons[a].IsDown()
}

// Released reports whether the action came up this step.
func (in *Input) Released(a Action) bool {
	return in.buttons[a].State() == StateReleased
}

// Stick returns the smoothed analog direction.
func (in *Input) Stick() core.Vector {
	return in.stick
}

// crossed reports a component moving past -t or +t this step.
func crossed(prev, cur, t float64, negative bool) bool {
	if negative {
		return prev > -t && cur <= -t
	}
	return prev < t && cur >= t
}

// UpPress reports the stick crossing the threshold upwards this step.
func (in *Input) UpPress() bool {
	return crossed(in.prevStick.Y, in.stick.Y, in.cfg.PressThreshold, true)
}

// DownPress reports the stick crossing the threshold downwards this step.
func (in *Input) DownPress() bool {
	return crossed(in.prevStick.Y, in.stick.Y, in.cfg.PressThreshold, false)
}

// LeftPress reports the stick crossing the threshold leftwards this step.
func (in *Input) LeftPress() bool {
	return crossed(in.prevStick.X, in.stick.X, in.cfg.PressThreshold, true)
}

// RightPress reports the stick crossing the threshold rightwards this step.
func (in *Input) RightPress() bool {
	return crossed(in.prevStick.X, in.stick.X, in.cfg.PressThreshold, false)
}
