// Package input turns raw device events into per-step logical actions.
// Devices push events into a Queue; the simulation drains it exactly once
// per logic step, so every edge (press or release) is visible for one step.
package input

import "strings"

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionJump
	ActionAttack
	ActionPause
	ActionConfirm
	ActionBack

	actionCount
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// ParseAction maps a config name to an Action, ignoring case.
func ParseAction(name string) (Action, bool) {
	for a := Action(0); a < actionCount; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return 0, false
}
