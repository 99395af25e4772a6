package tui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminals report presses and auto-repeats but never releases. A key
// counts as held until it has not been seen for a while: long enough to
// bridge the pause before auto-repeat starts, shorter once repeats flow.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

// KeyMapper translates Bubble Tea key messages to input key names.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// KeyName returns the binding name for msg and whether it is a quit
// request. Arrow keys, space and letters pass through as Bubble Tea names
// them.
func (km *KeyMapper) KeyName(msg tea.KeyMsg) (name string, isQuit bool) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return "", true
	case "space":
		return " ", false
	}
	return key, false
}

type keyHold struct {
	last    time.Time
	repeats int
}

// KeyTracker synthesises key-up events for terminal input.
type KeyTracker struct {
	Initial time.Duration
	Repeat  time.Duration

	held map[string]*keyHold
}

// NewKeyTracker creates a tracker with the default hold times.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		Initial: DefaultInitialHold,
		Repeat:  DefaultRepeatHold,
		held:    make(map[string]*keyHold),
	}
}

// Press records key at now. It reports true for a new press and false
// for an auto-repeat of a held key.
func (k *KeyTracker) Press(key string, now time.Time) bool {
	if h, ok := k.held[key]; ok {
		h.last = now
		h.repeats++
		return false
	}
	k.held[key] = &keyHold{last: now}
	return true
}

// Expire releases keys not seen recently and returns them sorted.
func (k *KeyTracker) Expire(now time.Time) []string {
	var released []string
	for key, h := range k.held {
		hold := k.Initial
		if h.repeats > 0 {
			hold = k.Repeat
		}
		if now.Sub(h.last) > hold {
			released = append(released, key)
		}
	}
	sort.Strings(released)
	for _, key := range released {
		delete(k.held, key)
	}
	return released
}

// Held reports whether key is currently held.
func (k *KeyTracker) Held(key string) bool {
	_, ok := k.held[key]
	return ok
}

// ReleaseAll releases every key and returns them sorted.
func (k *KeyTracker) ReleaseAll() []string {
	keys := make([]string, 0, len(k.held))
	for key := range k.held {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	clear(k.held)
	return keys
}
