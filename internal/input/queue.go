package input

import (
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// EventKind identifies a raw device event.
type EventKind uint8

const (
	EventDown EventKind = iota // key, pad button or mouse button went down
	EventUp                    // ... and came back up
	EventAxis                  // analog stick moved
)

// Event is a raw device event. Key names are device-prefixed for pads
// and mice ("pad:a", "mouse:left"); plain names are keyboard keys.
type Event struct {
	Kind EventKind
	Key  string
	Axis core.Vector
}

// KeyDown builds a down event.
func KeyDown(key string) Event {
	return Event{Kind: EventDown, Key: key}
}

// KeyUp builds an up event.
func KeyUp(key string) Event {
	return Event{Kind: EventUp, Key: key}
}

// Stick builds an analog stick event with components in [-1, 1].
func Stick(x, y float64) Event {
	return Event{Kind: EventAxis, Axis: core.Vec(x, y)}
}

// Queue buffers device events until the next logic step drains them.
// Producers may run on other goroutines (terminal reader, SSH session).
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
