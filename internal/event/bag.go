// Package event collects the side effects a logic step requests. Entities
// write into the Bag; the scene drains it after the step and routes each
// entry to audio, camera or the scene manager.
package event

import "github.com/vovakirdan/tui-platformer/internal/core"

// Sound is a request to play a named sample.
type Sound struct {
	Name   string
	Volume float64
}

// Transition asks the scene manager to change scene.
type Transition struct {
	Kind  TransitionKind
	Level string // target level for KindLevel
}

// TransitionKind names the scene to switch to.
type TransitionKind uint8

const (
	KindNone TransitionKind = iota
	KindLevel
	KindGameOver
	KindStageClear
	KindTitle
)

// Bag is reset at the start of every logic step.
type Bag struct {
	Sounds     []Sound
	Shake      float64 // strongest shake requested this step
	Flash      int     // frames of hit flash requested
	Transition Transition
	Messages   []string
	Saved      bool // stats were persisted this step
}

// PlaySound queues a sample.
func (b *Bag) PlaySound(name string, volume float64) {
	b.Sounds = append(b.Sounds, Sound{Name: name, Volume: volume})
}

// ShakeScreen requests a camera shake; the strongest request wins.
func (b *Bag) ShakeScreen(amount float64) {
	b.Shake = max(b.Shake, amount)
}

// FlashScreen requests a hit flash for n frames.
func (b *Bag) FlashScreen(n int) {
	b.Flash = core.Clamp(max(b.Flash, n), 0, 60)
}

// Request asks for a scene change. The first request in a step wins.
func (b *Bag) Request(t Transition) {
	if b.Transition.Kind == KindNone {
		b.Transition = t
	}
}

// Message shows a line of text in the HUD.
func (b *Bag) Message(text string) {
	b.Messages = append(b.Messages, text)
}

// Reset clears the bag, keeping slice capacity.
func (b *Bag) Reset() {
	b.Sounds = b.Sounds[:0]
	b.Shake = 0
	b.Flash = 0
	b.Transition = Transition{}
	b.Messages = b.Messages[:0]
	b.Saved = false
}
