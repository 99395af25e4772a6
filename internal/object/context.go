package object

import (
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Physics holds the world-wide movement tuning.
type Physics struct {
	Gravity            float64 `yaml:"gravity"`   // vertical approach rate toward MaxFall
	MaxFall            float64 `yaml:"max_fall"`  // terminal fall speed
	WaterDrag          float64 `yaml:"water_drag"` // target multiplier while submerged
	KnockbackThreshold float64 `yaml:"knockback_threshold"`
}

// DefaultPhysics returns the standard tuning.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:            0.07,
		MaxFall:            6,
		WaterDrag:          0.4,
		KnockbackThreshold: 0.5,
	}
}

// Context is what an entity sees during one logic step. It is rebuilt
// per stage and reused across steps.
type Context struct {
	World    *world.Map
	Player   Player // refreshed before enemies step
	Events   *event.Bag
	Rand     *rand.Rand
	Camera   *render.Camera
	Input    *input.Input
	Stats    Stats
	Launcher Launcher
	Physics  Physics
	Tick     float64
	Step     int64

	spawns []Entity
}

// Spawn queues an entity to join the stage after the current step.
func (c *Context) Spawn(e Entity) {
	c.spawns = append(c.spawns, e)
}

// TakeSpawns returns and clears queued spawns.
func (c *Context) TakeSpawns() []Entity {
	out := c.spawns
	c.spawns = nil
	return out
}

// LivePlayer returns the player when one exists and is alive.
func (c *Context) LivePlayer() (Player, bool) {
	if c.Player == nil || !c.Player.Alive() {
		return nil, false
	}
	return c.Player, true
}

// Shoot launches a projectile when a launcher is wired.
func (c *Context) Shoot(spec ShotSpec) {
	if c.Launcher != nil {
		c.Launcher.Launch(spec)
	}
}

// Sound queues a sample in the event bag.
func (c *Context) Sound(name string, volume float64) {
	if c.Events != nil {
		c.Events.PlaySound(name, volume)
	}
}
