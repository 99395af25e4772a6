package object

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

// Entity is the minimum every simulated thing implements. All other hooks
// are optional and discovered with a type assertion.
type Entity interface {
	Base() *Object
	// UpdateLogic sets Target and advances the entity's own timers and state.
	UpdateLogic(ctx *Context)
}

// PlayerReactor reacts to the live player every step, overlap or not.
type PlayerReactor interface {
	PlayerEvent(ctx *Context, p Player)
}

// WallCollider is told which side hit a wall: -1 left, 1 right.
type WallCollider interface {
	WallCollisionEvent(ctx *Context, dir int)
}

// SlopeCollider is told the travel direction and the signed steepness
// (dy/dx) of the slope underfoot. Travel is uphill when dir*steepness < 0.
type SlopeCollider interface {
	SlopeCollisionEvent(ctx *Context, dir int, steepness float64)
}

// EnemyCollider is told about overlaps with other entities.
type EnemyCollider interface {
	EnemyCollisionEvent(ctx *Context, other Entity)
}

// Drawer draws the entity.
type Drawer interface {
	Draw(f *render.Frame)
}

// Dier runs once when the entity starts dying.
type Dier interface {
	Die(ctx *Context)
}

// DyingUpdater runs instead of UpdateLogic while the death timer counts down.
type DyingUpdater interface {
	DyingLogic(ctx *Context)
}

// Ager counts down a lifetime. Age runs every step, inside the camera or
// not, before UpdateLogic; clearing Exist removes the entity.
type Ager interface {
	Age(ctx *Context)
}

// AlwaysActive entities keep updating outside the camera.
type AlwaysActive interface {
	AlwaysActive() bool
}

// Player is the view of the player that other entities get.
type Player interface {
	Entity
	Alive() bool
	// Hurt damages the player; false while invulnerable.
	Hurt(ctx *Context, damage int, from core.Vector) bool
	Heal(n int)
	AddCoins(n int)
	// AttackBox is the active attack rectangle relative to the player position.
	AttackBox() (core.Rect, bool)
	// Launch replaces the vertical speed, as springs do.
	Launch(speedY float64)
	SetCheckpoint(pos core.Vector)
}

// Stats is the persisted save-state capability.
type Stats interface {
	HasItem(id string) bool
	ObtainItem(id string)
	Save() error
}

// ShotSpec describes a projectile to launch.
type ShotSpec struct {
	Pos      core.Vector
	Speed    core.Vector
	Damage   int
	Life     float64 // ticks
	Homing   bool    // steer toward the player
	TurnRate float64 // homing approach rate
	Big      bool
	Friendly bool // fired by the player, hurts enemies
}

// Launcher spawns projectiles.
type Launcher interface {
	Launch(spec ShotSpec)
}

// Kill starts the death of e. With a positive duration the entity stays
// active with Dying set until the timer runs out; otherwise it is removed
// at once. The Die hook runs once either way.
func Kill(ctx *Context, e Entity, duration float64) {
	o := e.Base()
	if !o.Exist || o.Dying {
		return
	}
	if duration > 0 {
		o.Dying = true
		o.DeathTimer = duration
	} else {
		o.Exist = false
	}
	if d, ok := e.(Dier); ok {
		d.Die(ctx)
	}
}
