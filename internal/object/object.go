// Package object defines the GameObject every simulated entity embeds and
// the per-step pipeline that moves it: behaviour hook, friction approach,
// integration with tile collision, player reaction and camera culling.
package object

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// snapEpsilon is how close speed must get to target before it snaps.
const snapEpsilon = 1e-3

// Object is the physical state shared by all entities.
type Object struct {
	Pos      core.Vector // authoritative position (centre)
	Speed    core.Vector // current velocity, units per tick
	Target   core.Vector // velocity the friction model steers Speed toward
	Friction core.Vector // per-axis approach rate in [0, 1]
	MaxSpeed core.Vector // per-axis speed cap; zero disables
	Bounce   core.Vector // per-axis restitution on tile hits

	Exist           bool
	Dying           bool
	DeathTimer      float64
	InCamera        bool
	CameraCheckArea core.Vector // half-extent for the cull test

	CollisionBox core.Rect // solid body, used against tiles
	Hitbox       core.Rect // contact and attack box
	Weight       bool      // subject to gravity
	IgnoreTiles  bool      // flies through the map
	DropThrough  bool      // falls through one-way platforms this step

	TouchSurface    bool // on the ground this step
	DidTouchSurface bool // ... and last step
	Steepness       float64
	InWater         bool
	OnHazard        bool
	Dir             float64 // facing, -1 or 1

	Sprite core.Sprite
}

// New creates a live object at pos with common defaults.
func New(pos core.Vector, w, h float64) Object {
	return Object{
		Pos:             pos,
		Friction:        core.Vec(1, 1),
		Exist:           true,
		CollisionBox:    core.NewRect(0, 0, w, h),
		Hitbox:          core.NewRect(0, 0, w, h),
		CameraCheckArea: core.Vec(w/2+32, h/2+32),
		Dir:             1,
		Sprite:          core.NewSprite(2, 1),
	}
}

// IsActive reports whether the object is still simulated and drawn.
// Dying objects are active until their death timer runs out.
func (o *Object) IsActive() bool {
	return o.Exist
}

// Alive reports whether the object exists and is not dying.
func (o *Object) Alive() bool {
	return o.Exist && !o.Dying
}

// ApplyFriction moves Speed toward Target on each axis. The approach is
// exponential: for f in [0, 1] it never overshoots, and it snaps once
// within snapEpsilon.
func (o *Object) ApplyFriction(tick float64) {
	o.Speed.X = approach(o.Speed.X, o.Target.X, o.Friction.X, tick)
	o.Speed.Y = approach(o.Speed.Y, o.Target.Y, o.Friction.Y, tick)
}

func approach(speed, target, f, tick float64) float64 {
	f = core.ClampF(f, 0, 1)
	rate := f
	if tick != 1 {
		rate = 1 - math.Pow(1-f, tick)
	}
	speed += (target - speed) * rate
	if math.Abs(target-speed) < snapEpsilon {
		return target
	}
	return speed
}

// CapSpeed clamps each axis to MaxSpeed where set.
func (o *Object) CapSpeed() {
	if o.MaxSpeed.X > 0 {
		o.Speed.X = core.ClampF(o.Speed.X, -o.MaxSpeed.X, o.MaxSpeed.X)
	}
	if o.MaxSpeed.Y > 0 {
		o.Speed.Y = core.ClampF(o.Speed.Y, -o.MaxSpeed.Y, o.MaxSpeed.Y)
	}
}

// Knockback pushes the object away from a point. The push goes into
// Speed only; friction brings it back to Target over the following steps.
func (o *Object) Knockback(from core.Vector, power float64, factor core.Vector) {
	dir := core.Sign(o.Pos.X - from.X)
	if dir == 0 {
		dir = -o.Dir
	}
	o.Speed.X = dir * power * factor.X
	o.Speed.Y = -power * factor.Y
}

// Knocked reports whether a knockback is still stronger than threshold.
func (o *Object) Knocked(threshold float64) bool {
	return math.Abs(o.Speed.X-o.Target.X) > threshold
}

// Overlaps tests the hitboxes of two objects.
func (o *Object) Overlaps(other *Object) bool {
	return core.OverlayRect(o.Pos, o.Hitbox, other.Pos, other.Hitbox)
}

// Bottom returns the y of the collision box's lower edge.
func (o *Object) Bottom() float64 {
	_, _, _, b := o.CollisionBox.Bounds(o.Pos)
	return b
}

// Face turns the object toward dx when it is non-zero.
func (o *Object) Face(dx float64) {
	if s := core.Sign(dx); s != 0 {
		o.Dir = s
	}
}
