package object

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Step advances one entity by one logic step:
//
//  0. the death timer and any Ager lifetime count down
//  1. UpdateLogic (or DyingLogic) sets Target and advances timers
//  2. friction steers Speed toward Target, then Speed is capped
//  3. Pos integrates Speed*tick with tile collision in substeps
//  4. collision hooks fire
//  5. PlayerEvent runs when a live player exists
//  6. InCamera is refreshed
//
// Entities outside the camera only run step 0 and refresh InCamera unless
// they are AlwaysActive, so they still finish dying and expire.
func Step(ctx *Context, e Entity) {
	o := e.Base()
	if !o.Exist {
		return
	}
	if !countDown(ctx, e) {
		return
	}
	if !o.InCamera && !isAlwaysActive(e) {
		Cull(ctx, o)
		if !o.InCamera {
			return
		}
	}

	o.DidTouchSurface = o.TouchSurface

	if o.Weight {
		o.Target.Y = ctx.Physics.MaxFall
		o.Friction.Y = ctx.Physics.Gravity
	}

	if o.Dying {
		o.Target.X = 0
		if d, ok := e.(DyingUpdater); ok {
			d.DyingLogic(ctx)
		}
	} else {
		e.UpdateLogic(ctx)
	}

	if o.InWater && ctx.Physics.WaterDrag > 0 {
		o.Target = o.Target.Scale(ctx.Physics.WaterDrag)
	}
	o.ApplyFriction(ctx.Tick)
	o.CapSpeed()

	c := o.MoveAndCollide(ctx.World, o.Speed.Scale(ctx.Tick))
	respond(ctx, e, c)
	o.DropThrough = false

	if !o.Dying {
		if p, ok := ctx.LivePlayer(); ok && p != e {
			if r, ok := e.(PlayerReactor); ok {
				r.PlayerEvent(ctx, p)
			}
		}
	}

	Cull(ctx, o)
}

// countDown advances the timers that run regardless of culling and
// reports whether the entity still exists.
func countDown(ctx *Context, e Entity) bool {
	o := e.Base()
	if o.Dying {
		o.DeathTimer -= ctx.Tick
		if o.DeathTimer <= 0 {
			o.Dying = false
			o.Exist = false
			return false
		}
	}
	if a, ok := e.(Ager); ok {
		a.Age(ctx)
	}
	return o.Exist
}

// respond applies bounce and dispatches collision hooks.
func respond(ctx *Context, e Entity, c Collision) {
	o := e.Base()
	if c.Wall != 0 {
		o.Speed.X = -o.Speed.X * o.Bounce.X
		if w, ok := e.(WallCollider); ok {
			w.WallCollisionEvent(ctx, c.Wall)
		}
	}
	if c.Floor || c.Slope {
		if o.Bounce.Y > 0 && o.Speed.Y > 1 {
			o.Speed.Y = -o.Speed.Y * o.Bounce.Y
		} else if o.Speed.Y > 0 {
			o.Speed.Y = 0
		}
	}
	if c.Ceiling && o.Speed.Y < 0 {
		o.Speed.Y = 0
	}
	if c.Slope {
		if s, ok := e.(SlopeCollider); ok {
			s.SlopeCollisionEvent(ctx, int(core.Sign(o.Speed.X)), c.Steepness)
		}
	}
}

// Cull refreshes InCamera. Without a camera everything is visible.
func Cull(ctx *Context, o *Object) {
	if ctx.Camera == nil {
		o.InCamera = true
		return
	}
	o.InCamera = ctx.Camera.Visible(o.Pos, o.CameraCheckArea)
}

func isAlwaysActive(e Entity) bool {
	a, ok := e.(AlwaysActive)
	return ok && a.AlwaysActive()
}

// Collide runs EnemyCollisionEvent on both entities when their hitboxes
// overlap. The test is symmetric, so argument order does not matter.
func Collide(ctx *Context, a, b Entity) bool {
	ao, bo := a.Base(), b.Base()
	if !ao.Alive() || !bo.Alive() || !ao.Overlaps(bo) {
		return false
	}
	if h, ok := a.(EnemyCollider); ok {
		h.EnemyCollisionEvent(ctx, b)
	}
	if h, ok := b.(EnemyCollider); ok {
		h.EnemyCollisionEvent(ctx, a)
	}
	return true
}
