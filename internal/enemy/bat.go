package enemy

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

const (
	batWakeRange = 80.0
	batWaveRate  = 0.12
	batSwoop     = 1.2
)

// Bat hangs until the player comes near, then swoops after it on a
// sine wave.
type Bat struct {
	Core

	Awake bool
	speed float64
	chase core.Vector
}

func NewBat(pos core.Vector, cfg Config) *Bat {
	b := &Bat{Core: newCore(cfg, pos), speed: cfg.Speed}
	b.bind(b)
	return b
}

func (b *Bat) UpdateLogic(ctx *object.Context) {
	if b.UpdateHurt(ctx) {
		return
	}
	if !b.Awake {
		b.Target = core.Vector{}
		b.Sprite.SetFrame(0, 0)
		return
	}
	b.Wave = core.WrapAngle(b.Wave, batWaveRate*ctx.Tick)
	b.Target = b.chase.Add(core.Vec(0, math.Sin(b.Wave)*batSwoop))
	b.Sprite.Animate(0, 0, 1, 4, ctx.Tick)
}

// PlayerEvent wakes the bat and steers it toward the player before the
// contact damage check.
func (b *Bat) PlayerEvent(ctx *object.Context, p object.Player) {
	d := b.distTo(p)
	if !b.Awake && math.Abs(d.X) < batWakeRange && d.Y > 0 {
		b.Awake = true
	}
	if b.Awake && b.HurtTimer <= 0 {
		b.Face(d.X)
		to := d.Normalize(true)
		b.chase = core.Vec(to.X*b.speed, to.Y*b.speed*0.5)
	}
	b.Core.PlayerEvent(ctx, p)
}

func (b *Bat) WallCollisionEvent(_ *object.Context, dir int) {
	b.Dir = -float64(dir)
}
