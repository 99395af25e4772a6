package enemy

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

const (
	bruteChargeFactor = 4.0
	bruteChargeRange  = 200.0
)

// Brute patrols slowly until it is first hurt. From then on (Mode 1) it
// charges the player and never calms down.
type Brute struct {
	Core

	speed float64
}

func NewBrute(pos core.Vector, cfg Config) *Brute {
	b := &Brute{Core: newCore(cfg, pos), speed: cfg.Speed}
	b.hurtRow, b.dyingRow = 2, 3
	b.Dir = -1
	b.bind(b)
	return b
}

// Hurt takes the hit and enrages the brute on the first damage.
func (b *Brute) Hurt(ctx *object.Context, damage int, from core.Vector) bool {
	hit := b.Core.Hurt(ctx, damage, from)
	b.rage(ctx)
	return hit
}

func (b *Brute) rage(ctx *object.Context) {
	if b.Mode == 0 && b.Health != b.InitialHealth {
		b.Mode = 1
		ctx.Sound("roar", 0.6)
	}
}

func (b *Brute) UpdateLogic(ctx *object.Context) {
	b.rage(ctx)
	if b.UpdateHurt(ctx) {
		return
	}

	switch b.Mode {
	case 0:
		if b.TouchSurface && !b.groundAhead(ctx.World) {
			b.Dir = -b.Dir
		}
		b.Target.X = b.Dir * b.speed
		b.Sprite.Animate(0, 0, 1, 16, ctx.Tick)
	default:
		if p, ok := ctx.LivePlayer(); ok {
			if d := b.distTo(p); math.Abs(d.X) < bruteChargeRange {
				b.Face(d.X)
			}
		}
		b.Target.X = b.Dir * b.speed * bruteChargeFactor
		b.Sprite.Animate(1, 0, 1, 6, ctx.Tick)
	}
}

func (b *Brute) WallCollisionEvent(ctx *object.Context, dir int) {
	b.Dir = -float64(dir)
	if b.Mode > 0 && ctx.Events != nil {
		ctx.Events.ShakeScreen(2)
	}
}

