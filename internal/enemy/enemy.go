// Package enemy implements hostile entities. Every variant embeds Core,
// which owns health, the hurt timer, knockback and loot; the variants
// only decide where to go and when to attack.
package enemy

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/interactable"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Enemy is what the stage needs from every variant.
type Enemy interface {
	object.Entity
	EnemyCore() *Core
	Hurt(ctx *object.Context, damage int, from core.Vector) bool
}

// knockPower is the push a hit gives before KnockbackFactor scales it.
const knockPower = 2.5

// Core is embedded by every enemy variant.
type Core struct {
	object.Object

	Kind            string
	Health          int
	InitialHealth   int
	AttackPower     int
	DropProbability float64
	CoinTypeWeights []float64
	KnockbackFactor core.Vector
	HurtTimer       float64
	HurtTime        float64
	DeathTime       float64
	Mode            int     // escalation phase, only ever increases
	Wave            float64 // periodic timer in [0, 2π)

	hurtRow  int
	dyingRow int
	self     Enemy
}

func newCore(cfg Config, pos core.Vector) Core {
	o := object.New(pos, cfg.Width, cfg.Height)
	o.Sprite = core.NewSprite(cfg.FrameW, cfg.FrameH)
	o.Bounce = cfg.Bounce
	o.Friction = cfg.Friction
	o.Weight = cfg.Weight
	return Core{
		Object:          o,
		Kind:            cfg.Kind,
		Health:          cfg.Health,
		InitialHealth:   cfg.Health,
		AttackPower:     cfg.AttackPower,
		DropProbability: cfg.DropProbability,
		CoinTypeWeights: cfg.CoinWeights,
		KnockbackFactor: cfg.Knockback,
		HurtTime:        cfg.HurtTime,
		DeathTime:       cfg.DeathTime,
		hurtRow:         1,
		dyingRow:        2,
	}
}

// bind records the outer variant so hooks dispatch to it.
func (b *Core) bind(self Enemy) {
	b.self = self
}

func (b *Core) Base() *object.Object { return &b.Object }

func (b *Core) EnemyCore() *Core { return b }

// Hurt applies damage from a hit at from. Hits landing while the hurt timer
// runs are ignored. Returns true when the damage was taken.
func (b *Core) Hurt(ctx *object.Context, damage int, from core.Vector) bool {
	if !b.Alive() || b.HurtTimer > 0 || damage <= 0 {
		return false
	}
	b.Health -= damage
	b.HurtTimer = b.HurtTime
	if !b.KnockbackFactor.IsZero() {
		b.Knockback(from, knockPower, b.KnockbackFactor)
	}
	ctx.Sound("hit", 0.6)
	if ctx.Events != nil {
		ctx.Events.ShakeScreen(1)
	}

	if b.Health <= 0 {
		b.Health = 0
		object.Kill(ctx, b.self, b.DeathTime)
	}
	return true
}

// UpdateHurt counts the hurt timer down. While it runs the enemy holds
// still and its own logic is skipped; the return value says so.
func (b *Core) UpdateHurt(ctx *object.Context) bool {
	if b.HurtTimer <= 0 {
		return false
	}
	b.HurtTimer = max(0, b.HurtTimer-ctx.Tick)
	b.Target.X = 0
	b.Sprite.SetFrame(b.hurtRow, 0)
	return true
}

// HealthFraction is the remaining share of initial health.
func (b *Core) HealthFraction() float64 {
	if b.InitialHealth <= 0 {
		return 0
	}
	return float64(b.Health) / float64(b.InitialHealth)
}

// PlayerEvent deals contact damage.
func (b *Core) PlayerEvent(ctx *object.Context, p object.Player) {
	if b.AttackPower > 0 && b.Overlaps(p.Base()) {
		p.Hurt(ctx, b.AttackPower, b.Pos)
	}
}

// Die drops loot.
func (b *Core) Die(ctx *object.Context) {
	ctx.Sound("explode", 0.4)
	b.dropLoot(ctx)
}

func (b *Core) DyingLogic(*object.Context) {
	b.Sprite.SetFrame(b.dyingRow, 0)
}

func (b *Core) dropLoot(ctx *object.Context) {
	if ctx.Rand == nil || b.DropProbability <= 0 {
		return
	}
	if ctx.Rand.Float64() >= b.DropProbability {
		return
	}
	typ, ok := core.SampleWeighted(ctx.Rand, b.CoinTypeWeights)
	if !ok {
		return
	}
	ctx.Spawn(interactable.DropCoin(b.Pos, typ, core.Vec(b.Dir*0.5, -3)))
}

// Draw renders the current frame and flickers while hurt.
func (b *Core) Draw(f *render.Frame) {
	if b.HurtTimer > 0 && f.Flicker() {
		return
	}
	f.Sprite(b.Kind, b.Sprite, b.Pos, b.Dir < 0)
}

// groundAhead reports whether there is something to stand on just past
// the leading edge.
func (b *Core) groundAhead(m *world.Map) bool {
	x := b.Pos.X + b.Dir*(b.CollisionBox.W/2+2)
	y := b.Bottom() + 2
	if m.IsWall(x, y, world.DirNone) {
		return true
	}
	_, _, ok := m.SlopeHeight(x, y)
	return ok
}

// distTo returns the offset from b to the player.
func (b *Core) distTo(p object.Player) core.Vector {
	return p.Base().Pos.Sub(b.Pos)
}
