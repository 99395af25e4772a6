package enemy

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// Phase is the boss state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseShoot1
	PhaseShoot2
	PhaseCrush
	PhaseDash
	PhaseDying
)

var phaseNames = [...]string{"idle", "shoot1", "shoot2", "crush", "dash", "dying"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Attack weights in Shoot1, Shoot2, Crush, Dash order. The table used is
// blended between the two by remaining health.
var (
	bossWeightsHealthy = []float64{0.4, 0.3, 0.2, 0.1}
	bossWeightsWounded = []float64{0.15, 0.25, 0.3, 0.3}
)

const (
	bossIdleTime      = 90.0
	bossIdleTimeRaged = 55.0
	bossShoot1Time    = 50.0
	bossShoot2Time    = 60.0
	bossCrushTime     = 120.0
	bossDashTime      = 150.0
	bossJump          = 7.0
	bossDashSpeed     = 3.0
	bossShotSpeed     = 2.2
	bossWaveRate      = 0.05
	bossExplodeEvery  = 10.0
)

// Boss cycles between idling and one of four attacks. Below half health it
// enters Mode 1: shorter idles, wider spreads and minions on landing.
type Boss struct {
	Core

	Phase      Phase
	PhaseTimer float64
	speed      float64
	airborne   bool
	explode    float64
}

func NewBoss(pos core.Vector, cfg Config) *Boss {
	b := &Boss{Core: newCore(cfg, pos), speed: cfg.Speed}
	b.Dir = -1
	b.PhaseTimer = bossIdleTime
	b.hurtRow = 2
	b.dyingRow = 2
	b.CameraCheckArea = core.Vec(cfg.Width/2+96, cfg.Height/2+64)
	b.bind(b)
	return b
}

// AlwaysActive keeps the boss deciding off-screen.
func (b *Boss) AlwaysActive() bool { return true }

func (b *Boss) UpdateLogic(ctx *object.Context) {
	if b.Mode == 0 && b.Health*2 <= b.InitialHealth {
		b.Mode = 1
		ctx.Sound("roar", 0.8)
		if ctx.Events != nil {
			ctx.Events.ShakeScreen(4)
		}
	}
	// Hits only flicker the boss; it keeps attacking.
	if b.HurtTimer > 0 {
		b.HurtTimer = max(0, b.HurtTimer-ctx.Tick)
	}

	b.PhaseTimer -= ctx.Tick
	switch b.Phase {
	case PhaseIdle:
		b.idle(ctx)
	case PhaseShoot1, PhaseShoot2:
		b.Target.X = 0
		b.Sprite.SetFrame(1, 0)
		if b.PhaseTimer <= 0 {
			b.enter(ctx, PhaseIdle)
		}
	case PhaseCrush:
		b.crush(ctx)
	case PhaseDash:
		b.Target.X = b.Dir * bossDashSpeed
		b.Sprite.Animate(1, 0, 1, 4, ctx.Tick)
		if b.PhaseTimer <= 0 {
			b.enter(ctx, PhaseIdle)
		}
	}
}

func (b *Boss) idle(ctx *object.Context) {
	b.Wave = core.WrapAngle(b.Wave, bossWaveRate*ctx.Tick)
	b.Target.X = math.Sin(b.Wave) * b.speed
	b.Sprite.Animate(0, 0, 1, 20, ctx.Tick)
	if p, ok := ctx.LivePlayer(); ok {
		b.Face(b.distTo(p).X)
	}
	if b.PhaseTimer > 0 {
		return
	}
	b.enter(ctx, b.pickAttack(ctx))
}

// pickAttack samples the next attack. A draw that selects nothing keeps
// the boss idle for another round.
func (b *Boss) pickAttack(ctx *object.Context) Phase {
	if ctx.Rand == nil {
		return PhaseShoot1
	}
	w := core.LerpWeights(bossWeightsWounded, bossWeightsHealthy, b.HealthFraction())
	idx, ok := core.SampleWeighted(ctx.Rand, w)
	if !ok {
		return PhaseIdle
	}
	return PhaseShoot1 + Phase(idx)
}

func (b *Boss) enter(ctx *object.Context, ph Phase) {
	b.Phase = ph
	switch ph {
	case PhaseIdle:
		b.PhaseTimer = bossIdleTime
		if b.Mode > 0 {
			b.PhaseTimer = bossIdleTimeRaged
		}
		b.Friction.X = 0.08
	case PhaseShoot1:
		b.PhaseTimer = bossShoot1Time
		b.spread(ctx)
	case PhaseShoot2:
		b.PhaseTimer = bossShoot2Time
		b.homing(ctx)
	case PhaseCrush:
		b.PhaseTimer = bossCrushTime
		b.airborne = false
		if b.TouchSurface {
			b.Speed.Y = -bossJump
		}
	case PhaseDash:
		b.PhaseTimer = bossDashTime
		b.Friction.X = 0.1
		ctx.Sound("roar", 0.5)
	}
}

func (b *Boss) aim(ctx *object.Context) core.Vector {
	if p, ok := ctx.LivePlayer(); ok {
		return b.distTo(p).Normalize(true)
	}
	return core.Vec(b.Dir, 0)
}

func (b *Boss) spread(ctx *object.Context) {
	n := 3
	if b.Mode > 0 {
		n = 5
	}
	base := b.aim(ctx).Angle()
	for i := 0; i < n; i++ {
		a := base + float64(i-n/2)*0.25
		ctx.Shoot(object.ShotSpec{
			Pos:    b.Pos,
			Speed:  core.Vec(math.Cos(a), math.Sin(a)).Scale(bossShotSpeed),
			Damage: b.AttackPower,
			Life:   150,
		})
	}
	ctx.Sound("shoot", 0.6)
}

func (b *Boss) homing(ctx *object.Context) {
	ctx.Shoot(object.ShotSpec{
		Pos:      b.Pos.Add(core.Vec(0, -8)),
		Speed:    b.aim(ctx).Scale(bossShotSpeed * 0.7),
		Damage:   b.AttackPower,
		Life:     240,
		Homing:   true,
		TurnRate: 0.04,
		Big:      true,
	})
	ctx.Sound("shoot", 0.8)
}

func (b *Boss) crush(ctx *object.Context) {
	b.Target.X = b.Dir * b.speed * 2
	b.Sprite.SetFrame(1, 1)
	if !b.TouchSurface {
		b.airborne = true
	}
	if b.airborne && b.TouchSurface {
		b.slam(ctx)
		b.enter(ctx, PhaseIdle)
		return
	}
	if b.PhaseTimer <= 0 {
		b.enter(ctx, PhaseIdle)
	}
}

func (b *Boss) slam(ctx *object.Context) {
	ctx.Sound("explode", 0.8)
	if ctx.Events != nil {
		ctx.Events.ShakeScreen(6)
	}
	if b.Mode > 0 {
		m := NewSlime(b.Pos.Add(core.Vec(-b.Dir*24, 0)), DefaultConfig("slime"))
		m.DropProbability = 0
		m.InCamera = true
		ctx.Spawn(m)
	}
}

func (b *Boss) WallCollisionEvent(ctx *object.Context, dir int) {
	if b.Phase == PhaseDash {
		if ctx.Events != nil {
			ctx.Events.ShakeScreen(5)
		}
		ctx.Sound("explode", 0.5)
		b.Dir = -float64(dir)
		b.enter(ctx, PhaseIdle)
	}
}

func (b *Boss) Die(ctx *object.Context) {
	b.Phase = PhaseDying
	b.explode = 0
	b.Core.Die(ctx)
}

// DyingLogic sets off explosions and requests the stage clear on the
// last tick of the death timer.
func (b *Boss) DyingLogic(ctx *object.Context) {
	b.Sprite.SetFrame(b.dyingRow, 1)
	b.explode -= ctx.Tick
	if b.explode <= 0 {
		b.explode = bossExplodeEvery
		ctx.Sound("explode", 0.6)
		if ctx.Events != nil {
			ctx.Events.ShakeScreen(3)
		}
	}
	if b.DeathTimer <= ctx.Tick && ctx.Events != nil {
		ctx.Events.Request(event.Transition{Kind: event.KindStageClear})
	}
}
