// Package player implements the entity the user controls.
package player

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/render"
)

const (
	width       = 8.0
	height      = 14.0
	knockPower  = 3.0
	stickDead   = 0.2
	hazardPower = 1
)

// Sheet rows.
const (
	rowRun = iota
	rowAttack
	rowAir
	rowSwim
	rowHurt
)

// Player is driven by ctx.Input. A nil input leaves it standing still.
type Player struct {
	object.Object

	Health     int
	MaxHealth  int
	Coins      int
	Checkpoint core.Vector

	cfg      Config
	invuln   float64
	stun     float64
	coyote   float64
	buffer   float64
	attack   float64
	cooldown float64
	jumping  bool
}

// New places a player at pos.
func New(pos core.Vector, cfg Config) *Player {
	o := object.New(pos, width, height)
	o.Weight = true
	o.Friction.X = cfg.GroundFriction
	o.InCamera = true
	return &Player{
		Object:     o,
		Health:     cfg.Health,
		MaxHealth:  cfg.Health,
		Checkpoint: pos,
		cfg:        cfg,
	}
}

func (p *Player) Base() *object.Object { return &p.Object }

// AlwaysActive keeps the player simulated when the camera lags behind.
func (p *Player) AlwaysActive() bool { return true }

// Invulnerable reports whether hits are currently ignored.
func (p *Player) Invulnerable() bool { return p.invuln > 0 }

// Attacking reports whether the attack box is live.
func (p *Player) Attacking() bool { return p.attack > 0 }

// AttackDamage is the damage a landed attack deals.
func (p *Player) AttackDamage() int { return p.cfg.AttackDamage }

func (p *Player) UpdateLogic(ctx *object.Context) {
	p.countDown(ctx.Tick)
	in := ctx.Input

	if p.TouchSurface {
		p.coyote = p.cfg.CoyoteTime
		p.jumping = false
	}

	dx := 0.0
	if in != nil && p.stun <= 0 {
		dx = in.Stick().X
		if dx > -stickDead && dx < stickDead {
			dx = 0
		}
	}
	p.Target.X = dx * p.cfg.WalkSpeed
	p.Friction.X = p.cfg.AirFriction
	if p.TouchSurface {
		p.Friction.X = p.cfg.GroundFriction
	}
	p.Face(dx)

	if in != nil && p.stun <= 0 {
		p.controls(ctx, in)
	}
	if p.OnHazard {
		p.Hurt(ctx, hazardPower, p.Pos.Add(core.Vec(0, height)))
	}
	p.animate(ctx.Tick, dx)
}

func (p *Player) countDown(tick float64) {
	for _, t := range []*float64{&p.invuln, &p.stun, &p.coyote, &p.buffer, &p.attack, &p.cooldown} {
		if *t > 0 {
			*t = max(0, *t-tick)
		}
	}
}

func (p *Player) controls(ctx *object.Context, in *input.Input) {
	if in.Pressed(input.ActionJump) {
		p.buffer = p.cfg.JumpBuffer
	}

	switch {
	case p.buffer > 0 && in.Down(input.ActionDown) && p.standingOnOneWay(ctx):
		p.DropThrough = true
		p.buffer = 0
	case p.buffer > 0 && p.InWater:
		p.Speed.Y = -p.cfg.SwimSpeed
		p.buffer = 0
		ctx.Sound("jump", 0.3)
	case p.buffer > 0 && p.coyote > 0:
		p.Speed.Y = -p.cfg.JumpSpeed
		p.buffer, p.coyote = 0, 0
		p.jumping = true
		ctx.Sound("jump", 0.5)
	}

	if p.jumping && !in.Down(input.ActionJump) && p.Speed.Y < 0 {
		p.Speed.Y *= p.cfg.JumpCut
		p.jumping = false
	}

	if in.Pressed(input.ActionAttack) && p.cooldown <= 0 {
		p.attack = p.cfg.AttackTime
		p.cooldown = p.cfg.AttackCooldown
		ctx.Sound("attack", 0.4)
	}
}

func (p *Player) standingOnOneWay(ctx *object.Context) bool {
	return p.TouchSurface && ctx.World.IsOneWay(p.Pos.X, p.Bottom()+1)
}

func (p *Player) animate(tick, dx float64) {
	switch {
	case p.stun > 0:
		p.Sprite.SetFrame(rowHurt, 0)
	case p.attack > 0:
		p.Sprite.SetFrame(rowAttack, 1)
	case p.InWater:
		p.Sprite.Animate(rowSwim, 0, 1, 10, tick)
	case !p.TouchSurface && p.Speed.Y < 0:
		p.Sprite.SetFrame(rowAir, 0)
	case !p.TouchSurface:
		p.Sprite.SetFrame(rowAir, 1)
	case dx != 0:
		p.Sprite.Animate(rowRun, 0, 1, 6, tick)
	default:
		p.Sprite.SetFrame(rowRun, 0)
	}
}

// Hurt takes damage unless invulnerable and knocks the player away from
// the source.
func (p *Player) Hurt(ctx *object.Context, damage int, from core.Vector) bool {
	if !p.Alive() || p.invuln > 0 || damage <= 0 {
		return false
	}
	p.Health = max(0, p.Health-damage)
	p.invuln = p.cfg.InvulnTime
	p.stun = p.cfg.StunTime
	p.attack = 0
	p.jumping = false
	p.Knockback(from, knockPower, p.cfg.Knockback)
	ctx.Sound("hurt", 0.7)
	if ctx.Events != nil {
		ctx.Events.FlashScreen(6)
		ctx.Events.ShakeScreen(3)
	}
	if p.Health == 0 {
		object.Kill(ctx, p, p.cfg.DeathTime)
	}
	return true
}

func (p *Player) Heal(n int) {
	p.Health = min(p.MaxHealth, p.Health+n)
}

func (p *Player) AddCoins(n int) {
	p.Coins += n
}

// AttackBox is the sword swing in front of the player.
func (p *Player) AttackBox() (core.Rect, bool) {
	if p.attack <= 0 || !p.Alive() {
		return core.Rect{}, false
	}
	return core.NewRect(p.Dir*12, 0, 16, 10), true
}

func (p *Player) Launch(speedY float64) {
	p.Speed.Y = speedY
	p.jumping = false
	p.coyote = 0
}

func (p *Player) SetCheckpoint(pos core.Vector) {
	p.Checkpoint = pos
}

// Perish kills the player outright, as falling off the map does.
func (p *Player) Perish(ctx *object.Context) {
	p.Health = 0
	object.Kill(ctx, p, p.cfg.DeathTime)
}

func (p *Player) Die(ctx *object.Context) {
	ctx.Sound("explode", 0.6)
}

// DyingLogic asks for the game-over scene on the last tick.
func (p *Player) DyingLogic(ctx *object.Context) {
	p.Sprite.SetFrame(rowHurt, 1)
	if p.DeathTimer <= ctx.Tick && ctx.Events != nil {
		ctx.Events.Request(event.Transition{Kind: event.KindGameOver})
	}
}

func (p *Player) Draw(f *render.Frame) {
	if p.invuln > 0 && p.Alive() && f.Flicker() {
		return
	}
	f.Sprite("player", p.Sprite, p.Pos, p.Dir < 0)
}
