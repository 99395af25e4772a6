package enemy

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

const (
	turretRange    = 160.0
	turretCooldown = 90.0
	turretShotLife = 120.0
	turretFlash    = 10.0
)

// Turret sits still and fires at the player when it is in range.
type Turret struct {
	Core

	Cooldown  float64
	shotSpeed float64
}

func NewTurret(pos core.Vector, cfg Config) *Turret {
	t := &Turret{Core: newCore(cfg, pos), shotSpeed: cfg.Speed, Cooldown: turretCooldown / 2}
	t.bind(t)
	return t
}

func (t *Turret) UpdateLogic(ctx *object.Context) {
	t.Target.X = 0
	if t.UpdateHurt(ctx) {
		return
	}
	if t.Cooldown > 0 {
		t.Cooldown -= ctx.Tick
	}
	if t.Cooldown > turretCooldown-turretFlash {
		t.Sprite.SetFrame(1, 1)
	} else {
		t.Sprite.SetFrame(0, 0)
	}
}

// PlayerEvent aims and fires.
func (t *Turret) PlayerEvent(ctx *object.Context, p object.Player) {
	t.Core.PlayerEvent(ctx, p)
	if t.HurtTimer > 0 || t.Cooldown > 0 {
		return
	}
	d := t.distTo(p)
	if d.Length() > turretRange {
		return
	}
	t.Face(d.X)
	t.Cooldown = turretCooldown
	ctx.Sound("shoot", 0.4)
	ctx.Shoot(object.ShotSpec{
		Pos:    t.Pos.Add(core.Vec(t.Dir*8, -2)),
		Speed:  d.Normalize(true).Scale(t.shotSpeed),
		Damage: t.AttackPower,
		Life:   turretShotLife,
	})
}
