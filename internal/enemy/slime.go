package enemy

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// uphillFactor slows walkers climbing a slope.
const uphillFactor = 0.6

// Slime walks back and forth, turning at walls and ledges.
type Slime struct {
	Core

	speed float64
	slope float64 // speed multiplier from the last slope contact
}

func NewSlime(pos core.Vector, cfg Config) *Slime {
	s := &Slime{Core: newCore(cfg, pos), speed: cfg.Speed, slope: 1}
	s.Dir = -1
	s.bind(s)
	return s
}

func (s *Slime) UpdateLogic(ctx *object.Context) {
	if s.UpdateHurt(ctx) {
		return
	}
	if s.TouchSurface && !s.groundAhead(ctx.World) {
		s.Dir = -s.Dir
	}
	if !s.TouchSurface {
		s.slope = 1
	}
	s.Target.X = s.Dir * s.speed * s.slope
	s.Sprite.Animate(0, 0, 1, 12, ctx.Tick)
}

func (s *Slime) WallCollisionEvent(_ *object.Context, dir int) {
	s.Dir = -float64(dir)
}

func (s *Slime) SlopeCollisionEvent(_ *object.Context, dir int, steepness float64) {
	if float64(dir)*steepness < 0 {
		s.slope = uphillFactor
	} else {
		s.slope = 1
	}
}

// EnemyCollisionEvent turns the slime away from whatever it bumped.
func (s *Slime) EnemyCollisionEvent(_ *object.Context, other object.Entity) {
	if d := core.Sign(s.Pos.X - other.Base().Pos.X); d != 0 {
		s.Dir = d
	}
}
