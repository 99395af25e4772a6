package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

const springRecoil = 12.0

// Spring launches a player that lands on it.
type Spring struct {
	Core

	Power  float64
	recoil float64
}

func NewSpring(pos core.Vector, power float64) *Spring {
	s := &Spring{Core: newCore("spring", restOnFloor(pos, 6), 14, 6), Power: power}
	s.Sprite = core.NewSprite(2, 1)
	return s
}

func (s *Spring) UpdateLogic(ctx *object.Context) {
	if s.recoil > 0 {
		s.recoil -= ctx.Tick
		s.Sprite.SetFrame(0, 1)
	} else {
		s.Sprite.SetFrame(0, 0)
	}
}

func (s *Spring) PlayerEvent(ctx *object.Context, p object.Player) {
	po := p.Base()
	if !s.CanInteract || po.Speed.Y <= 0 || !s.touching(p) {
		return
	}
	// Only from above: the player's feet must be over the coil.
	if po.Bottom() > s.Pos.Y+2 {
		return
	}
	p.Launch(-s.Power)
	s.recoil = springRecoil
	ctx.Sound("spring", 0.6)
}
