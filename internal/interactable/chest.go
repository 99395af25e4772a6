package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// Chest opens on touch, spills coins and is remembered in stats.
type Chest struct {
	Core

	Coins  int
	synced bool
}

func NewChest(pos core.Vector, id string, coins int) *Chest {
	c := &Chest{Core: newCore("chest", restOnFloor(pos, 10), 14, 10), Coins: coins}
	c.ID = id
	c.Sprite = core.NewSprite(2, 1)
	return c
}

func (c *Chest) UpdateLogic(ctx *object.Context) {
	if !c.synced {
		c.synced = true
		c.CanInteract = !hasItem(ctx, c.ID)
	}
	if !c.CanInteract {
		c.Sprite.SetFrame(0, 1)
	}
}

func (c *Chest) PlayerEvent(ctx *object.Context, p object.Player) {
	if !c.CanInteract || !c.touching(p) {
		return
	}
	c.CanInteract = false
	obtain(ctx, c.ID)
	ctx.Sound("chest", 0.6)
	for i := 0; i < c.Coins; i++ {
		vx := float64(i-c.Coins/2) * 0.6
		ctx.Spawn(DropCoin(c.Pos.Add(core.Vec(0, -8)), CoinCopper, core.Vec(vx, -3-float64(i%2))))
	}
}
