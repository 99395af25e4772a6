package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// Checkpoint moves the respawn point and saves stats on first touch.
// One saved in an earlier attempt is lit but still interactable, so a
// retry can claim it again.
type Checkpoint struct {
	Core

	synced bool
}

func NewCheckpoint(pos core.Vector, id string) *Checkpoint {
	c := &Checkpoint{Core: newCore("checkpoint", restOnFloor(pos, 32), 8, 32)}
	c.ID = id
	c.Sprite = core.NewSprite(1, 2)
	return c
}

func (c *Checkpoint) UpdateLogic(ctx *object.Context) {
	if !c.synced {
		c.synced = true
		if hasItem(ctx, c.ID) {
			c.Sprite.SetFrame(0, 1)
		}
	}
	if !c.CanInteract {
		c.Sprite.SetFrame(0, 1)
	}
}

func (c *Checkpoint) PlayerEvent(ctx *object.Context, p object.Player) {
	if !c.CanInteract || !c.touching(p) {
		return
	}
	c.CanInteract = false
	p.SetCheckpoint(core.Vec(c.Pos.X, c.Bottom()-p.Base().CollisionBox.H/2))
	obtain(ctx, c.ID)
	ctx.Sound("checkpoint", 0.6)
	if ctx.Stats == nil || ctx.Events == nil {
		return
	}
	if err := ctx.Stats.Save(); err != nil {
		ctx.Events.Message("Save failed: " + err.Error())
		return
	}
	ctx.Events.Saved = true
}
