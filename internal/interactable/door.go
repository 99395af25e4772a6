package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// Door ends the level when the player presses up in front of it. A door
// with Requires stays locked until that item is in stats. An empty To
// means the stage is cleared and the level's own successor follows.
type Door struct {
	Core

	To       string
	Requires string
}

func NewDoor(pos core.Vector, to, requires string) *Door {
	d := &Door{Core: newCore("door", restOnFloor(pos, 32), 16, 32), To: to, Requires: requires}
	d.Sprite = core.NewSprite(2, 2)
	return d
}

// Locked reports whether the door still needs its item.
func (d *Door) Locked(ctx *object.Context) bool {
	return d.Requires != "" && !hasItem(ctx, d.Requires)
}

func (d *Door) UpdateLogic(ctx *object.Context) {
	if !d.Locked(ctx) {
		d.Sprite.SetFrame(0, 1)
	}
}

func (d *Door) PlayerEvent(ctx *object.Context, p object.Player) {
	if !d.CanInteract || !d.touching(p) || !upPressed(ctx) || ctx.Events == nil {
		return
	}
	if d.Locked(ctx) {
		ctx.Events.Message("The door is locked.")
		return
	}
	d.CanInteract = false
	ctx.Sound("door", 0.7)
	if d.To != "" {
		ctx.Events.Request(event.Transition{Kind: event.KindLevel, Level: d.To})
		return
	}
	ctx.Events.Request(event.Transition{Kind: event.KindStageClear})
}
