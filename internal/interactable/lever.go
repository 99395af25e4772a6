package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// Lever is pulled by attacking it. Doors check its id in stats.
type Lever struct {
	Core

	synced bool
}

func NewLever(pos core.Vector, id string) *Lever {
	l := &Lever{Core: newCore("lever", restOnFloor(pos, 12), 8, 12)}
	l.ID = id
	return l
}

func (l *Lever) UpdateLogic(ctx *object.Context) {
	if !l.synced {
		l.synced = true
		l.CanInteract = !hasItem(ctx, l.ID)
	}
	if !l.CanInteract {
		l.Sprite.SetFrame(0, 1)
	}
}

func (l *Lever) PlayerEvent(ctx *object.Context, p object.Player) {
	if !l.CanInteract || !l.struck(p) {
		return
	}
	l.CanInteract = false
	obtain(ctx, l.ID)
	ctx.Sound("lever", 0.6)
	if ctx.Events != nil {
		ctx.Events.ShakeScreen(2)
	}
}
