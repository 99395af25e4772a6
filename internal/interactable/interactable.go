// Package interactable holds the non-hostile entities a level places:
// coins, chests, levers, springs, doors, checkpoints and signs.
package interactable

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Core is shared by every interactable.
type Core struct {
	object.Object

	Kind string
	ID   string // stats item id, empty when the entity persists nothing
	// CanInteract gates every player reaction. One-shot variants clear it
	// once used, or on their first step when stats already hold their item.
	CanInteract bool
}

func newCore(kind string, pos core.Vector, w, h float64) Core {
	o := object.New(pos, w, h)
	o.Sprite = core.NewSprite(1, 1)
	return Core{Object: o, Kind: kind, CanInteract: true}
}

func (b *Core) Base() *object.Object { return &b.Object }

// Draw renders the current sprite frame from the sheet named after the kind.
func (b *Core) Draw(f *render.Frame) {
	f.Sprite(b.Kind, b.Sprite, b.Pos, b.Dir < 0)
}

// touching reports whether the player's hitbox overlaps b.
func (b *Core) touching(p object.Player) bool {
	return b.Overlaps(p.Base())
}

// struck reports whether the player's active attack box overlaps b.
func (b *Core) struck(p object.Player) bool {
	box, ok := p.AttackBox()
	if !ok {
		return false
	}
	return core.OverlayRect(p.Base().Pos, box, b.Pos, b.Hitbox)
}

// itemID derives a stable stats id from the spawn unless props name one.
func itemID(sp world.Spawn) string {
	return sp.Prop("id", fmt.Sprintf("%s-%g-%g", sp.Kind, sp.X, sp.Y))
}

func hasItem(ctx *object.Context, id string) bool {
	return ctx.Stats != nil && id != "" && ctx.Stats.HasItem(id)
}

func obtain(ctx *object.Context, id string) {
	if ctx.Stats != nil && id != "" {
		ctx.Stats.ObtainItem(id)
	}
}

func upPressed(ctx *object.Context) bool {
	return ctx.Input != nil && (ctx.Input.Pressed(input.ActionUp) || ctx.Input.UpPress())
}

// restOnFloor snaps a spawn so the entity's bottom sits on its tile's floor.
func restOnFloor(pos core.Vector, h float64) core.Vector {
	_, ty := world.CellOf(pos.X, pos.Y)
	pos.Y = float64(ty+1)*world.TileSize - h/2
	return pos
}
