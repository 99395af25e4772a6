package interactable

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
)

// Sign shows its text when the player walks up to it.
type Sign struct {
	Core

	Text   string
	inside bool
}

func NewSign(pos core.Vector, text string) *Sign {
	return &Sign{Core: newCore("sign", restOnFloor(pos, 8), 12, 16), Text: text}
}

func (s *Sign) UpdateLogic(*object.Context) {}

func (s *Sign) PlayerEvent(ctx *object.Context, p object.Player) {
	in := s.CanInteract && s.touching(p)
	if in && (!s.inside || upPressed(ctx)) && ctx.Events != nil && s.Text != "" {
		ctx.Events.Message(s.Text)
	}
	s.inside = in
}
