package interactable

import (
	"strconv"

	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func init() {
	cat := registry.CategoryInteractable
	registry.Register("coin", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewCoin(sp.At(), propInt(sp, "type", CoinCopper))
	})
	registry.Register("chest", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewChest(sp.At(), itemID(sp), propInt(sp, "coins", 3))
	})
	registry.Register("lever", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewLever(sp.At(), itemID(sp))
	})
	registry.Register("spring", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewSpring(sp.At(), propFloat(sp, "power", 12))
	})
	registry.Register("door", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewDoor(sp.At(), sp.Prop("to", ""), sp.Prop("requires", ""))
	})
	registry.Register("checkpoint", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewCheckpoint(sp.At(), itemID(sp))
	})
	registry.Register("sign", cat, func(sp world.Spawn, _ *registry.Env) object.Entity {
		return NewSign(sp.At(), sp.Prop("text", ""))
	})
}

func propInt(sp world.Spawn, key string, def int) int {
	v, err := strconv.Atoi(sp.Prop(key, ""))
	if err != nil {
		return def
	}
	return v
}

func propFloat(sp world.Spawn, key string, def float64) float64 {
	v, err := strconv.ParseFloat(sp.Prop(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}
