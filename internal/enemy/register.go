package enemy

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// constructors maps each kind to its variant constructor.
var constructors = map[string]func(core.Vector, Config) Enemy{
	"slime":  func(p core.Vector, c Config) Enemy { return NewSlime(p, c) },
	"bat":    func(p core.Vector, c Config) Enemy { return NewBat(p, c) },
	"turret": func(p core.Vector, c Config) Enemy { return NewTurret(p, c) },
	"brute":  func(p core.Vector, c Config) Enemy { return NewBrute(p, c) },
	"boss":   func(p core.Vector, c Config) Enemy { return NewBoss(p, c) },
}

func init() {
	for _, kind := range Kinds() {
		build := constructors[kind]
		registry.Register(kind, registry.CategoryEnemy, func(sp world.Spawn, env *registry.Env) object.Entity {
			cfg := ConfigFor(kind, env)
			return build(floorSpawn(sp.At(), cfg.Height), cfg)
		})
	}
}

// floorSpawn puts the enemy's feet on the floor of its spawn tile.
func floorSpawn(pos core.Vector, h float64) core.Vector {
	_, ty := world.CellOf(pos.X, pos.Y)
	pos.Y = float64(ty+1)*world.TileSize - h/2 - 0.01
	return pos
}
