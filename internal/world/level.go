package world

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Spawn places one entity when a level starts. X and Y are tile coordinates;
// the entity is centred on the tile's floor-adjacent midpoint.
type Spawn struct {
	Kind  string            `yaml:"kind"`
	X     float64           `yaml:"x"`
	Y     float64           `yaml:"y"`
	Props map[string]string `yaml:"props,omitempty"`
}

// At returns the world position of the spawn.
func (s Spawn) At() core.Vector {
	return TileCenter(s.X, s.Y)
}

// Prop returns a property or def when unset.
func (s Spawn) Prop(key, def string) string {
	if v, ok := s.Props[key]; ok {
		return v
	}
	return def
}

// TileCenter converts tile coordinates to the world centre of that tile.
func TileCenter(tx, ty float64) core.Vector {
	return core.Vec(tx*TileSize+TileSize/2, ty*TileSize+TileSize/2)
}

// yamlLevel is the on-disk level format.
type yamlLevel struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Music  string  `yaml:"music,omitempty"`
	Next   string  `yaml:"next,omitempty"`
	Tiles  string  `yaml:"tiles"`
	Decor  string  `yaml:"decor,omitempty"`
	Spawns []Spawn `yaml:"spawns,omitempty"`
}

// Level is a parsed level ready to build a stage from.
type Level struct {
	ID       string
	Name     string
	Music    string
	Next     string
	Map      *Map
	Start    core.Vector
	Spawns   []Spawn
	FilePath string
}

// ParseLevel decodes a YAML level. The player start is the 'P' cell of the
// tile block; a level without one starts at the top-left tile.
func ParseLevel(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}

	rows := splitRows(yl.Tiles)
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("level %q has no tiles", yl.ID)
	}
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}

	lvl := Level{
		ID:     yl.ID,
		Name:   yl.Name,
		Music:  yl.Music,
		Next:   yl.Next,
		Map:    NewMap(w, len(rows)),
		Start:  TileCenter(0, 0),
		Spawns: yl.Spawns,
	}
	if lvl.Name == "" {
		lvl.Name = yl.ID
	}

	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == 'P' {
				lvl.Start = TileCenter(float64(x), float64(y))
				continue
			}
			lvl.Map.set(LayerCollision, x, y, TileFromRune(r))
		}
	}
	for y, row := range splitRows(yl.Decor) {
		for x, r := range []rune(row) {
			lvl.Map.set(LayerDecor, x, y, TileFromRune(r))
		}
	}

	for i, s := range lvl.Spawns {
		if s.Kind == "" {
			return Level{}, fmt.Errorf("level %q: spawn %d has no kind", yl.ID, i)
		}
	}
	return lvl, nil
}

func splitRows(block string) []string {
	block = strings.Trim(block, "\n")
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}
