// Package world holds the tile map the simulation collides against and the
// level files that describe it. Entities only query the map; they never
// modify tile data.
package world

import (
	"math"
)

// TileSize is the edge length of one tile in world units.
const TileSize = 16.0

// Tile identifies what occupies one map cell.
type Tile int

const (
	TileEmpty Tile = iota
	TileSolid
	TileSlopeUp   // '/' rises to the right
	TileSlopeDown // '\' falls to the right
	TileWater
	TileSpikes
	TileOneWay
)

// Layers of a map. Only the collision layer affects physics.
const (
	LayerCollision = iota
	LayerDecor
	layerCount
)

// Direction passed to wall queries; the side being probed.
const (
	DirLeft  = -1
	DirNone  = 0
	DirRight = 1
)

var tileRunes = map[rune]Tile{
	'.': TileEmpty,
	' ': TileEmpty,
	'#': TileSolid,
	'/': TileSlopeUp,
	'\\': TileSlopeDown,
	'~': TileWater,
	'^': TileSpikes,
	'=': TileOneWay,
}

// TileFromRune decodes a level character. Unknown runes are empty.
func TileFromRune(r rune) Tile {
	return tileRunes[r]
}

// Rune returns the level character for t.
func (t Tile) Rune() rune {
	switch t {
	case TileSolid:
		return '#'
	case TileSlopeUp:
		return '/'
	case TileSlopeDown:
		return '\\'
	case TileWater:
		return '~'
	case TileSpikes:
		return '^'
	case TileOneWay:
		return '='
	}
	return '.'
}

// IsSlope reports whether t is either slope.
func (t Tile) IsSlope() bool {
	return t == TileSlopeUp || t == TileSlopeDown
}

// Map is a rectangular, layered tile grid.
type Map struct {
	width, height int
	layers        [layerCount][]Tile
}

// NewMap creates an empty map of w x h tiles.
func NewMap(w, h int) *Map {
	m := &Map{width: w, height: h}
	for i := range m.layers {
		m.layers[i] = make([]Tile, w*h)
	}
	return m
}

// Width returns the width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the height in tiles.
func (m *Map) Height() int { return m.height }

// PixelWidth returns the width in world units.
func (m *Map) PixelWidth() float64 { return float64(m.width) * TileSize }

// PixelHeight returns the height in world units.
func (m *Map) PixelHeight() float64 { return float64(m.height) * TileSize }

func (m *Map) set(layer, x, y int, t Tile) {
	if layer < 0 || layer >= layerCount || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.layers[layer][y*m.width+x] = t
}

// TileAt returns the tile at tile coordinates (x, y) on layer,
// or def when the query falls outside the map.
func (m *Map) TileAt(layer, x, y int, def Tile) Tile {
	if m == nil || layer < 0 || layer >= layerCount || x < 0 || y < 0 || x >= m.width || y >= m.height {
		return def
	}
	return m.layers[layer][y*m.width+x]
}

// CellOf converts a world position to tile coordinates.
func CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / TileSize)), int(math.Floor(y / TileSize))
}

// outside returns the tile reported for points off the map: the side
// edges are walls, the sky and the pit below are empty. A nil map is
// empty everywhere.
func (m *Map) outside(tx int) Tile {
	if m == nil {
		return TileEmpty
	}
	if tx < 0 || tx >= m.width {
		return TileSolid
	}
	return TileEmpty
}

// TileAtPoint returns the collision tile under a world position.
func (m *Map) TileAtPoint(x, y float64) Tile {
	tx, ty := CellOf(x, y)
	return m.TileAt(LayerCollision, tx, ty, m.outside(tx))
}

// IsWall reports whether the world point is inside a solid tile.
// Slopes are not walls; they are resolved through SlopeHeight.
// One-way platforms only block downward motion (dir == DirNone with
// the caller checking it was above the platform).
func (m *Map) IsWall(x, y float64, dir int) bool {
	switch m.TileAtPoint(x, y) {
	case TileSolid:
		return true
	case TileOneWay:
		return dir == DirNone
	}
	return false
}

// IsSolid reports whether the point is inside a fully solid tile.
// Ceilings use it; one-way platforms and slopes never block from below.
func (m *Map) IsSolid(x, y float64) bool {
	return m.TileAtPoint(x, y) == TileSolid
}

// IsOneWay reports whether the point is inside a one-way platform tile.
func (m *Map) IsOneWay(x, y float64) bool {
	return m.TileAtPoint(x, y) == TileOneWay
}

// SlopeHeight returns the surface height of the slope tile containing
// (x, y) and its steepness (dy/dx): -1 for '/', +1 for '\'.
// ok is false when the point is not in a slope tile.
func (m *Map) SlopeHeight(x, y float64) (surface, steepness float64, ok bool) {
	tx, ty := CellOf(x, y)
	t := m.TileAt(LayerCollision, tx, ty, TileEmpty)
	if !t.IsSlope() {
		return 0, 0, false
	}
	local := (x - float64(tx)*TileSize) / TileSize
	top := float64(ty) * TileSize
	if t == TileSlopeUp {
		return top + TileSize*(1-local), -1, true
	}
	return top + TileSize*local, 1, true
}

// IsWater reports whether the point is submerged.
func (m *Map) IsWater(x, y float64) bool {
	return m.TileAtPoint(x, y) == TileWater
}

// WaterSurface returns the y of the top of the water column containing (x, y).
func (m *Map) WaterSurface(x, y float64) (float64, bool) {
	tx, ty := CellOf(x, y)
	if m.TileAt(LayerCollision, tx, ty, TileEmpty) != TileWater {
		return 0, false
	}
	for ty > 0 && m.TileAt(LayerCollision, tx, ty-1, TileEmpty) == TileWater {
		ty--
	}
	return float64(ty) * TileSize, true
}

// IsHazard reports whether the point touches spikes.
func (m *Map) IsHazard(x, y float64) bool {
	return m.TileAtPoint(x, y) == TileSpikes
}
