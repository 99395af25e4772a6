package render

import (
	"github.com/vovakirdan/tui-platformer/internal/assets"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Frame bundles what a draw hook needs.
type Frame struct {
	Canvas Canvas
	Camera *Camera
	Assets *assets.Registry
	Count  int // rendered frame counter, drives flicker
}

// Sprite draws the current frame of spr from the named sheet centred on pos.
// A missing sheet draws nothing.
func (f *Frame) Sprite(name string, spr core.Sprite, pos core.Vector, flip bool) {
	bmp, ok := f.Assets.GetBitmap(name)
	if !ok {
		return
	}
	cx, cy := f.Camera.ToCell(pos)
	sx, sy, sw, sh := spr.Source()
	f.Canvas.DrawBitmap(bmp, flip, cx-sw/2, cy-sh/2, sx, sy, sw, sh)
}

// Flicker reports whether a blinking entity should be hidden this frame.
func (f *Frame) Flicker() bool {
	return f.Count/3%2 == 1
}

// Text draws a string at a world position.
func (f *Frame) Text(pos core.Vector, text string, c core.Color) {
	x, y := f.Camera.ToCell(pos)
	f.Canvas.SetColor(c)
	f.Canvas.DrawText(x-len([]rune(text))/2, y, text)
}

type tileStyle struct {
	glyphs [2]rune
	color  core.Color
}

var tileStyles = map[world.Tile]tileStyle{
	world.TileSolid:     {[2]rune{'█', '█'}, core.ColorGray},
	world.TileSlopeUp:   {[2]rune{'▗', '█'}, core.ColorGray},
	world.TileSlopeDown: {[2]rune{'█', '▖'}, core.ColorGray},
	world.TileWater:     {[2]rune{'~', '~'}, core.ColorBlue},
	world.TileSpikes:    {[2]rune{'^', '^'}, core.ColorRed},
	world.TileOneWay:    {[2]rune{'=', '='}, core.ColorOrange},
}

// DrawMap draws the decor layer, then the collision layer, for the
// tiles under the viewport.
func (f *Frame) DrawMap(m *world.Map) {
	if m == nil {
		return
	}
	cols, rows := f.Canvas.Size()
	tl := f.Camera.ToWorld(0, 0)
	br := f.Camera.ToWorld(cols, rows)
	x0, y0 := world.CellOf(tl.X, tl.Y)
	x1, y1 := world.CellOf(br.X, br.Y)

	for _, layer := range []int{world.LayerDecor, world.LayerCollision} {
		for ty := y0; ty <= y1; ty++ {
			for tx := x0; tx <= x1; tx++ {
				t := m.TileAt(layer, tx, ty, world.TileEmpty)
				st, ok := tileStyles[t]
				if !ok {
					continue
				}
				col := st.color
				if layer == world.LayerDecor {
					col = core.ColorDarkGray
				}
				cx, cy := f.Camera.ToCell(world.TileCenter(float64(tx), float64(ty)))
				f.Canvas.SetColor(col)
				// TileCenter falls on the second column of the tile.
				f.Canvas.DrawText(cx-1, cy, string(st.glyphs[:]))
			}
		}
	}
}
