// Package render draws the world and its entities into a terminal cell grid.
package render

import (
	"github.com/vovakirdan/tui-platformer/internal/assets"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Canvas is the draw surface entities issue calls against. Coordinates are
// cells. Nothing is ever read back.
type Canvas interface {
	DrawBitmap(bmp *assets.Bitmap, flip bool, dx, dy, sx, sy, sw, sh int)
	SetColor(c core.Color)
	FillRect(x, y, w, h int, r rune)
	DrawText(x, y int, text string)
	Size() (w, h int)
}

// ScreenCanvas draws onto a core.Screen.
type ScreenCanvas struct {
	screen *core.Screen
	color  core.Color
	tint   core.Color
}

// NewScreenCanvas wraps a screen.
func NewScreenCanvas(s *core.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s, color: core.ColorWhite}
}

// Screen returns the underlying buffer.
func (c *ScreenCanvas) Screen() *core.Screen {
	return c.screen
}

// SetTint forces every following draw to one colour; ColorDefault clears it.
func (c *ScreenCanvas) SetTint(t core.Color) {
	c.tint = t
}

func (c *ScreenCanvas) pick(col core.Color) core.Color {
	if c.tint != core.ColorDefault {
		return c.tint
	}
	return col
}

// DrawBitmap copies the sheet rectangle (sx, sy, sw, sh) to (dx, dy),
// mirrored horizontally when flip is set. Transparent cells are skipped.
func (c *ScreenCanvas) DrawBitmap(bmp *assets.Bitmap, flip bool, dx, dy, sx, sy, sw, sh int) {
	if bmp == nil {
		return
	}
	col := c.pick(bmp.Color)
	for j := 0; j < sh; j++ {
		for i := 0; i < sw; i++ {
			r, ok := bmp.At(sx+i, sy+j)
			if !ok {
				continue
			}
			x := dx + i
			if flip {
				x = dx + sw - 1 - i
				r = assets.Mirror(r)
			}
			c.screen.SetCell(x, dy+j, core.Cell{Rune: r, Color: col})
		}
	}
}

// SetColor sets the colour for FillRect and DrawText.
func (c *ScreenCanvas) SetColor(col core.Color) {
	c.color = col
}

// FillRect fills a rectangle with r.
func (c *ScreenCanvas) FillRect(x, y, w, h int, r rune) {
	c.screen.DrawRect(x, y, w, h, r, c.pick(c.color))
}

// DrawText writes a string starting at (x, y).
func (c *ScreenCanvas) DrawText(x, y int, text string) {
	c.screen.DrawText(x, y, text, c.pick(c.color))
}

// Size returns the canvas size in cells.
func (c *ScreenCanvas) Size() (int, int) {
	return c.screen.Width(), c.screen.Height()
}
