// Package assets owns the render and audio resources entities refer to by
// name. Lookups never fail loudly: a missing or not-yet-loaded asset is
// reported through the ok flag and callers skip the draw or sound.
package assets

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Bitmap is a glyph sheet. Frame (col, row) occupies the rectangle
// (col*FrameW, row*FrameH, FrameW, FrameH) of Rows.
type Bitmap struct {
	Name   string
	FrameW int
	FrameH int
	Color  core.Color
	Rows   [][]rune
}

// NewBitmap builds a sheet from text rows.
func NewBitmap(name string, frameW, frameH int, color core.Color, rows []string) *Bitmap {
	b := &Bitmap{Name: name, FrameW: max(frameW, 1), FrameH: max(frameH, 1), Color: color}
	for _, r := range rows {
		b.Rows = append(b.Rows, []rune(r))
	}
	return b
}

// At returns the glyph at sheet cell (x, y) and whether it is opaque.
// Spaces and cells outside the sheet are transparent.
func (b *Bitmap) At(x, y int) (rune, bool) {
	if b == nil || y < 0 || y >= len(b.Rows) || x < 0 || x >= len(b.Rows[y]) {
		return 0, false
	}
	r := b.Rows[y][x]
	return r, r != ' '
}

var mirrored = map[rune]rune{
	'<': '>', '>': '<',
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'/': '\\', '\\': '/',
}

// Mirror returns the horizontally flipped form of a glyph.
func Mirror(r rune) rune {
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}
