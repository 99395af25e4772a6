package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// palette holds the ANSI 256 code for each core.Color. Empty keeps the
// terminal's own foreground.
var palette = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208", // coins, fire
	core.ColorGray:          "245", // decor layer
	core.ColorDarkGray:      "238", // far background
}

// ScreenRenderer styles frames for one output. Each SSH client gets its
// own, built on a renderer that detects the client's colour profile.
type ScreenRenderer struct {
	styles [len(palette)]lipgloss.Style
}

// NewScreenRenderer builds the palette on r. A nil r uses the local
// terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{}
	for c, code := range palette {
		st := r.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		sr.styles[c] = st
	}
	return sr
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	if int(c) >= len(sr.styles) {
		return sr.styles[core.ColorDefault]
	}
	return sr.styles[c]
}

// Render turns the cell buffer into one string per frame. Cells of one
// colour in a row share a style run; runs of blanks are written bare.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb, run strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			text := run.String()
			if strings.TrimSpace(text) == "" {
				sb.WriteString(text)
				continue
			}
			sb.WriteString(sr.style(color).Render(text))
		}
	}
	return sb.String()
}

// RenderScreen renders s for the local terminal.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
