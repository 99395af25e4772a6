// Package tui runs a game session in a terminal with Bubble Tea, locally
// or over SSH, and shows saved stats.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the session clock.
type TickMsg time.Time

// tickCmd schedules the next TickMsg after frameTime milliseconds.
func tickCmd(frameTime float64) tea.Cmd {
	interval := time.Duration(frameTime * float64(time.Millisecond))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
