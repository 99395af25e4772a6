package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/input"
)

// Model is the Bubble Tea model driving one game session.
type Model struct {
	session *game.Session
	mapper  *KeyMapper
	keys    *KeyTracker
	view    *ScreenRenderer
	start   time.Time
	started bool
	err     error
	quit    bool
}

// NewModel wraps a session. The session should already be started.
func NewModel(s *game.Session) *Model {
	return &Model{
		session: s,
		mapper:  NewKeyMapper(),
		keys:    NewKeyTracker(),
		view:    NewScreenRenderer(nil),
	}
}

// UseRenderer styles frames with r, the remote client's renderer over SSH.
func (m *Model) UseRenderer(r *lipgloss.Renderer) {
	m.view = NewScreenRenderer(r)
}

// Err returns the error that stopped the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.session.Loop.FrameTime())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())
	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		return m, nil
	case tea.BlurMsg:
		m.releaseAll()
		return m, nil
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	name, isQuit := m.mapper.KeyName(msg)
	if isQuit {
		m.quit = true
		return m, tea.Quit
	}
	if m.keys.Press(name, now) {
		m.session.Input.Queue().Push(input.KeyDown(name))
	}
	return m, nil
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, key := range m.keys.Expire(now) {
		m.session.Input.Queue().Push(input.KeyUp(key))
	}
	if !m.started {
		m.started = true
		m.start = now
	}
	ms := float64(now.Sub(m.start)) / float64(time.Millisecond)
	if _, err := m.session.Advance(ms); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, tickCmd(m.session.Loop.FrameTime())
}

func (m *Model) releaseAll() {
	for _, key := range m.keys.ReleaseAll() {
		m.session.Input.Queue().Push(input.KeyUp(key))
	}
}

// saveScreenshot writes the current screen as text.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	level := "title"
	if p, ok := m.session.Play(); ok {
		level = p.Stage.Level.ID
	}
	filename := fmt.Sprintf("%s_%s.txt", level, time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.session.Screen().String()), 0o600)
}

// View renders the last drawn frame.
func (m *Model) View() string {
	if m.quit {
		return ""
	}
	return m.view.Render(m.session.Screen())
}

// Run starts a Bubble Tea program for the session and blocks until the
// player quits or the session fails.
func Run(s *game.Session, opts ...tea.ProgramOption) error {
	model := NewModel(s)
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}, opts...)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return err
	}
	return model.Err()
}
