package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/scene"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Stats layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the level list sidebar
	sidebarWidth       = 22  // Width of level list sidebar
	maxRuns            = 100 // Max runs to load per level
)

// RunStore is what the stats view reads.
type RunStore interface {
	TopRuns(levelID string, limit int) ([]storage.RunEntry, error)
	GetLevelStats(levelID string) (*storage.LevelStats, error)
}

// StatsKeyMap defines the key bindings for the stats view.
type StatsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// StatsModel shows the best runs of each level.
type StatsModel struct {
	levels      []world.Level
	cursor      int
	store       RunStore
	runs        []storage.RunEntry
	summary     *storage.LevelStats
	err         error
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewStatsModel creates a stats view over levels.
func NewStatsModel(store RunStore, levels []world.Level, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		levels:      levels,
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadRuns(m.levels[0].ID)
	}
	return m
}

// createTable creates a table sized for the current layout.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Coins", Width: 7},
		{Title: "Time", Width: 9},
		{Title: "Slot", Width: 10},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth > 60 {
		columns[3].Width = min(20, tableWidth-42)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// loadRuns loads runs and the summary for a level.
func (m *StatsModel) loadRuns(levelID string) {
	m.runs, m.summary, m.err = nil, nil, nil
	if m.store != nil {
		if m.runs, m.err = m.store.TopRuns(levelID, maxRuns); m.err == nil {
			m.summary, m.err = m.store.GetLevelStats(levelID)
		}
	}
	m.updateTableRows()
}

func (m *StatsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("$%d", r.Coins),
			scene.FormatSteps(r.Steps),
			r.Slot,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *StatsModel) moveLevel(d int) {
	if len(m.levels) == 0 {
		return
	}
	n := len(m.levels)
	m.cursor = (m.cursor + d + n) % n
	m.loadRuns(m.levels[m.cursor].ID)
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats view.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLevel):
			m.moveLevel(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.moveLevel(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats view.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "BEST RUNS"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("BEST RUNS - %s", m.levels[m.cursor].Name)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m StatsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")
	for i, lvl := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(lvl.Name, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", m.renderTableBox())
}

func (m StatsModel) renderNarrowLayout() string {
	tabLine := "no levels"
	if len(m.levels) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.levels[m.cursor].Name)
	}
	return centerText(tabLine, m.width) + "\n\n" + m.renderTableBox()
}

func (m StatsModel) renderTableBox() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return boxStyle.Render(m.renderSummary() + "\n" + m.renderTableContent())
}

func (m StatsModel) renderSummary() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.summary == nil || m.summary.Runs == 0 {
		return style.Render("never cleared")
	}
	return style.Render(fmt.Sprintf("%d clears · best $%d · fastest %s",
		m.summary.Runs, m.summary.BestCoins, scene.FormatSteps(m.summary.BestSteps)))
}

func (m StatsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)
	switch {
	case m.err != nil:
		return emptyStyle.Render("Could not read runs: " + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nClear the level to set one!")
	}
	return m.table.View()
}

// Cursor returns the index of the selected level.
func (m StatsModel) Cursor() int {
	return m.cursor
}

// Runs returns the loaded runs of the selected level.
func (m StatsModel) Runs() []storage.RunEntry {
	return m.runs
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunStats runs the stats view until the user quits.
func RunStats(store RunStore, levels []world.Level, width, height int) error {
	_, err := tea.NewProgram(NewStatsModel(store, levels, width, height), tea.WithAltScreen()).Run()
	return err
}
