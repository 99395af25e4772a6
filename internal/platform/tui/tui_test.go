package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/storage"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

func TestKeyName(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		name string
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, "", true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, "", true},
		{tea.KeyMsg{Type: tea.KeyLeft}, "left", false},
		{tea.KeyMsg{Type: tea.KeyEnter}, "enter", false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			name, quit := km.KeyName(tt.msg)
			if name != tt.name || quit != tt.quit {
				t.Errorf("KeyName(%q) = (%q, %v), expected (%q, %v)", tt.msg.String(), name, quit, tt.name, tt.quit)
			}
		})
	}
}

func TestKeyTrackerSynthesisesRelease(t *testing.T) {
	k := NewKeyTracker()
	t0 := time.Unix(0, 0)

	if !k.Press("right", t0) {
		t.Fatal("first press should be new")
	}
	if got := k.Expire(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() = %v, expected the key held through the repeat delay", got)
	}
	if k.Press("right", t0.Add(500*time.Millisecond)) {
		t.Error("auto-repeat should not be a new press")
	}
	if got := k.Expire(t0.Add(600 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire() = %v, expected held between repeats", got)
	}
	got := k.Expire(t0.Add(700 * time.Millisecond))
	if len(got) != 1 || got[0] != "right" {
		t.Errorf("Expire() = %v, expected right released", got)
	}
	if k.Held("right") {
		t.Error("released key still held")
	}
}

func TestKeyTrackerReleaseAll(t *testing.T) {
	k := NewKeyTracker()
	now := time.Now()
	k.Press("z", now)
	k.Press("left", now)
	got := k.ReleaseAll()
	if len(got) != 2 || got[0] != "left" || got[1] != "z" {
		t.Errorf("ReleaseAll() = %v, expected [left z]", got)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorDarkGray)
	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("RenderScreen() = %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "ab") || !strings.Contains(out, "cd") {
		t.Errorf("RenderScreen() = %q, expected the text", out)
	}
}

func TestScreenRendererRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	sr := NewScreenRenderer(r)

	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "ab", core.ColorOrange)
	s.DrawText(4, 0, "cd", core.Color(200))

	out := sr.Render(s)
	orange := sr.style(core.ColorOrange).Render("ab")
	if !strings.Contains(orange, "\x1b[") {
		t.Fatalf("orange run = %q, expected ANSI escapes with a 256-colour profile", orange)
	}
	if !strings.HasPrefix(out, orange+"  ") {
		t.Errorf("Render() = %q, expected a styled run then a bare blank run", out)
	}
	if got, want := sr.style(core.Color(200)).Render("x"), sr.style(core.ColorDefault).Render("x"); got != want {
		t.Errorf("unknown colour style = %q, expected default %q", got, want)
	}
}

func newTestSession(t *testing.T) *game.Session {
	t.Helper()
	s, err := game.New(game.Options{
		Config: config.DefaultPlatformerConfig(),
		Width:  60,
		Height: 20,
		Audio:  &audio.Silent{},
		Sync:   true,
	})
	if err != nil {
		t.Fatalf("game.New() error = %v", err)
	}
	s.Start("")
	return s
}

func TestModelFeedsInput(t *testing.T) {
	s := newTestSession(t)
	m := NewModel(s)
	t0 := time.Unix(100, 0)

	m.handleTick(t0)
	m.handleKey(tea.KeyMsg{Type: tea.KeyDown}, t0)
	m.handleKey(tea.KeyMsg{Type: tea.KeyDown}, t0.Add(10*time.Millisecond))
	m.handleTick(t0.Add(20 * time.Millisecond))
	if !s.Input.Down(input.ActionDown) {
		t.Error("down key should reach the input")
	}

	m.handleTick(t0.Add(time.Second))
	m.handleTick(t0.Add(time.Second + 20*time.Millisecond))
	if s.Input.Down(input.ActionDown) {
		t.Error("expired key should be released")
	}
	if !strings.Contains(m.View(), "<") {
		t.Error("View() should show the title")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTestSession(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelStopsOnFailure(t *testing.T) {
	s := newTestSession(t)
	s.Loop.Step = func() error { return errors.New("broken") }
	m := NewModel(s)
	t0 := time.Unix(0, 0)
	m.handleTick(t0)
	_, cmd := m.handleTick(t0.Add(time.Second))
	if m.Err() == nil {
		t.Fatal("Err() should report the failure")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("failure should quit")
	}
}

type fakeRuns struct {
	runs map[string][]storage.RunEntry
}

func (f fakeRuns) TopRuns(level string, _ int) ([]storage.RunEntry, error) {
	return f.runs[level], nil
}

func (f fakeRuns) GetLevelStats(level string) (*storage.LevelStats, error) {
	st := &storage.LevelStats{LevelID: level, Runs: len(f.runs[level])}
	for _, r := range f.runs[level] {
		st.BestCoins = max(st.BestCoins, r.Coins)
	}
	return st, nil
}

func TestStatsModel(t *testing.T) {
	levels := []world.Level{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}}
	store := fakeRuns{runs: map[string][]storage.RunEntry{
		"a": {{LevelID: "a", Coins: 9, Steps: 600, Slot: "default"}},
	}}

	m := NewStatsModel(store, levels, 100, 30)
	if len(m.Runs()) != 1 {
		t.Fatalf("Runs() = %d, expected 1", len(m.Runs()))
	}
	if view := m.View(); !strings.Contains(view, "Alpha") || !strings.Contains(view, "$9") {
		t.Errorf("View() missing level or coins:\n%s", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(StatsModel)
	if m.Cursor() != 1 || len(m.Runs()) != 0 {
		t.Errorf("after tab: cursor %d, runs %d, expected 1 and 0", m.Cursor(), len(m.Runs()))
	}
	if !strings.Contains(m.View(), "No runs recorded") {
		t.Error("empty level should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(StatsModel)
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, expected 0", m.Cursor())
	}

	narrow := NewStatsModel(store, levels, 50, 20)
	if !strings.Contains(narrow.View(), "< Alpha >") {
		t.Error("narrow layout should show the level tab")
	}
}
