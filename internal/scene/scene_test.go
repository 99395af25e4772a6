package scene

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/assets"
	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/event"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/render"
	"github.com/vovakirdan/tui-platformer/internal/world"
)

type runs struct {
	levels []string
}

func (r *runs) RecordRun(level string, _ int, _ int64) error {
	r.levels = append(r.levels, level)
	return nil
}

type fixture struct {
	m     *Manager
	in    *input.Input
	sound *audio.Silent
	runs  *runs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := assets.NewRegistry(nil)
	if err := reg.Load(assets.DefaultManifest()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	f := &fixture{in: input.New(input.DefaultConfig()), sound: &audio.Silent{}, runs: &runs{}}
	f.m = NewManager(&Env{
		Levels: world.NewLoader(""),
		Input:  f.in,
		Camera: render.NewCamera(40, 15),
		Audio:  f.sound,
		Assets: reg,
		Runs:   f.runs,
	})
	return f
}

// step runs n logic steps with the given keys going down on the first.
func (f *fixture) step(n int, keys ...string) {
	for _, k := range keys {
		f.in.Queue().Push(input.KeyDown(k))
	}
	for i := 0; i < n; i++ {
		f.in.Update()
		f.m.Update()
	}
	for _, k := range keys {
		f.in.Queue().Push(input.KeyUp(k))
	}
}

func (f *fixture) settle() {
	f.step(int(DefaultFade) + 1)
}

func (f *fixture) play(t *testing.T) *Play {
	t.Helper()
	p, ok := f.m.Current().(*Play)
	if !ok {
		t.Fatalf("current scene is %T, expected *Play", f.m.Current())
	}
	return p
}

func TestTransitionSwapsAtMidpoint(t *testing.T) {
	tr := NewTransition(10)
	swaps := 0
	tr.Start(func() { swaps++ })

	var alphas []float64
	for i := 0; i < 12; i++ {
		tr.Update(1)
		alphas = append(alphas, tr.Alpha())
		if i == 3 && swaps != 0 {
			t.Fatal("swap ran before the midpoint")
		}
	}
	if swaps != 1 {
		t.Errorf("swaps = %d, expected 1", swaps)
	}
	if tr.Active() {
		t.Error("transition should be finished")
	}
	if alphas[1] <= alphas[0] || alphas[7] >= alphas[5] {
		t.Errorf("alpha should rise then fall: %v", alphas)
	}
}

func TestTransitionFreeze(t *testing.T) {
	tr := NewTransition(10)
	swapped := false
	tr.Start(func() { swapped = true })
	tr.Update(1)
	tr.Freeze()
	a := tr.Alpha()
	for i := 0; i < 50; i++ {
		tr.Update(1)
	}
	if swapped || tr.Alpha() != a || !tr.Frozen() {
		t.Fatal("frozen transition should not move")
	}
	tr.Unfreeze()
	for i := 0; i < 10; i++ {
		tr.Update(1)
	}
	if !swapped || tr.Active() {
		t.Error("unfrozen transition should finish")
	}
}

func TestTransitionRestartKeepsOneSwap(t *testing.T) {
	tr := NewTransition(10)
	var got []string
	tr.Start(func() { got = append(got, "a") })
	tr.Update(1)
	tr.Start(func() { got = append(got, "b") })
	for i := 0; i < 12; i++ {
		tr.Update(1)
	}
	if len(got) != 1 || got[0] != "b" {
		t.Errorf("swaps = %v, expected only the latest", got)
	}
}

func TestTitleStartsSelectedLevel(t *testing.T) {
	f := newFixture(t)
	f.m.Set(NewTitle(f.m.Env))
	title := f.m.Current().(*Title)
	if len(title.Levels) < 3 {
		t.Fatalf("Levels = %d, expected the built-ins", len(title.Levels))
	}
	if track, _ := f.sound.Music(); track != "title" {
		t.Errorf("music = %q, expected title", track)
	}

	f.step(1, "down")
	f.step(1)
	if title.Cursor != 1 {
		t.Fatalf("Cursor = %d, expected 1", title.Cursor)
	}
	f.step(1, "enter")
	f.settle()

	p := f.play(t)
	if p.Stage.Level.ID != title.Levels[1].ID {
		t.Errorf("level = %q, expected %q", p.Stage.Level.ID, title.Levels[1].ID)
	}
}

func TestStartLevelUnknown(t *testing.T) {
	f := newFixture(t)
	if err := f.m.StartLevel("nope", nil); err == nil {
		t.Fatal("StartLevel(unknown) should fail")
	}
	if f.m.Err() == nil {
		t.Error("Err() should keep the failure")
	}
	if f.m.Current() != nil {
		t.Error("failed start should not change scene")
	}
}

func TestPauseFreezesStageAndMusic(t *testing.T) {
	f := newFixture(t)
	if err := f.m.StartLevel("01-meadow", nil); err != nil {
		t.Fatalf("StartLevel() error = %v", err)
	}
	p := f.play(t)
	f.step(5)
	steps := p.Stage.StepCount()

	f.step(1, "p")
	if !p.Paused {
		t.Fatal("pause key should pause")
	}
	if _, paused := f.sound.Music(); !paused {
		t.Error("music should pause")
	}
	if !f.m.Transition().Frozen() {
		t.Error("transition should freeze")
	}
	f.step(20)
	if p.Stage.StepCount() != steps {
		t.Errorf("stage advanced while paused: %d -> %d", steps, p.Stage.StepCount())
	}

	f.step(1, "p")
	if p.Paused || f.m.Transition().Frozen() {
		t.Error("second press should resume")
	}
	f.step(3)
	if p.Stage.StepCount() <= steps {
		t.Error("stage should advance again")
	}
}

func TestSoundsAndShakeDispatched(t *testing.T) {
	f := newFixture(t)
	_ = f.m.StartLevel("01-meadow", nil)
	f.step(40)
	f.step(1, "z")

	found := false
	for _, name := range f.sound.Played() {
		if name == "jump" {
			found = true
		}
	}
	if !found {
		t.Errorf("Played() = %v, expected jump", f.sound.Played())
	}

	p := f.play(t)
	p.Stage.Events.Reset()
	p.Stage.Player.Hurt(p.Stage.Context(), 1, p.Stage.Player.Pos)
	f.m.dispatch(p.Stage.Events)
	if !f.m.Env.Camera.Shaking() {
		t.Error("shake should reach the camera")
	}
}

func TestDeathLeadsToGameOverAndRetry(t *testing.T) {
	f := newFixture(t)
	_ = f.m.StartLevel("01-meadow", nil)
	p := f.play(t)
	cp := p.Stage.Level.Start
	p.Stage.Player.SetCheckpoint(cp)
	p.Stage.Player.Perish(p.Stage.Context())

	f.step(70)
	f.settle()
	over, ok := f.m.Current().(*GameOver)
	if !ok {
		t.Fatalf("current scene is %T, expected *GameOver", f.m.Current())
	}
	if over.Checkpoint != cp {
		t.Errorf("Checkpoint = %+v, expected %+v", over.Checkpoint, cp)
	}

	f.step(1, "enter")
	f.settle()
	retry := f.play(t)
	if retry.Stage.Player.Pos.X != cp.X {
		t.Errorf("retry at %+v, expected the checkpoint", retry.Stage.Player.Pos)
	}
}

func TestStageClearRecordsRun(t *testing.T) {
	f := newFixture(t)
	_ = f.m.StartLevel("02-caves", nil)
	p := f.play(t)
	p.follow(f.m, event.Transition{Kind: event.KindStageClear})
	f.settle()

	cl, ok := f.m.Current().(*Clear)
	if !ok {
		t.Fatalf("current scene is %T, expected *Clear", f.m.Current())
	}
	if len(f.runs.levels) != 1 || f.runs.levels[0] != "02-caves" {
		t.Errorf("runs = %v, expected 02-caves", f.runs.levels)
	}

	f.step(1, "enter")
	f.settle()
	if next := f.play(t); next.Stage.Level.ID != cl.Level.Next {
		t.Errorf("next level = %q, expected %q", next.Stage.Level.ID, cl.Level.Next)
	}
}

func TestDraw(t *testing.T) {
	f := newFixture(t)
	screen := core.NewScreen(60, 15)
	frame := &render.Frame{
		Canvas: render.NewScreenCanvas(screen),
		Camera: f.m.Env.Camera,
		Assets: f.m.Env.Assets,
	}

	f.m.Set(NewTitle(f.m.Env))
	f.m.Draw(frame)
	if !strings.Contains(screen.String(), ">") {
		t.Error("title should mark the selected level")
	}

	_ = f.m.StartLevel("01-meadow", nil)
	f.settle()
	f.step(1, "p")
	screen.Clear()
	f.m.Draw(frame)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused stage should say so")
	}
	if !strings.Contains(screen.String(), "♥") {
		t.Error("HUD should show health")
	}
}

func TestFormatSteps(t *testing.T) {
	tests := []struct {
		steps int64
		want  string
	}{
		{0, "0:00.0"},
		{60, "0:01.0"},
		{3630, "1:00.5"},
	}
	for _, tt := range tests {
		if got := FormatSteps(tt.steps); got != tt.want {
			t.Errorf("FormatSteps(%d) = %q, expected %q", tt.steps, got, tt.want)
		}
	}
}

type memStats struct {
	items     map[string]bool
	discarded bool
}

func (s *memStats) HasItem(id string) bool { return s.items[id] }

func (s *memStats) ObtainItem(id string) { s.items[id] = true }

func (s *memStats) Save() error { return nil }

func (s *memStats) Discard() { s.discarded = true }

func TestGameOverDiscardsUnsaved(t *testing.T) {
	f := newFixture(t)
	st := &memStats{items: map[string]bool{}}
	f.m.Env.Stage.Stats = st
	f.m.Set(NewGameOver(world.Level{ID: "01-meadow"}, core.Vector{}, 0))
	if !st.discarded {
		t.Error("game over should discard unsaved items")
	}
}

func TestLoadingWaitsForAssets(t *testing.T) {
	f := newFixture(t)
	f.m.Env.Assets = assets.NewRegistry(nil)
	ran := 0
	f.m.Set(NewLoading(func(m *Manager) { ran++ }))
	f.step(3)
	if ran != 0 {
		t.Fatal("next ran before assets loaded")
	}
	if err := f.m.Env.Assets.Load(assets.DefaultManifest()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	f.step(3)
	if ran != 1 {
		t.Errorf("next ran %d times, expected once", ran)
	}
}
