package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/assets"
)

func TestNewDisabledIsSilent(t *testing.T) {
	a := New(Config{Enabled: false}, nil)
	if _, ok := a.(*Silent); !ok {
		t.Fatalf("New(disabled) = %T, expected *Silent", a)
	}
}

func TestSilentRecordsRequests(t *testing.T) {
	s := &Silent{}
	s.PlaySample(nil, 1)
	s.PlaySample(&assets.Sample{Name: "jump"}, 1)
	s.PlayMusic(&assets.Sample{Name: "meadow"})
	s.PauseMusic()

	if got := s.Played(); len(got) != 1 || got[0] != "jump" {
		t.Errorf("Played() = %v, expected [jump]", got)
	}
	track, paused := s.Music()
	if track != "meadow" || !paused {
		t.Errorf("Music() = (%q, %v), expected (meadow, true)", track, paused)
	}
	s.ResumeMusic()
	if _, paused := s.Music(); paused {
		t.Error("music should resume")
	}
	s.StopMusic()
	if track, _ := s.Music(); track != "" {
		t.Error("StopMusic should clear the track")
	}
}

func TestNewVolumeSilentAtZero(t *testing.T) {
	smp, err := assets.Synthesize("t", assets.WaveSquare, []assets.Note{{Freq: 440, Duration: 10 * time.Millisecond}}, 1)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	buf := make([][2]float64, 32)
	n, _ := newVolume(smp.Streamer(), 0).Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("frame %d = %v, expected silence", i, buf[i])
		}
	}

	n, _ = newVolume(smp.Streamer(), 1).Stream(buf)
	nonZero := false
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Error("unity gain should pass audio through")
	}
}
