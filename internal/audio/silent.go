package audio

import (
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/assets"
)

// Silent discards audio but remembers what was requested. It backs
// headless runs, SSH sessions and tests.
type Silent struct {
	mu     sync.Mutex
	played []string
	track  string
	paused bool
}

func (s *Silent) PlaySample(smp *assets.Sample, _ float64) {
	if smp == nil {
		return
	}
	s.mu.Lock()
	s.played = append(s.played, smp.Name)
	s.mu.Unlock()
}

func (s *Silent) PlayMusic(smp *assets.Sample) {
	if smp == nil {
		return
	}
	s.mu.Lock()
	s.track = smp.Name
	s.paused = false
	s.mu.Unlock()
}

func (s *Silent) PauseMusic() {
	s.mu.Lock()
	s.paused = s.track != ""
	s.mu.Unlock()
}

func (s *Silent) ResumeMusic() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

func (s *Silent) StopMusic() {
	s.mu.Lock()
	s.track, s.paused = "", false
	s.mu.Unlock()
}

func (s *Silent) Close() {}

// Played returns the names of samples played so far.
func (s *Silent) Played() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.played...)
}

// Music returns the current track and whether it is paused.
func (s *Silent) Music() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track, s.paused
}
