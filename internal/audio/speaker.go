package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-platformer/internal/assets"
)

// speaker.Init may only succeed once per process.
var (
	initOnce sync.Once
	initErr  error
)

func initSpeaker() error {
	initOnce.Do(func() {
		initErr = speaker.Init(assets.SampleRate, assets.SampleRate.N(time.Second/10))
	})
	return initErr
}

// Speaker mixes samples and one looping music track to the sound card.
type Speaker struct {
	mu     sync.Mutex
	cfg    Config
	mixer  *beep.Mixer
	music  *beep.Ctrl
	track  string
	closed bool
}

// New opens the sound card. When the device is unavailable or audio is
// disabled it returns a Silent player instead.
func New(cfg Config, logger *log.Logger) Audio {
	if !cfg.Enabled {
		return &Silent{}
	}
	if err := initSpeaker(); err != nil {
		if logger != nil {
			logger.Warn("audio unavailable, running silent", "err", err)
		}
		return &Silent{}
	}

	s := &Speaker{cfg: cfg, mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s
}

// PlaySample mixes a one-shot sample. A nil sample is ignored.
func (s *Speaker) PlaySample(smp *assets.Sample, volume float64) {
	if smp == nil || smp.Buffer == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	speaker.Lock()
	s.mixer.Add(newVolume(smp.Streamer(), volume*s.cfg.Volume))
	speaker.Unlock()
}

// PlayMusic loops a track, replacing the current one. Replaying the
// current track keeps its position.
func (s *Speaker) PlayMusic(smp *assets.Sample) {
	if smp == nil || smp.Buffer == nil || !s.cfg.Music {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || (s.music != nil && s.track == smp.Name) {
		return
	}

	speaker.Lock()
	if s.music != nil {
		s.music.Paused = true
		s.music.Streamer = nil
	}
	s.music = &beep.Ctrl{Streamer: beep.Loop(-1, smp.Streamer()), Paused: false}
	s.track = smp.Name
	s.mixer.Add(newVolume(s.music, smp.Volume*s.cfg.Volume))
	speaker.Unlock()
}

func (s *Speaker) setPaused(p bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = p
	speaker.Unlock()
}

// PauseMusic holds the music at its current position.
func (s *Speaker) PauseMusic() { s.setPaused(true) }

// ResumeMusic continues paused music.
func (s *Speaker) ResumeMusic() { s.setPaused(false) }

// StopMusic drops the current track.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	s.music.Streamer = nil
	speaker.Unlock()
	s.music = nil
	s.track = ""
}

// Close silences this player. The device stays open for other sessions.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.music = nil
}
