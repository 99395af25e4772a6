// Package audio plays samples and music. Playback is fire-and-forget:
// nothing the simulation does depends on whether a sound was heard.
package audio

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-platformer/internal/assets"
)

// Audio is the playback contract used by scenes.
type Audio interface {
	PlaySample(s *assets.Sample, volume float64)
	PlayMusic(s *assets.Sample)
	PauseMusic()
	ResumeMusic()
	StopMusic()
	Close()
}

// Config controls output.
type Config struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // master gain, 0..1
	Music   bool    `yaml:"music"`
}

// DefaultConfig returns audio settings with sound on.
func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 0.6, Music: true}
}

// newVolume wraps s in a gain stage; log2(0) is -Inf so zero means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
