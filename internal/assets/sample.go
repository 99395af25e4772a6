package assets

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every synthesised sample is rendered at.
const SampleRate = beep.SampleRate(22050)

// Format is the buffer format shared by all samples.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Wave is an oscillator shape.
type Wave string

const (
	WaveSine   Wave = "sine"
	WaveSquare Wave = "square"
	WaveSaw    Wave = "saw"
	WaveNoise  Wave = "noise"
)

// Note is one tone of a sample: frequency in Hz (0 rests) and duration.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Sample is a decoded sound ready for playback.
type Sample struct {
	Name   string
	Volume float64 // default gain for music tracks
	Buffer *beep.Buffer
}

// Len returns the number of frames in the sample.
func (s *Sample) Len() int {
	if s == nil || s.Buffer == nil {
		return 0
	}
	return s.Buffer.Len()
}

// Streamer returns a fresh seekable stream over the whole sample.
func (s *Sample) Streamer() beep.StreamSeeker {
	return s.Buffer.Streamer(0, s.Buffer.Len())
}

// Synthesize renders notes into a buffer. seed drives the noise wave so
// that the same manifest always yields the same audio.
func Synthesize(name string, wave Wave, notes []Note, seed int64) (*Sample, error) {
	buf := beep.NewBuffer(Format)
	rng := rand.New(rand.NewSource(seed))

	for _, n := range notes {
		frames := SampleRate.N(n.Duration)
		if frames <= 0 {
			continue
		}
		if n.Freq <= 0 {
			buf.Append(generators.Silence(frames))
			continue
		}
		tone, err := oscillator(wave, n.Freq, rng)
		if err != nil {
			return nil, fmt.Errorf("assets: sample %q: %w", name, err)
		}
		buf.Append(newEnvelope(beep.Take(frames, tone), frames))
	}
	return &Sample{Name: name, Volume: 1, Buffer: buf}, nil
}

func oscillator(wave Wave, freq float64, rng *rand.Rand) (beep.Streamer, error) {
	switch wave {
	case WaveSine, "":
		return generators.SineTone(SampleRate, freq)
	case WaveSquare, WaveSaw, WaveNoise:
		return &shapeOsc{wave: wave, step: freq / float64(SampleRate), rng: rng}, nil
	}
	return nil, fmt.Errorf("unknown wave %q", wave)
}

// shapeOsc produces square, saw and noise tones with phase kept in [0, 1).
type shapeOsc struct {
	wave  Wave
	phase float64
	step  float64
	rng   *rand.Rand
}

func (o *shapeOsc) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v*0.5, v*0.5
		o.phase += o.step
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *shapeOsc) Err() error { return nil }

// envelope fades the last few milliseconds of a note to avoid clicks.
type envelope struct {
	s        beep.Streamer
	pos      int
	total    int
	fadeFrom int
}

func newEnvelope(s beep.Streamer, total int) beep.Streamer {
	fade := min(SampleRate.N(8*time.Millisecond), total/2)
	return &envelope{s: s, total: total, fadeFrom: total - fade}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.fadeFrom && e.total > e.fadeFrom {
			g := float64(e.total-e.pos) / float64(e.total-e.fadeFrom)
			samples[i][0] *= g
			samples[i][1] *= g
		}
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }
