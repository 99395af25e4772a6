package core

// FrameTime is the duration of one logic step in milliseconds (60 Hz).
const FrameTime = 16.66667

// MaxCatchUpSteps bounds the time debt the scheduler carries after a stall.
const MaxCatchUpSteps = 5

// Tick is the normalized time unit of one logic step.
const Tick = 1.0

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	FrameTime float64 // Logic step duration in milliseconds
	Seed      int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameTime: FrameTime,
		Seed:      0, // 0 means use current time in platform layer
	}
}
