package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// loadConfig reads the config search path and applies --difficulty.
func loadConfig() (config.PlatformerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (easy, normal, hard)", flagDifficulty)
		}
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger creates a logger writing to w at --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// fileLogger logs to ~/.platformer/platformer.log; the alt screen owns
// the terminal while playing. The returned close func is never nil.
func fileLogger(prefix string) (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	dir := filepath.Join(home, ".platformer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "platformer.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, prefix), func() {}
	}
	return newLogger(f, prefix), func() { f.Close() }
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
