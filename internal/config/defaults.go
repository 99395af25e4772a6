package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/loop"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Loop:    loop.DefaultConfig(),
		Physics: object.DefaultPhysics(),
		Player:  player.DefaultConfig(),
		Enemies: map[string]registry.Tuning{},
		Input: InputConfig{
			Deadzone:       0.2,
			Smoothing:      0.5,
			PressThreshold: 0.5,
		},
		Audio: audio.DefaultConfig(),
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
			Scaling: ScalingConfig{
				EnemyHealth:  0.5,
				EnemyAttack:  0.5,
				PlayerHealth: 2,
			},
		},
	}
}
