// Package config provides YAML-based configuration loading and
// difficulty presets for the platformer.
package config

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/input"
	"github.com/vovakirdan/tui-platformer/internal/loop"
	"github.com/vovakirdan/tui-platformer/internal/object"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// PlatformerConfig contains all configuration for a session.
type PlatformerConfig struct {
	Loop       loop.Config                `yaml:"loop"`
	Physics    object.Physics             `yaml:"physics"`
	Player     player.Config              `yaml:"player"`
	Enemies    map[string]registry.Tuning `yaml:"enemies"`
	Input      InputConfig                `yaml:"input"`
	Audio      audio.Config               `yaml:"audio"`
	Difficulty DifficultyConfig           `yaml:"difficulty"`
}

// InputConfig holds key bindings by action name and stick tuning.
type InputConfig struct {
	Bindings       map[string]string `yaml:"bindings"` // key -> action name
	Deadzone       float64           `yaml:"deadzone"`
	Smoothing      float64           `yaml:"smoothing"`
	PressThreshold float64           `yaml:"press_threshold"`
}

// InputSettings converts the bindings to an input.Config. Unknown action
// names are an error; no bindings means the defaults.
func (c InputConfig) InputSettings() (input.Config, error) {
	out := input.DefaultConfig()
	if c.Deadzone > 0 {
		out.Deadzone = c.Deadzone
	}
	if c.Smoothing > 0 {
		out.Smoothing = c.Smoothing
	}
	if c.PressThreshold > 0 {
		out.PressThreshold = c.PressThreshold
	}
	if len(c.Bindings) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(c.Bindings))
	for k := range c.Bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out.Bindings = make(map[string]input.Action, len(c.Bindings))
	for _, key := range keys {
		a, ok := input.ParseAction(c.Bindings[key])
		if !ok {
			return out, fmt.Errorf("config: key %q bound to unknown action %q", key, c.Bindings[key])
		}
		out.Bindings[key] = a
	}
	return out, nil
}

// Env builds the spawn tuning for the configured difficulty.
func (c PlatformerConfig) Env() *registry.Env {
	d := NewDifficultyManager(c.Difficulty)
	return &registry.Env{
		Tuning:      c.Enemies,
		HealthScale: d.HealthScale(),
		AttackScale: d.AttackScale(),
	}
}

// PlayerSettings returns the player tuning with the difficulty's health.
func (c PlatformerConfig) PlayerSettings() player.Config {
	p := c.Player
	p.Health = NewDifficultyManager(c.Difficulty).PlayerHealth(p.Health)
	return p
}
