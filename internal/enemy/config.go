package enemy

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Config is the full set of construction-time numbers for one kind.
type Config struct {
	Kind            string
	Width, Height   float64
	FrameW, FrameH  int
	Health          int
	AttackPower     int
	DropProbability float64
	CoinWeights     []float64
	Speed           float64
	Friction        core.Vector
	Knockback       core.Vector
	Bounce          core.Vector
	Weight          bool
	HurtTime        float64
	DeathTime       float64
}

var defaults = map[string]Config{
	"slime": {
		Width: 12, Height: 10, FrameW: 2, FrameH: 1,
		Health: 2, AttackPower: 1, DropProbability: 0.5,
		CoinWeights: []float64{0.8, 0.2, 0},
		Speed:       0.6, Friction: core.Vec(0.2, 1),
		Knockback: core.Vec(1, 0.8), Weight: true,
		HurtTime: 20, DeathTime: 20,
	},
	"bat": {
		Width: 10, Height: 8, FrameW: 2, FrameH: 1,
		Health: 1, AttackPower: 1, DropProbability: 0.6,
		CoinWeights: []float64{0.6, 0.35, 0.05},
		Speed:       1.4, Friction: core.Vec(0.05, 0.05),
		Knockback: core.Vec(1.2, 1), Bounce: core.Vec(0.5, 0.5),
		HurtTime: 15, DeathTime: 15,
	},
	"turret": {
		Width: 14, Height: 14, FrameW: 2, FrameH: 1,
		Health: 3, AttackPower: 1, DropProbability: 1,
		CoinWeights: []float64{0.5, 0.5, 0},
		Speed:       2, Friction: core.Vec(1, 1), Weight: true,
		HurtTime: 15, DeathTime: 25,
	},
	"brute": {
		Width: 20, Height: 14, FrameW: 3, FrameH: 1,
		Health: 8, AttackPower: 2, DropProbability: 1,
		CoinWeights: []float64{0.2, 0.5, 0.3},
		Speed:       0.4, Friction: core.Vec(0.1, 1),
		Knockback: core.Vec(0.6, 0.4), Weight: true,
		HurtTime: 30, DeathTime: 30,
	},
	"boss": {
		Width: 40, Height: 30, FrameW: 6, FrameH: 2,
		Health: 30, AttackPower: 2, DropProbability: 1,
		CoinWeights: []float64{0, 0, 1},
		Speed:       0.5, Friction: core.Vec(0.08, 1), Weight: true,
		HurtTime: 12, DeathTime: 120,
	},
}

// Kinds lists the kinds with built-in tuning.
func Kinds() []string {
	return []string{"bat", "boss", "brute", "slime", "turret"}
}

// DefaultConfig returns the built-in tuning for kind.
func DefaultConfig(kind string) Config {
	cfg := defaults[kind]
	cfg.Kind = kind
	cfg.CoinWeights = append([]float64(nil), cfg.CoinWeights...)
	return cfg
}

// ConfigFor applies env overrides and difficulty scaling to the defaults.
func ConfigFor(kind string, env *registry.Env) Config {
	cfg := DefaultConfig(kind)
	t := env.Tune(kind)
	if t.Health > 0 {
		cfg.Health = t.Health
	}
	if t.AttackPower > 0 {
		cfg.AttackPower = t.AttackPower
	}
	if t.DropProbability > 0 {
		cfg.DropProbability = t.DropProbability
	}
	if t.Speed > 0 {
		cfg.Speed = t.Speed
	}
	if len(t.CoinWeights) > 0 {
		cfg.CoinWeights = append([]float64(nil), t.CoinWeights...)
	}
	cfg.Health = env.ScaleHealth(cfg.Health)
	cfg.AttackPower = env.ScaleAttack(cfg.AttackPower)
	return cfg
}
