package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// DifficultyConfig selects a preset and how far presets spread.
type DifficultyConfig struct {
	Preset  DifficultyPreset `yaml:"preset"`
	Scaling ScalingConfig    `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes between
// normal and either extreme.
type ScalingConfig struct {
	EnemyHealth  float64 `yaml:"enemy_health"`  // health multiplier change
	EnemyAttack  float64 `yaml:"enemy_attack"`  // attack multiplier change
	PlayerHealth int     `yaml:"player_health"` // hearts gained on easy, lost on hard
}

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	}
	return "", false
}

// LevelForPreset returns the difficulty level (0 to 1) of a preset.
// Unknown presets are normal.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyHard:
		return 1.0
	default:
		return 0.5
	}
}

// DifficultyManager turns a preset into spawn and player scaling.
type DifficultyManager struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficultyManager creates a manager for cfg's preset.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, level: LevelForPreset(cfg.Preset)}
}

// SetLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetLevel(level float64) {
	d.level = clampF(level, 0.0, 1.0)
}

// Level returns the difficulty level; 0.5 is normal.
func (d *DifficultyManager) Level() float64 {
	return d.level
}

// HealthScale is the enemy health multiplier.
func (d *DifficultyManager) HealthScale() float64 {
	return d.scale(d.cfg.Scaling.EnemyHealth)
}

// AttackScale is the enemy attack multiplier.
func (d *DifficultyManager) AttackScale() float64 {
	return d.scale(d.cfg.Scaling.EnemyAttack)
}

// PlayerHealth adjusts base hearts. The player keeps at least one.
func (d *DifficultyManager) PlayerHealth(base int) int {
	shift := (0.5 - d.level) * 2 * float64(d.cfg.Scaling.PlayerHealth)
	return max(1, base+int(math.Round(shift)))
}

// scale maps the level onto [1-spread, 1+spread], never below 0.1.
func (d *DifficultyManager) scale(spread float64) float64 {
	return math.Max(0.1, 1+(d.level-0.5)*2*spread)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
