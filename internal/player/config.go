package player

import "github.com/vovakirdan/tui-platformer/internal/core"

// Config holds the player's movement and combat tuning. Times are in ticks.
type Config struct {
	Health         int     `yaml:"health"`
	WalkSpeed      float64 `yaml:"walk_speed"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	SwimSpeed      float64 `yaml:"swim_speed"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
	JumpCut        float64 `yaml:"jump_cut"` // vertical speed kept when jump is released early
	CoyoteTime     float64 `yaml:"coyote_time"`
	JumpBuffer     float64 `yaml:"jump_buffer"`
	AttackTime     float64 `yaml:"attack_time"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackDamage   int     `yaml:"attack_damage"`
	InvulnTime     float64 `yaml:"invuln_time"`
	StunTime       float64 `yaml:"stun_time"`
	DeathTime      float64 `yaml:"death_time"`

	Knockback core.Vector `yaml:"-"`
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Health:         5,
		WalkSpeed:      2.5,
		JumpSpeed:      8,
		SwimSpeed:      4,
		GroundFriction: 0.3,
		AirFriction:    0.12,
		JumpCut:        0.45,
		CoyoteTime:     6,
		JumpBuffer:     6,
		AttackTime:     10,
		AttackCooldown: 18,
		AttackDamage:   3,
		InvulnTime:     60,
		StunTime:       12,
		DeathTime:      60,
		Knockback:      core.Vec(1, 0.8),
	}
}
