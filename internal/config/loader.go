package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search path.
const FileName = "platformer.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// what it names.
func Load(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validate(cfg)
			}
			cfg = DefaultPlatformerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validate(cfg)
		}
		cfg = DefaultPlatformerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data over the defaults.
func Parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPlatformerConfig(), fmt.Errorf("config: parse: %w", err)
	}
	return cfg, validate(cfg)
}

// Marshal renders cfg as YAML.
func Marshal(cfg PlatformerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func validate(cfg PlatformerConfig) error {
	if cfg.Difficulty.Preset != "" {
		if _, ok := ParsePreset(string(cfg.Difficulty.Preset)); !ok {
			return fmt.Errorf("config: unknown difficulty preset %q", cfg.Difficulty.Preset)
		}
	}
	if _, err := cfg.Input.InputSettings(); err != nil {
		return err
	}
	return nil
}

// ApplyPreset switches cfg to a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) error {
	if _, ok := ParsePreset(string(preset)); !ok {
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	cfg.Difficulty.Preset = preset
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
