package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config dirs.
const ConfigFile = "crossing.yaml"

// LoadCrossing loads the crossing configuration.
// Search order: customPath -> ~/.crossing/configs/crossing.yaml ->
// ./configs/crossing.yaml -> embedded default.
// Values missing from a file keep their defaults. The result is normalized.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseCrossing(data)
		if err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseCrossing(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parseCrossing(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseCrossing(defaultCrossingYAML)
	if err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseCrossing decodes YAML on top of the built-in defaults.
func parseCrossing(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	// A file that lists tiers replaces the default list instead of merging into it
	cfg.Pickups.Tiers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossing", "configs", filename)
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Level = LevelForPreset(preset)

	// Adjust lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}
