package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "earthshaker.yaml"

// LoadEarthshaker loads the game configuration.
// Search order: customPath -> ~/.earthshaker/configs/earthshaker.yaml ->
// ./configs/earthshaker.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so keys they omit keep default values.
func LoadEarthshaker(customPath string) (EarthshakerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultEarthshakerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultEarthshakerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultEarthshakerYAML)
	if err != nil {
		return DefaultEarthshakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (EarthshakerConfig, error) {
	cfg := DefaultEarthshakerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".earthshaker", "configs", configFile)
}

// WriteDefault writes the embedded default configuration to path, creating
// parent directories. An existing file is only replaced when overwrite is set.
func WriteDefault(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultEarthshakerYAML, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg EarthshakerConfig) ([]byte, error) {
	return yaml.Marshal(&cfg)
}

// ApplyEarthshakerPreset modifies the config based on a difficulty preset.
func ApplyEarthshakerPreset(cfg *EarthshakerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Campaign.Lives = 5
		cfg.Physics.GravityInterval = 0.25
	case DifficultyHard:
		cfg.Campaign.Lives = 2
		cfg.Generator.Bubbles = 4
	}
}
