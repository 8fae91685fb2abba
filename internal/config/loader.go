package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-local config file, relative to the working directory.
const LocalPath = "configs/mines.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.mines/config.yaml -> ./configs/mines.yaml -> embedded default.
// An explicit path must exist and be valid. Files found on the search path
// that fail to parse or validate are skipped.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML and validates the result. Keys missing from data keep
// their hardcoded defaults, except presets: a file that lists presets
// replaces the whole list.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	presets := cfg.Difficulty.Presets
	cfg.Difficulty.Presets = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Difficulty.Presets == nil {
		cfg.Difficulty.Presets = presets
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "config.yaml")
}
