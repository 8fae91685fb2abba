// Package config provides YAML-based configuration loading for the board
// size and the difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mines/internal/minefield"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config contains all configuration for the game.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyConfig lists the selectable presets and the one used by default.
type DifficultyConfig struct {
	Default string   `yaml:"default"`
	Presets []Preset `yaml:"presets"`
}

// Preset is a named difficulty. MineFraction is the share of the board
// area covered by mines.
type Preset struct {
	Name         string  `yaml:"name"`
	MineFraction float64 `yaml:"mine_fraction"`
}

// Validate checks that the configuration describes a playable board.
func (c Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d must be positive", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if minefield.MaxMines(c.Board.Width, c.Board.Height) < 1 {
		return fmt.Errorf("%w: board %dx%d has no room for mines outside the first reveal", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if len(c.Difficulty.Presets) == 0 {
		return fmt.Errorf("%w: no difficulty presets", ErrInvalid)
	}

	seen := make(map[string]bool, len(c.Difficulty.Presets))
	for i, p := range c.Difficulty.Presets {
		name := normalizeName(p.Name)
		if name == "" {
			return fmt.Errorf("%w: preset %d has no name", ErrInvalid, i)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate preset %q", ErrInvalid, p.Name)
		}
		seen[name] = true
		if p.MineFraction <= 0 || p.MineFraction > 1 {
			return fmt.Errorf("%w: preset %q mine_fraction %v outside (0, 1]", ErrInvalid, p.Name, p.MineFraction)
		}
	}

	if !seen[normalizeName(c.Difficulty.Default)] {
		return fmt.Errorf("%w: default difficulty %q is not a preset", ErrInvalid, c.Difficulty.Default)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
