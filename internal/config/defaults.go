package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-mines/internal/minefield"
)

//go:embed defaults/mines.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/mines.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  minefield.DefaultWidth,
			Height: minefield.DefaultHeight,
		},
		Difficulty: DifficultyConfig{
			Default: "normal",
			Presets: []Preset{
				{Name: "easy", MineFraction: 0.10},
				{Name: "normal", MineFraction: 0.15},
				{Name: "hard", MineFraction: 0.20},
				{Name: "expert", MineFraction: 0.25},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
