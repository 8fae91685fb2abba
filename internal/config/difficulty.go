package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-mines/internal/minefield"
)

// ErrUnknownDifficulty is returned when a preset name is not configured.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Preset looks up a difficulty preset by name, ignoring case.
func (c Config) Preset(name string) (Preset, error) {
	want := normalizeName(name)
	for _, p := range c.Difficulty.Presets {
		if normalizeName(p.Name) == want {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q (have %v)", ErrUnknownDifficulty, name, c.PresetNames())
}

// DefaultPreset returns the preset named by difficulty.default.
func (c Config) DefaultPreset() (Preset, error) {
	return c.Preset(c.Difficulty.Default)
}

// PresetNames returns the configured preset names in file order.
func (c Config) PresetNames() []string {
	names := make([]string, 0, len(c.Difficulty.Presets))
	for _, p := range c.Difficulty.Presets {
		names = append(names, p.Name)
	}
	return names
}

// PresetIndex returns the position of the named preset, or -1.
func (c Config) PresetIndex(name string) int {
	want := normalizeName(name)
	for i, p := range c.Difficulty.Presets {
		if normalizeName(p.Name) == want {
			return i
		}
	}
	return -1
}

// MineCount converts a preset's fraction into a mine count for the
// configured board. The result is at least one and never more than the
// board can hold around any first reveal.
func (c Config) MineCount(p Preset) int {
	area := c.Board.Width * c.Board.Height
	n := int(math.Floor(float64(area) * p.MineFraction))
	return max(1, min(n, minefield.MaxMines(c.Board.Width, c.Board.Height)))
}
