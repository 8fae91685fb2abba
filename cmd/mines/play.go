package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start a game immediately, skipping the menu.

Controls:
  WASD/Arrows/hjkl  - Move cursor
  Space/Enter       - Reveal tile
  X/F               - Toggle flag
  R                 - New game (after the game ended)
  Esc/B             - Back to menu
  Q/Ctrl+C          - Quit
  ?                 - More keys

Difficulty presets come from the config file. The built-in ones are
easy (10% mines), normal (15%), hard (20%) and expert (25%).

Examples:
  mines play
  mines play --difficulty expert
  mines play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty preset (default from config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	opts := tui.Options{
		Difficulty:  flagDifficulty,
		StartInGame: true,
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
