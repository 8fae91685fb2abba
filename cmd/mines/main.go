// mines is Minesweeper for the terminal.
//
// Usage:
//
//	mines                    - Open the main menu
//	mines play               - Start a game right away
//	mines config             - Print the effective configuration
//	mines config default     - Print the built-in default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.mines/config.yaml, ./configs/mines.yaml)
//	--seed <value>      - RNG seed for reproducible boards (0 = time based)
//	--log-file <path>   - Write logs to this file (default: no logging)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `Minesweeper in your terminal.

Reveal every tile without a mine and flag every mine to win.
The first reveal is always safe.

Available commands:
  play     - Start a game without the menu
  config   - Show the configuration in use

Examples:
  mines
  mines play --difficulty hard
  mines --config ./my-mines.yaml
  mines config default > ~/.mines/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := run(tui.Options{}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads config and logger, fills in the runtime config and starts the UI.
func run(opts tui.Options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	opts.Config = cfg
	opts.Runtime = runtimeConfig()
	opts.Logger = logger

	logger.Debug("starting", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height), "seed", flagSeed)
	if err := tui.Run(opts); err != nil {
		logger.Error("program failed", "err", err)
		return err
	}
	return nil
}
