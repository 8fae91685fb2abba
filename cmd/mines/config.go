package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

The file is looked up in this order:
  1. --config <path>
  2. ~/.mines/config.yaml
  3. ./configs/mines.yaml
  4. built-in defaults`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

func init() {
	configCmd.AddCommand(configDefaultCmd)
}

func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}
