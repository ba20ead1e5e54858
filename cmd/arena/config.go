package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alcherk/snake-arena/internal/config"
	"github.com/alcherk/snake-arena/internal/games/snake"
	"github.com/alcherk/snake-arena/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant would run with, after the config
file search, SNAKE_* environment overrides and validation.

The output is valid YAML and can be saved and passed back with --config.

Examples:
  arena config
  arena config snake_frenzy > ~/.snake-arena/configs/snake_frenzy.yaml
  SNAKE_BOARD_WIDTH=40 arena config snake`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	variant := snake.VariantClassic
	if len(args) == 1 {
		variant = args[0]
	}
	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'arena list' to see variants)", variant)
	}

	cfg, err := snake.LoadConfig(variant)
	if err != nil {
		return fmt.Errorf("invalid config for %s: %w", variant, err)
	}

	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
