package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/alcherk/snake-arena/internal/games/snake"
	"github.com/alcherk/snake-arena/internal/platform/tui"
	"github.com/alcherk/snake-arena/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arena with a variant picker",
	Long: `Start the arena in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Quitting a game returns you to the menu. Rounds played in the
session are kept in memory and shown in the history view.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Round history
  Q            - Quit

Examples:
  arena menu
  arena menu --fps 30
  arena menu --log-file arena.log`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := validateFPS(); err != nil {
		return err
	}

	width, height, err := terminalSize()
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	history := tui.NewHistory()
	cfg := runtimeConfig(width, height)

	for {
		menuResult, err := tui.RunMenu(history, cfg)
		if err != nil {
			return err
		}

		// Keep any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(history, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				return histErr
			}
			if goBack {
				continue
			}
			break
		}

		if _, err := snake.LoadConfig(menuResult.Variant); err != nil {
			logger.Error("invalid config", "variant", menuResult.Variant, "err", err)
			fmt.Fprintf(os.Stderr, "Error: invalid config for %s: %v\n", menuResult.Variant, err)
			continue
		}

		game, err := registry.Create(menuResult.Variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless pinned by --seed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if _, err := tui.Run(game, cfg, tui.Options{Logger: logger, History: history}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	printSessionSummary(history)
	return nil
}
