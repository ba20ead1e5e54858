package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alcherk/snake-arena/internal/games/snake"
	"github.com/alcherk/snake-arena/internal/platform/tui"
	"github.com/alcherk/snake-arena/internal/registry"
)

var flagDemo bool

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart the round
  Tab/Esc           - Round history
  Q/Ctrl+C          - Quit

Examples:
  arena play snake
  arena play snake_frenzy
  arena play snake --demo
  arena play snake --config ./my-arena.yaml --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let an autopilot steer the player")
}

func runPlay(_ *cobra.Command, args []string) error {
	variant := args[0]

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'arena list' to see variants)", variant)
	}
	if err := validateFPS(); err != nil {
		return err
	}

	// Fail before the terminal is taken over.
	if _, err := snake.LoadConfig(variant); err != nil {
		return fmt.Errorf("invalid config for %s: %w", variant, err)
	}
	snake.SetAutopilot(flagDemo)

	width, height, err := terminalSize()
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	history, err := tui.Run(game, runtimeConfig(width, height), tui.Options{Logger: logger})
	printSessionSummary(history)
	return err
}

// terminalSize reports the size of the attached terminal. Playing without
// one is an error.
func terminalSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("no terminal attached (use 'arena sim' for headless runs)")
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read terminal size: %w", err)
	}
	return w, h, nil
}

// printSessionSummary prints the rounds finished in a session after the
// alternate screen is gone.
func printSessionSummary(h *tui.History) {
	if h == nil || h.Len() == 0 {
		return
	}

	best, _ := h.Best("")
	fmt.Printf("Rounds played: %d\n", h.Len())
	fmt.Printf("Best score:    %d (%s, round %d, %s)\n",
		best.Result.Score, best.Result.Variant, best.Result.Round, best.Result.Cause)
}
