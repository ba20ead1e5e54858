// arena is a terminal snake game: a player snake, a heuristic enemy snake
// and food pellets on a fixed board.
//
// Usage:
//
//	arena list              - List available variants
//	arena play <variant>    - Play a variant
//	arena menu              - Pick variants interactively
//	arena sim <variant>     - Run headless rounds with an autopilot
//	arena config [variant]  - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Custom config YAML
//	--log-file <path>   - Write logs to a file
//	--env-file <path>   - Load SNAKE_* overrides from a .env file
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alcherk/snake-arena/internal/core"
	"github.com/alcherk/snake-arena/internal/games/snake"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagEnvFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Snake Arena - race a heuristic enemy snake for food",
	Long: `Snake Arena is a terminal snake game. You steer the green snake,
a red enemy snake chases the same food, and the game speeds up as you eat.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  sim      - Headless simulation with an autopilot player
  config   - Print the effective configuration

Examples:
  arena list
  arena play snake
  arena play snake_frenzy --demo
  arena sim snake --rounds 20 --seed 42
  arena config snake_frenzy`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load environment overrides from this file (default .env if present)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadEnv loads .env files before any config is read, so SNAKE_* overrides
// can live next to the binary. A missing default .env is not an error.
func loadEnv(_ *cobra.Command, _ []string) error {
	if flagEnvFile != "" {
		if err := godotenv.Load(flagEnvFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", flagEnvFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	snake.SetConfigPath(flagConfig)
	return nil
}

// newLogger builds the structured logger used by all commands.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "arena",
	})
}

// fileLogger returns a logger writing to --log-file, or a discarding one
// when the flag is unset so the game screen stays clean.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return newLogger(f), func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// validateFPS rejects frame rates the loop cannot run at.
func validateFPS() error {
	if flagFPS <= 0 || flagFPS > 1000 {
		return fmt.Errorf("--fps must be in 1..1000, got %d", flagFPS)
	}
	return nil
}
