package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alcherk/snake-arena/internal/core"
	"github.com/alcherk/snake-arena/internal/games/snake"
	"github.com/alcherk/snake-arena/internal/registry"
)

var (
	flagRounds   int
	flagMaxTicks int
	flagPilot    string
)

var simCmd = &cobra.Command{
	Use:   "sim <variant>",
	Short: "Run headless rounds with an autopilot player",
	Long: `Run rounds without a terminal. The player is driven by one of the
enemy heuristics, frames are fed from a synthetic 60 fps clock, and every
finished round is logged to stderr.

Examples:
  arena sim snake
  arena sim snake_frenzy --rounds 50 --seed 42
  arena sim snake --pilot greedy --max-ticks 100000`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRounds, "rounds", 10, "Number of rounds to finish")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 200000, "Stop after this many logical updates")
	simCmd.Flags().StringVar(&flagPilot, "pilot", "priority", "Player autopilot: priority or greedy")
}

func runSim(_ *cobra.Command, args []string) error {
	variant := args[0]

	if !registry.Exists(variant) {
		return fmt.Errorf("unknown variant %q (run 'arena list' to see variants)", variant)
	}
	if err := validateFPS(); err != nil {
		return err
	}
	if flagRounds <= 0 {
		return fmt.Errorf("--rounds must be positive, got %d", flagRounds)
	}

	cfg, err := snake.LoadConfig(variant)
	if err != nil {
		return fmt.Errorf("invalid config for %s: %w", variant, err)
	}

	rc := runtimeConfig(0, 0)
	logger := newLogger(os.Stderr).With("run", uuid.New().String())

	var pilot snake.Pilot
	switch flagPilot {
	case "priority":
		pilot = snake.NewPriorityPilot(rand.New(rand.NewSource(rc.Seed + 1)))
	case "greedy":
		pilot = snake.GreedyPilot{}
	default:
		return fmt.Errorf("unknown pilot %q (want priority or greedy)", flagPilot)
	}

	var results []core.RoundResult
	game := snake.New(variant).WithConfig(cfg)
	game.SetPilot(pilot)
	game.SetPresenter(core.PresenterFunc(func(r core.RoundResult) {
		results = append(results, r)
		logger.Info("round over",
			"round", r.Round,
			"score", r.Score,
			"length", r.Length,
			"cause", r.Cause,
			"ticks", r.Ticks,
			"respawns", r.EnemyRespawns,
		)
	}))
	game.Reset(rc)
	logger.Info("sim started", "variant", variant, "seed", rc.Seed, "pilot", flagPilot)

	frame := time.Second / time.Duration(rc.TickRate)
	input := core.NewInputFrame()
	var now time.Duration
	updates := 0
	for len(results) < flagRounds && updates < flagMaxTicks {
		now += frame
		if game.Step(input, now).Updated {
			updates++
		}
	}

	if len(results) < flagRounds {
		logger.Warn("tick limit reached", "finished", len(results), "wanted", flagRounds)
	}

	printSimSummary(variant, results, updates)
	return nil
}

// printSimSummary prints per-cause counts and score statistics.
func printSimSummary(variant string, results []core.RoundResult, updates int) {
	fmt.Printf("Variant:  %s\n", variant)
	fmt.Printf("Rounds:   %d\n", len(results))
	fmt.Printf("Updates:  %d\n", updates)
	if len(results) == 0 {
		return
	}

	total, best := 0, results[0]
	causes := make(map[core.EndCause]int)
	for _, r := range results {
		total += r.Score
		causes[r.Cause]++
		if r.Score > best.Score {
			best = r
		}
	}

	fmt.Printf("Avg score: %.1f\n", float64(total)/float64(len(results)))
	fmt.Printf("Best:     %d (round %d, length %d)\n", best.Score, best.Round, best.Length)
	for _, c := range []core.EndCause{core.CauseWall, core.CauseSelf, core.CauseEnemy} {
		fmt.Printf("  %-6s %d\n", c.String()+":", causes[c])
	}
}
