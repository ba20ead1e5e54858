package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alcherk/snake-arena/internal/games/snake"
	"github.com/alcherk/snake-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered arena variant with its enemy heuristic and food policy.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Enemy / Food")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------------")

	for _, g := range games {
		details := "invalid config"
		if cfg, err := snake.LoadConfig(g.ID); err == nil {
			details = fmt.Sprintf("%s / %s", cfg.Enemy.Heuristic, cfg.Food.Policy)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, details)
	}

	fmt.Println()
	fmt.Println("Run 'arena play <id>' to play a variant.")
}
