package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/snake_frenzy.yaml
var defaultFrenzyYAML []byte

// DefaultSnakeConfig returns the default classic arena configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  60,
			Height: 18,
		},
		Speed: SpeedConfig{
			InitialIntervalMs: 100,
			StepMs:            2,
			MinIntervalMs:     50,
		},
		Player: PlayerConfig{
			Length: 5,
		},
		Enemy: EnemyConfig{
			Length:           3,
			Heuristic:        HeuristicPriority,
			SpawnMinDistance: 15,
			SpawnAttempts:    100,
			FallbackSamples:  10,
			CenterDistance:   20,
		},
		Food: FoodConfig{
			Policy:        FoodPolicyFixed,
			Count:         3,
			MinCount:      3,
			MaxCount:      3,
			PlaceAttempts: 100,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
		},
	}
}

// DefaultFrenzyConfig returns the default frenzy arena configuration.
func DefaultFrenzyConfig() SnakeConfig {
	cfg := DefaultSnakeConfig()
	cfg.Enemy.Heuristic = HeuristicGreedy
	cfg.Food = FoodConfig{
		Policy:        FoodPolicyDelayed,
		Count:         4,
		MinCount:      2,
		MaxCount:      6,
		RespawnMinMs:  1000,
		RespawnMaxMs:  4000,
		PlaceAttempts: 100,
	}
	return cfg
}

// DefaultFor returns the hardcoded defaults for a variant.
func DefaultFor(variant string) SnakeConfig {
	if variant == "snake_frenzy" {
		return DefaultFrenzyConfig()
	}
	return DefaultSnakeConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case "snake":
		return defaultSnakeYAML
	case "snake_frenzy":
		return defaultFrenzyYAML
	default:
		return nil
	}
}
