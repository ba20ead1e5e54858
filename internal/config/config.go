// Package config provides YAML-based configuration loading for the arena:
// board size, tick speed, enemy heuristic, and food policy.
package config

// SnakeConfig contains all configuration for an arena variant.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Speed   SpeedConfig   `yaml:"speed"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Food    FoodConfig    `yaml:"food"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the fixed grid dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the tick interval and how it shrinks as the score grows.
type SpeedConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	StepMs            int `yaml:"step_ms"`         // Subtracted per food eaten
	MinIntervalMs     int `yaml:"min_interval_ms"` // Floor
}

// PlayerConfig defines the player snake.
type PlayerConfig struct {
	Length int `yaml:"length"`
}

// EnemyConfig defines the enemy snake and its spawn placement.
type EnemyConfig struct {
	Length           int    `yaml:"length"`
	Heuristic        string `yaml:"heuristic"`          // "priority" or "greedy"
	SpawnMinDistance int    `yaml:"spawn_min_distance"` // Manhattan distance to every player segment
	SpawnAttempts    int    `yaml:"spawn_attempts"`
	FallbackSamples  int    `yaml:"fallback_samples"`
	CenterDistance   int    `yaml:"center_distance"` // Minimum distance from board center at round start
}

// FoodConfig defines how pellets are kept on the board.
type FoodConfig struct {
	Policy        string `yaml:"policy"`    // "fixed" or "delayed"
	Count         int    `yaml:"count"`     // Target for the fixed policy
	MinCount      int    `yaml:"min_count"` // Delayed policy: lower bound of the random target
	MaxCount      int    `yaml:"max_count"` // Delayed policy: upper bound of the random target
	RespawnMinMs  int    `yaml:"respawn_min_ms"`
	RespawnMaxMs  int    `yaml:"respawn_max_ms"`
	PlaceAttempts int    `yaml:"place_attempts"`
}

// ScoringConfig defines the points awarded to the player.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// Enemy heuristics.
const (
	HeuristicPriority = "priority"
	HeuristicGreedy   = "greedy"
)

// Food policies.
const (
	FoodPolicyFixed   = "fixed"
	FoodPolicyDelayed = "delayed"
)
