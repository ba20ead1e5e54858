package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LoadSnake loads the configuration for an arena variant.
// Search order: customPath -> ~/.snake-arena/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hardcoded default.
func LoadSnake(variant, customPath string) (SnakeConfig, error) {
	cfg := DefaultFor(variant)
	filename := variant + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultFor(variant)
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultFor(variant)
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(variant); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultFor(variant), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake-arena", "configs", filename)
}

// Marshal renders a config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides config fields from SNAKE_* environment variables.
// Unset variables leave the field unchanged.
func ApplyEnv(cfg *SnakeConfig, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_BOARD_WIDTH", &cfg.Board.Width},
		{"SNAKE_BOARD_HEIGHT", &cfg.Board.Height},
		{"SNAKE_INITIAL_INTERVAL_MS", &cfg.Speed.InitialIntervalMs},
		{"SNAKE_STEP_MS", &cfg.Speed.StepMs},
		{"SNAKE_MIN_INTERVAL_MS", &cfg.Speed.MinIntervalMs},
		{"SNAKE_FOOD_COUNT", &cfg.Food.Count},
		{"SNAKE_FOOD_MIN_COUNT", &cfg.Food.MinCount},
		{"SNAKE_FOOD_MAX_COUNT", &cfg.Food.MaxCount},
		{"SNAKE_POINTS_PER_FOOD", &cfg.Scoring.PointsPerFood},
	}
	for _, f := range ints {
		raw, ok := lookup(f.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("env %s=%q: %w", f.key, raw, err)
		}
		*f.dst = v
	}

	if v, ok := lookup("SNAKE_ENEMY_HEURISTIC"); ok && v != "" {
		cfg.Enemy.Heuristic = v
	}
	if v, ok := lookup("SNAKE_FOOD_POLICY"); ok && v != "" {
		cfg.Food.Policy = v
	}
	return nil
}

// Validate rejects configurations the arena cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width < 3 || c.Board.Height < 3:
		return fmt.Errorf("%w: board must be at least 3x3, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Player.Length < 1 || c.Player.Length > c.Board.Width/2:
		return fmt.Errorf("%w: player length %d does not fit a board %d wide", ErrInvalid, c.Player.Length, c.Board.Width)
	case c.Enemy.Length < 1:
		return fmt.Errorf("%w: enemy length must be positive, got %d", ErrInvalid, c.Enemy.Length)
	case c.Speed.InitialIntervalMs <= 0:
		return fmt.Errorf("%w: initial interval must be positive, got %d", ErrInvalid, c.Speed.InitialIntervalMs)
	case c.Speed.MinIntervalMs <= 0 || c.Speed.MinIntervalMs > c.Speed.InitialIntervalMs:
		return fmt.Errorf("%w: min interval %d must be in (0, %d]", ErrInvalid, c.Speed.MinIntervalMs, c.Speed.InitialIntervalMs)
	case c.Speed.StepMs < 0:
		return fmt.Errorf("%w: interval step must not be negative, got %d", ErrInvalid, c.Speed.StepMs)
	case c.Food.PlaceAttempts <= 0:
		return fmt.Errorf("%w: place attempts must be positive, got %d", ErrInvalid, c.Food.PlaceAttempts)
	case c.Enemy.SpawnAttempts <= 0 || c.Enemy.FallbackSamples <= 0:
		return fmt.Errorf("%w: spawn attempts and fallback samples must be positive", ErrInvalid)
	case c.Scoring.PointsPerFood < 0:
		return fmt.Errorf("%w: points per food must not be negative, got %d", ErrInvalid, c.Scoring.PointsPerFood)
	}

	switch c.Enemy.Heuristic {
	case HeuristicPriority, HeuristicGreedy:
	default:
		return fmt.Errorf("%w: unknown enemy heuristic %q", ErrInvalid, c.Enemy.Heuristic)
	}

	switch c.Food.Policy {
	case FoodPolicyFixed:
		if c.Food.Count < 0 {
			return fmt.Errorf("%w: food count must not be negative, got %d", ErrInvalid, c.Food.Count)
		}
	case FoodPolicyDelayed:
		if c.Food.MinCount < 0 || c.Food.MinCount > c.Food.MaxCount {
			return fmt.Errorf("%w: food count range [%d, %d] is empty", ErrInvalid, c.Food.MinCount, c.Food.MaxCount)
		}
		if c.Food.RespawnMinMs < 0 || c.Food.RespawnMinMs > c.Food.RespawnMaxMs {
			return fmt.Errorf("%w: respawn delay range [%d, %d] is empty", ErrInvalid, c.Food.RespawnMinMs, c.Food.RespawnMaxMs)
		}
	default:
		return fmt.Errorf("%w: unknown food policy %q", ErrInvalid, c.Food.Policy)
	}
	return nil
}
