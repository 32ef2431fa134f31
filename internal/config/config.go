// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all tunable constants of the snake game.
type SnakeConfig struct {
	Board     SnakeBoard     `yaml:"board"`
	Movement  SnakeMovement  `yaml:"movement"`
	Timing    SnakeTiming    `yaml:"timing"`
	Scoring   SnakeScoring   `yaml:"scoring"`
	Collision SnakeCollision `yaml:"collision"`
}

// SnakeBoard defines the playing field, centred on the origin.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeMovement defines how far the head moves each tick and where it starts.
type SnakeMovement struct {
	Step   int `yaml:"step"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// SnakeTiming defines the fixed tick delay and the game-over freeze.
type SnakeTiming struct {
	TickDelay     time.Duration `yaml:"tick_delay"`
	GameOverPause time.Duration `yaml:"game_over_pause"`
}

// SnakeScoring defines score rewards.
type SnakeScoring struct {
	FoodReward int `yaml:"food_reward"`
}

// SnakeCollision defines proximity thresholds.
type SnakeCollision struct {
	FoodRadius      int `yaml:"food_radius"`
	SelfThreshold   int `yaml:"self_threshold"`
	ExclusionWindow int `yaml:"exclusion_window"`
}

// XLimit returns the largest legal |x| of the head.
func (c SnakeConfig) XLimit() int {
	return c.Board.Width / 2
}

// YLimit returns the largest legal |y| of the head.
func (c SnakeConfig) YLimit() int {
	return c.Board.Height / 2
}

// PauseTicks returns how many ticks the game-over freeze lasts.
func (c SnakeConfig) PauseTicks() int {
	if c.Timing.GameOverPause <= 0 || c.Timing.TickDelay <= 0 {
		return 0
	}
	return int((c.Timing.GameOverPause + c.Timing.TickDelay - 1) / c.Timing.TickDelay)
}

// ErrInvalidConfig is wrapped by all validation failures.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Movement.Step <= 0 {
		errs = append(errs, fmt.Errorf("step must be positive, got %d", c.Movement.Step))
	}
	if abs(c.Movement.StartX) > c.XLimit() || abs(c.Movement.StartY) > c.YLimit() {
		errs = append(errs, fmt.Errorf("start (%d, %d) is outside the board",
			c.Movement.StartX, c.Movement.StartY))
	}
	if c.Timing.TickDelay <= 0 {
		errs = append(errs, fmt.Errorf("tick_delay must be positive, got %s", c.Timing.TickDelay))
	}
	if c.Timing.GameOverPause < 0 {
		errs = append(errs, fmt.Errorf("game_over_pause must not be negative, got %s", c.Timing.GameOverPause))
	}
	if c.Collision.FoodRadius <= 0 || c.Collision.SelfThreshold <= 0 {
		errs = append(errs, errors.New("collision thresholds must be positive"))
	}
	if c.Collision.ExclusionWindow < 1 {
		errs = append(errs, fmt.Errorf("exclusion_window must cover at least the head, got %d", c.Collision.ExclusionWindow))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
