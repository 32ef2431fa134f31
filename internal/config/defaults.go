package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  760,
			Height: 360,
		},
		Movement: SnakeMovement{
			Step:   20,
			StartX: 0,
			StartY: 100,
		},
		Timing: SnakeTiming{
			TickDelay:     125 * time.Millisecond,
			GameOverPause: time.Second,
		},
		Scoring: SnakeScoring{
			FoodReward: 10,
		},
		Collision: SnakeCollision{
			FoodRadius:      20,
			SelfThreshold:   20,
			ExclusionWindow: 3,
		},
	}
}
