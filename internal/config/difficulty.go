package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
// Presets only pick the fixed tick delay; the game never changes speed mid-run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// TickDelayForPreset returns the tick delay for a difficulty preset.
func TickDelayForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 180 * time.Millisecond
	case DifficultyHard:
		return 80 * time.Millisecond
	default:
		return 125 * time.Millisecond
	}
}

// ParsePreset validates a preset name. The empty string means "keep the
// configured tick delay" and is returned as-is.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Timing.TickDelay = TickDelayForPreset(preset)
}

// Next returns the preset after p, wrapping around.
func (p DifficultyPreset) Next() DifficultyPreset {
	for i, preset := range Presets {
		if preset == p {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return DifficultyNormal
}

// Prev returns the preset before p, wrapping around.
func (p DifficultyPreset) Prev() DifficultyPreset {
	for i, preset := range Presets {
		if preset == p {
			return Presets[(i+len(Presets)-1)%len(Presets)]
		}
	}
	return DifficultyNormal
}
