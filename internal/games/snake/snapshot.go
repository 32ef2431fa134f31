package snake

import (
	"fmt"
	"strings"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       Direction
	FoodX     int
	FoodY     int
	Deaths    int
	LastCause Cause
	Paused    bool
	TooSmall  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	current, high := g.ledger.Snapshot()
	head := g.body.Head()
	food := g.food.Position()

	return Snapshot{
		Tick:      g.tick,
		Phase:     g.Phase(),
		Score:     current,
		HighScore: high,
		SnakeLen:  g.body.Len(),
		HeadX:     head.X,
		HeadY:     head.Y,
		Dir:       g.body.Direction(),
		FoodX:     food.X,
		FoodY:     food.Y,
		Deaths:    g.deaths,
		LastCause: g.cause,
		Paused:    g.paused,
		TooSmall:  g.tooSmall,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Score: %d, High: %d\n", s.Tick, s.Phase, s.Score, s.HighScore)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", s.SnakeLen, s.Dir)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.HeadX, s.HeadY, s.FoodX, s.FoodY)
	fmt.Fprintf(&b, "Deaths: %d, Last cause: %q, Paused: %v\n", s.Deaths, s.LastCause, s.Paused)
	return b.String()
}
