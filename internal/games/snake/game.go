// Package snake implements the snake game: a direction latch, the segmented
// body, a teleporting food item, a persisted score ledger and the fixed-tick
// collision engine that ties them together.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// GameID is the registry identifier of the snake game.
const GameID = "snake"

// Phase is the state of the game loop.
type Phase int

const (
	PhaseRunning Phase = iota
	// PhaseGameOver freezes the board for the game-over pause and then
	// transitions back to PhaseRunning with a fresh game.
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "running"
}

// Cause names the terminal condition that ended a game.
type Cause string

const (
	CauseNone Cause = ""
	CauseSelf Cause = "self"
	CauseWall Cause = "wall"
)

// TickResult reports what happened during one Tick.
type TickResult struct {
	Ate   bool
	Cause Cause
}

// Terminal reports whether the tick raised a terminal condition.
func (r TickResult) Terminal() bool {
	return r.Cause != CauseNone
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// highScoreStore is shared by every game created through the registry.
var highScoreStore HighScoreStore

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetHighScoreStore sets the store used by games created with New.
func SetHighScoreStore(store HighScoreStore) {
	highScoreStore = store
}

// Game implements the snake game logic.
type Game struct {
	cfg    config.SnakeConfig
	cfgErr error
	bounds core.Bounds
	rng    *rand.Rand

	body   *Body
	food   *Food
	ledger *Ledger

	phase  Phase
	freeze int // ticks left in the game-over pause
	tick   uint64
	deaths int
	cause  Cause

	// Screen dimensions
	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game from the package-level settings. A config that fails
// to load falls back to the defaults; ConfigErr reports why.
func New() *Game {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	g := NewWithConfig(cfg, highScoreStore)
	g.cfgErr = err
	return g
}

// NewWithConfig creates a game with an explicit config and high-score store.
// A nil store keeps the high score in memory.
func NewWithConfig(cfg config.SnakeConfig, store HighScoreStore) *Game {
	start := core.V(cfg.Movement.StartX, cfg.Movement.StartY)
	return &Game{
		cfg:    cfg,
		bounds: core.BoundsFor(cfg.Board.Width, cfg.Board.Height),
		rng:    rand.New(rand.NewSource(1)),
		body:   NewBody(start),
		food:   NewFood(core.Vec{}),
		ledger: NewLedger(store),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Config returns the active configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// ConfigErr returns the error that made New fall back to default settings.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Ledger exposes the score ledger.
func (g *Game) Ledger() *Ledger {
	return g.ledger
}

// StoreErr returns the last high-score store failure, if any.
func (g *Game) StoreErr() error {
	return g.ledger.Err()
}

// Bounds returns the board limits.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Head returns the head position.
func (g *Game) Head() core.Vec {
	return g.body.Head()
}

// Segments returns a copy of the body, head first.
func (g *Game) Segments() []core.Vec {
	return g.body.Segments()
}

// Food returns the food position.
func (g *Game) Food() core.Vec {
	return g.food.Position()
}

// Direction returns the latched direction.
func (g *Game) Direction() Direction {
	return g.body.Direction()
}

// RequestDirection forwards a steering request to the latch. It may be
// called from any goroutine.
func (g *Game) RequestDirection(d Direction) bool {
	return g.body.RequestDirection(d)
}

// Phase returns the loop phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.deaths = 0
	g.cause = CauseNone
	g.phase = PhaseRunning
	g.freeze = 0
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)
	g.Restart()
}

// Resize adapts to a new screen size without touching game state.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	w, h := g.requiredSize()
	g.tooSmall = screenW < w || screenH < h
}

// Tick advances the simulation by one step: move, then the food test, then
// the self-collision test, then the boundary test. A terminal condition is
// reported but not acted on; see Restart.
func (g *Game) Tick() TickResult {
	g.tick++
	g.body.Advance(g.cfg.Movement.Step)

	var res TickResult
	if g.body.Head().Within(g.food.Position(), g.cfg.Collision.FoodRadius) {
		g.ledger.ApplyDelta(g.cfg.Scoring.FoodReward)
		g.body.Grow()
		g.food.Relocate(g.rng, g.bounds)
		res.Ate = true
	}

	switch {
	case g.body.HitsItself(g.cfg.Collision.ExclusionWindow, g.cfg.Collision.SelfThreshold):
		res.Cause = CauseSelf
	case !g.bounds.Contains(g.body.Head()):
		res.Cause = CauseWall
	}
	return res
}

// Restart resets the body, the current score and the food. The high score
// is kept.
func (g *Game) Restart() {
	g.body.Reset()
	g.ledger.Reset()
	g.food.Reset()
}

// Step advances the game by one fixed tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle pause toggle
	if input.Has(core.ActionPause) && g.phase == PhaseRunning {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Input is discarded while frozen
	if g.phase == PhaseGameOver {
		g.freeze--
		if g.freeze <= 0 {
			g.Restart()
			g.phase = PhaseRunning
		}
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Directions() {
		if d, ok := DirectionFromAction(a); ok {
			g.body.RequestDirection(d)
		}
	}

	res := g.Tick()
	out := core.StepResult{Ate: res.Ate}
	if res.Terminal() {
		out.Ended = true
		out.FinalScore = g.ledger.Current()
		out.Cause = string(res.Cause)
		g.deaths++
		g.cause = res.Cause

		if ticks := g.cfg.PauseTicks(); ticks > 0 {
			g.phase = PhaseGameOver
			g.freeze = ticks
		} else {
			g.Restart()
		}
	}
	out.State = g.State()
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	current, high := g.ledger.Snapshot()
	return core.GameState{
		Score:     current,
		HighScore: high,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
	}
}

// TickDelay returns the fixed delay between ticks.
func (g *Game) TickDelay() time.Duration {
	return g.cfg.Timing.TickDelay
}

// GameOverPause returns how long the board freezes after a terminal condition.
func (g *Game) GameOverPause() time.Duration {
	return g.cfg.Timing.GameOverPause
}
