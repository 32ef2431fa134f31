package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	demoDuration  time.Duration
	demoHeadless  bool
	demoAutopilot bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the autopilot play",
	Long: `Runs the game loop without the interactive UI. The autopilot steers
toward the food; every game over pauses the board before a new round.

Examples:
  snake demo
  snake demo --seed 7 --duration 30s
  snake demo --headless --debug`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().DurationVar(&demoDuration, "duration", 0, "Stop after this long (0 = until interrupted)")
	demoCmd.Flags().BoolVar(&demoHeadless, "headless", false, "Do not draw frames, only log")
	demoCmd.Flags().BoolVar(&demoAutopilot, "autopilot", true, "Steer with the autopilot")
}

func runDemo(cmd *cobra.Command, args []string) {
	// Frames own stdout; logs go to stderr unless they would share the terminal.
	drawing := !demoHeadless
	interactive := drawing && term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))

	sess, err := openSession(interactive)
	if err != nil {
		fail("%v", err)
	}
	defer sess.Close()

	game := snake.New()
	if err := game.ConfigErr(); err != nil {
		sess.logger.Warn("using default config", "path", flagConfig, "error", err)
	}

	rc := runtimeConfig()
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	game.Reset(rc)

	loop := &snake.Loop{
		Game: game,
		OnTick: func(res snake.TickResult, score int) {
			if res.Ate {
				sess.logger.Debug("food eaten", "score", score)
			}
			if res.Terminal() {
				_, high := game.Ledger().Snapshot()
				sess.logger.Info("game over", "cause", string(res.Cause), "score", score, "high", high)
				sess.logger.Debug("board at game over\n" + game.DebugState())
			}
		},
	}
	if drawing {
		surface := tui.NewPrintSurface(os.Stdout, rc.ScreenW, rc.ScreenH)
		surface.Clear()
		loop.Surface = surface
	}
	if demoAutopilot {
		loop.Controller = snake.Autopilot{}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if demoDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, demoDuration)
		defer cancel()
	}

	sess.logger.Info("demo started", "seed", rc.Seed, "tick", game.TickDelay(), "autopilot", demoAutopilot)
	err = loop.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		sess.Close()
		fail("%v", err)
	}
	score, high := game.Ledger().Snapshot()
	sess.logger.Info("demo stopped", "score", score, "high", high)
}
