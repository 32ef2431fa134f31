package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing right away. The game defaults to snake.

Controls:
  W/A/S/D or arrows  - Steer
  P or Esc           - Pause
  Ctrl+S             - Save a screenshot
  Q or Ctrl+C        - Quit

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := snake.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fail("unknown game %q\nRun 'snake list' to see available games.", gameID)
	}

	sess, err := openSession(true)
	if err != nil {
		fail("%v", err)
	}
	defer sess.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		sess.Close()
		fail("%v", err)
	}
	if g, ok := game.(*snake.Game); ok && g.ConfigErr() != nil {
		sess.logger.Warn("using default config", "path", flagConfig, "error", g.ConfigErr())
	}

	if err := tui.Run(game, sess.store, runtimeConfig(), sess.logger); err != nil {
		sess.Close()
		fail("%v", err)
	}
}
