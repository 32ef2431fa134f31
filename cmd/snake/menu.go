package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Opens the main menu where you can start a game, pick the difficulty
and browse the score history.

Controls:
  Up/Down or W/S     - Navigate
  Left/Right or A/D  - Change difficulty
  Enter              - Select
  Tab                - High scores
  Q                  - Quit`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	sess, err := openSession(true)
	if err != nil {
		fail("%v", err)
	}
	defer sess.Close()

	cfg := runtimeConfig()
	difficulty := sess.preset

	for {
		result, err := tui.RunMenu(cfg, difficulty, sess.highScore())
		if err != nil {
			sess.Close()
			fail("%v", err)
		}
		cfg = result.Config
		difficulty = result.Difficulty

		switch result.Choice {
		case tui.MenuChoicePlay:
			snake.SetDifficultyPreset(string(difficulty))
			game, err := registry.Create(snake.GameID)
			if err != nil {
				sess.Close()
				fail("%v", err)
			}
			sess.logger.Debug("starting game from menu", "difficulty", difficulty)

			playCfg := cfg
			if flagSeed == 0 {
				// Fresh board every round
				playCfg.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, sess.store, playCfg, sess.logger); err != nil {
				sess.Close()
				fail("%v", err)
			}

		case tui.MenuChoiceScoreboard:
			goBack, err := tui.RunScoreboard(sess.store, snake.GameID, "Snake", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				sess.Close()
				fail("%v", err)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
