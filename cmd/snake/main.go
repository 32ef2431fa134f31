// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake play          - Play a game
//	snake menu          - Start the main menu
//	snake scores        - Show the score history
//	snake demo          - Watch the autopilot play
//	snake list          - List available games
//
// Global flags:
//
//	--seed <value>                - Set RNG seed for reproducible gameplay
//	--db <path>                   - Set database path (default: ~/.snake/scores.db)
//	--high-score <path>           - High score file (default: ~/.snake/high_score.txt)
//	--high-score-backend <kind>   - Where the high score lives: file or sqlite
//	--config <path>               - Custom game config YAML
//	--difficulty <preset>         - easy, normal or hard
//	--debug                       - Verbose logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed             int64
	flagDBPath           string
	flagHighScorePath    string
	flagHighScoreBackend string
	flagConfig           string
	flagDifficulty       string
	flagDebug            bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic arcade game in your terminal",
	Long: `Snake is a terminal version of the classic arcade game.

Steer the snake to the food, grow longer and avoid the walls and your own
tail. Your best score is kept between runs.

Available commands:
  play     - Play right away
  menu     - Main menu with difficulty and score history
  scores   - Print the score history
  demo     - Watch the autopilot play
  list     - Show all available games

Examples:
  snake play
  snake play --difficulty hard
  snake menu
  snake scores
  snake demo --seed 42`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScorePath, "high-score", "~/.snake/high_score.txt", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagHighScoreBackend, "high-score-backend", "file", "High score backend: file or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging (~/.snake/debug.log for interactive commands)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(demoCmd)
}
