package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	scoresLimit int
	scoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the score history",
	Long: `Prints the best finished games from the scores database together with
the current high score.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&scoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&scoresClear, "clear", false, "Delete the score history and the sqlite high score")
}

func runScores(cmd *cobra.Command, args []string) {
	sess, err := openSession(false)
	if err != nil {
		fail("%v", err)
	}
	defer sess.Close()

	fmt.Printf("High score: %d\n\n", sess.highScore())

	if sess.store == nil {
		fmt.Println("Score history is unavailable (no database).")
		return
	}

	if scoresClear {
		if err := sess.store.ClearScores(snake.GameID); err != nil {
			sess.Close()
			fail("failed to clear scores: %v", err)
		}
		fmt.Println("Score history cleared.")
		return
	}

	scores, err := sess.store.TopScores(snake.GameID, scoresLimit)
	if err != nil {
		sess.Close()
		fail("failed to load scores: %v", err)
	}

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "#", "Score", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "--", "-----", "--------", "----")
	for i, s := range scores {
		cause := s.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, s.Score, cause, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := sess.store.HighScore(snake.GameID); err == nil {
		fmt.Printf("Best recorded game: %d\n", best)
	}
	if stats, err := sess.store.GetGameStats(snake.GameID); err == nil {
		fmt.Printf("Games: %d  Average: %.1f\n", stats.GamesCount, stats.AvgScore)
	}
}
