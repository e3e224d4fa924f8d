package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top runs for the specified mode (default: runner).

Examples:
  runner scores
  runner scores runner_shooter --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := runner.ModeClassic.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	requireMode(gameID)

	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runner play %s' to set the first high score!\n", gameID)
		return
	}

	tick := core.RuntimeConfig{TickRate: flagFPS}.TickDuration()

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Coins", "Stomps", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		played := (time.Duration(r.Frames) * tick).Round(time.Second)
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-8s  %s\n",
			i+1, r.Score, r.Coins, r.Stomps, played, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Printf("Best: %d   Runs: %d   Avg: %.0f   Coins: %d   Stomps: %d\n",
			stats.HighScore, stats.RunsCount, stats.AvgScore, stats.TotalCoins, stats.TotalStomps)
	}
}
