package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/headless"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSimFrames int
	flagSimRuns   int
	flagSimIdle   bool
	flagSimSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run headless bot games",
	Long: `Play runs without a display using a simple autopilot. Useful for
soak testing, replaying a seed and checking difficulty tuning.

Run i of a batch uses seed --seed + i, so a batch is reproducible.

Examples:
  runner sim
  runner sim runner_shooter --runs 20
  runner sim --seed 42 --frames 36000
  runner sim --idle --runs 5 --save`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 60*60*5, "Frame limit per run (0 = until game over)")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Use a bot that never presses anything")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save finished runs to the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML)")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, args []string) {
	gameID := runner.ModeClassic.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	requireMode(gameID)

	defer setupLogging(false)()
	applyGameFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = seed

	opts := headless.Options{
		Runtime:   rt,
		MaxFrames: flagSimFrames,
		Runs:      flagSimRuns,
		Logger:    log.Default(),
	}
	if flagSimIdle {
		opts.NewBot = func() headless.Bot { return headless.Idle }
	}

	game := runner.New(modeByID(gameID))
	results, err := headless.Simulate(ctx, game, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSimSave {
		saveSimRuns(gameID, results)
	}

	s := headless.Summarize(results)
	fmt.Printf("Runs: %d   Game overs: %d   Best: %d   Mean: %.1f   Frames: %d\n",
		s.Runs, s.GameOvers, s.Best, s.Mean, s.Frames)
	fmt.Printf("First seed: %d\n", seed)
}

func saveSimRuns(gameID string, results []headless.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()

	for _, r := range results {
		if !r.GameOver || r.State.Score <= 0 {
			continue
		}
		if _, err := store.SaveRun(storage.NewRunRecord(gameID, r.Seed, r.State)); err != nil {
			log.Warn("could not save run", "seed", r.Seed, "err", err)
		}
	}
}
