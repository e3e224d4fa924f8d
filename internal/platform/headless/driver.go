package headless

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Options configures a batch of simulated runs.
type Options struct {
	Runtime   core.RuntimeConfig
	MaxFrames int // Per run; 0 means until game over
	Runs      int
	NewBot    func() Bot // Fresh bot per run; nil means AutoPilot
	Logger    *log.Logger
}

// Result is the outcome of one simulated run.
type Result struct {
	Seed     int64
	State    core.GameState
	Cues     [core.CueCount]int
	GameOver bool // False when MaxFrames cut the run short
	Wall     time.Duration
}

// Run steps g with bot at a fixed nominal tick until game over, maxFrames,
// or ctx is done. The game is Reset with rt first.
func Run(ctx context.Context, g *runner.Game, bot Bot, rt core.RuntimeConfig, maxFrames int) (Result, error) {
	start := time.Now()
	g.Reset(rt)
	res := Result{Seed: rt.Seed}
	dt := rt.TickDuration()

	for frame := 0; maxFrames <= 0 || frame < maxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			res.State = g.State()
			res.Wall = time.Since(start)
			return res, err
		}

		in := bot.Decide(g.Snapshot())
		in.Elapsed = dt
		step := g.Step(in)
		for _, c := range step.Cues {
			if int(c) < core.CueCount {
				res.Cues[c]++
			}
		}
		if step.State.GameOver {
			res.GameOver = true
			break
		}
	}

	res.State = g.State()
	res.Wall = time.Since(start)
	return res, nil
}

// Simulate plays opts.Runs consecutive runs of g. Run i uses seed
// Runtime.Seed+i, so a batch is reproducible from its first seed.
func Simulate(ctx context.Context, g *runner.Game, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	runs := max(opts.Runs, 1)
	newBot := opts.NewBot
	if newBot == nil {
		newBot = func() Bot { return NewAutoPilot() }
	}

	results := make([]Result, 0, runs)
	for i := 0; i < runs; i++ {
		rt := opts.Runtime
		rt.Seed += int64(i)

		res, err := Run(ctx, g, newBot(), rt, opts.MaxFrames)
		results = append(results, res)
		logger.Info("run finished",
			"game", g.ID(),
			"run", i+1,
			"seed", res.Seed,
			"score", res.State.Score,
			"lives", res.State.Lives,
			"frames", res.State.Stats.Frames,
			"coins", res.State.Stats.Coins,
			"stomps", res.State.Stats.Stomps,
			"game_over", res.GameOver,
			"wall", res.Wall.Round(time.Millisecond),
		)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// Summary aggregates a batch.
type Summary struct {
	Runs      int
	Best      int
	Mean      float64
	GameOvers int
	Frames    int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	var s Summary
	total := 0
	for _, r := range results {
		s.Runs++
		total += r.State.Score
		s.Best = max(s.Best, r.State.Score)
		s.Frames += r.State.Stats.Frames
		if r.GameOver {
			s.GameOvers++
		}
	}
	if s.Runs > 0 {
		s.Mean = float64(total) / float64(s.Runs)
	}
	return s
}
