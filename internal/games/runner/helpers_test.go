package runner

import (
	"sort"
	"testing"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const testFrame = time.Second / 60

// testConfig returns the default config with every random source that
// would disturb a hand-built scene switched off.
func testConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.EnemyHopChance = 0
	cfg.Spawns.Pickup.Chance = 0
	cfg.Spawns.EnemyShot.Chance = 0
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

// mustGame builds a game from cfg, failing the test if cfg is rejected.
func mustGame(t *testing.T, mode Mode, cfg config.RunnerConfig) *Game {
	t.Helper()
	g, err := NewWithConfig(mode, cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	return g
}

func newTestGame(t *testing.T, mode Mode, cfg config.RunnerConfig) *Game {
	t.Helper()
	g := mustGame(t, mode, cfg)
	g.Reset(testRuntime(42))
	return g
}

// emptyScene resets a game and removes everything except the floor.
func emptyScene(t *testing.T, mode Mode) *Game {
	t.Helper()
	g := newTestGame(t, mode, testConfig())
	g.obstacles.Clear()
	g.platforms.Clear()
	g.coins.Clear()
	g.enemies.Clear()
	g.pickups.Clear()
	g.enemyShots.Clear()
	g.playerShots.Clear()
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	in.Elapsed = testFrame
	return in
}

// hasCue reports whether c is in cues.
func hasCue(cues []core.Cue, c core.Cue) bool {
	for _, x := range cues {
		if x == c {
			return true
		}
	}
	return false
}

// botInput runs right and jumps every 30 frames.
func botInput(frame int) core.InputFrame {
	in := input(core.ActionMoveRight)
	if frame%30 == 0 {
		in.Set(core.ActionJump)
	}
	return in
}

func boxAt(x, y float64) core.Box {
	return core.NewBox(x, y, 50, 50)
}

func sortFloors(fs []Floor) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].X < fs[j].X })
}
