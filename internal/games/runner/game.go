// Package runner implements a side-scrolling arcade runner: the player
// runs and jumps across platforms while the world scrolls, collecting
// coins and stomping enemies. The package holds the simulation only; the
// platform layer supplies input, timing, audio and display.
package runner

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Mode selects a rule variant of the runner.
type Mode struct {
	ID       string
	Title    string
	Shooting bool // Player projectiles enabled
}

var (
	// ModeClassic is the plain runner.
	ModeClassic = Mode{ID: "runner", Title: "Runner"}
	// ModeShooter adds player-fired projectiles.
	ModeShooter = Mode{ID: "runner_shooter", Title: "Runner: Shooter", Shooting: true}
)

// Game implements the runner simulation.
type Game struct {
	mode       Mode
	cfg        config.RunnerConfig
	fixedCfg   bool // Config supplied by the caller; Reset does not reload
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	baseSpeed  float64

	viewW, viewH float64
	groundY      float64

	player  Player
	session SessionState

	obstacles   *Store[Obstacle]
	platforms   *Store[Platform]
	floors      *Store[Floor]
	coins       *Store[Coin]
	enemies     *Store[Enemy]
	pickups     *Store[Pickup]
	enemyShots  *Store[Projectile]
	playerShots *Store[Projectile]

	obstacleSpawner  *Spawner
	platformSpawner  *Spawner
	coinSpawner      *Spawner
	enemySpawner     *Spawner
	pickupSpawner    *Spawner
	enemyShotSpawner *Spawner

	cues []core.Cue
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values mean
// "use the config as loaded".
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig loads the runner config the way Reset does: the CLI path,
// the search locations, then the preset.
func LoadConfig() (config.RunnerConfig, error) {
	return loadConfig(difficultyPreset)
}

func loadConfig(preset config.DifficultyPreset) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}

// New creates a runner game that loads its config on Reset.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// NewWithConfig creates a runner game with a fixed config, which must
// pass Validate.
func NewWithConfig(mode Mode, cfg config.RunnerConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return &Game{mode: mode, cfg: cfg, fixedCfg: true}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title
}

// Mode returns the rule variant.
func (g *Game) Mode() Mode {
	return g.mode
}

// Config returns the active config.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Reset clears every store, reinitialises the player and session state,
// and populates the opening world: the floor strip plus one batch each of
// platforms, coins and enemies.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		// A per-run difficulty overrides the process-wide preset.
		preset := difficultyPreset
		if p, err := config.ParsePreset(runtime.Difficulty); err == nil {
			preset = p
		}
		cfg, err := loadConfig(preset)
		if err != nil {
			cfg = config.DefaultRunnerConfig()
			if preset != "" {
				config.ApplyRunnerPreset(&cfg, preset)
			}
		}
		g.cfg = cfg
	}

	g.viewW = g.cfg.Viewport.Width
	g.viewH = g.cfg.Viewport.Height
	if runtime.ViewportW > 0 && runtime.ViewportH > 0 {
		g.viewW, g.viewH = runtime.ViewportW, runtime.ViewportH
	}
	g.groundY = g.viewH - g.cfg.Floor.Height

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.baseSpeed = g.difficulty.BaseSpeed(runtime.Constrained)

	g.resetStores()
	g.resetSpawners()

	pc := g.cfg.Player
	g.player = Player{
		X:        pc.StartX,
		Y:        g.groundY - pc.Height,
		W:        pc.Width,
		H:        pc.Height,
		Speed:    pc.Speed,
		MaxJumps: pc.MaxJumps,
		Grounded: true,
		Alive:    true,
		Facing:   1,
	}
	g.session = newSession(pc.Lives, g.baseSpeed)
	g.cues = nil

	g.populate()
}

func (g *Game) resetStores() {
	if g.obstacles == nil {
		g.obstacles = NewStore[Obstacle](8)
		g.platforms = NewStore[Platform](8)
		g.floors = NewStore[Floor](16)
		g.coins = NewStore[Coin](16)
		g.enemies = NewStore[Enemy](16)
		g.pickups = NewStore[Pickup](4)
		g.enemyShots = NewStore[Projectile](16)
		g.playerShots = NewStore[Projectile](8)
		return
	}
	g.obstacles.Clear()
	g.platforms.Clear()
	g.floors.Clear()
	g.coins.Clear()
	g.enemies.Clear()
	g.pickups.Clear()
	g.enemyShots.Clear()
	g.playerShots.Clear()
}

func (g *Game) resetSpawners() {
	sp := g.cfg.Spawns
	g.obstacleSpawner = NewSpawner(sp.Obstacle)
	g.platformSpawner = NewSpawner(sp.Platform)
	g.coinSpawner = NewSpawner(sp.Coin)
	g.enemySpawner = NewSpawner(sp.Enemy)
	g.pickupSpawner = NewSpawner(sp.Pickup)
	g.enemyShotSpawner = NewSpawner(sp.EnemyShot)
}

// populate builds the floor strip and the initial batches.
func (g *Game) populate() {
	fc := g.cfg.Floor
	n := int(math.Ceil(fc.Coverage * g.viewW / fc.SegmentWidth))
	for i := 0; i < n; i++ {
		g.floors.Add(Floor{Box: core.NewBox(float64(i)*fc.SegmentWidth, g.groundY, fc.SegmentWidth, fc.Height)})
	}

	edge := g.session.CameraOffset + g.viewW
	g.spawnPlatforms(edge)
	g.spawnCoins(edge)
	g.spawnEnemies(edge)
}

// Step advances the game by one tick in the fixed frame order. Once the
// game is over Step does nothing until Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil
	if g.session.GameOver {
		return core.StepResult{State: g.State()}
	}

	dt := in.Elapsed
	if dt <= 0 {
		dt = g.runtime.TickDuration()
	}
	g.session.Frame++
	g.session.Stats.Frames++

	g.applyIntents(in)

	g.session.CameraOffset = CameraOffset(g.player.X, g.viewW, g.cfg.Camera.Follow)

	g.tickTimers()

	g.stepPlayer()

	g.resolveCombat()

	g.stepEnemies()
	g.session.updateCoinBob(g.cfg.Coins.BobRange, g.cfg.Coins.BobStep)
	g.stepProjectiles()
	g.prune()
	g.compact()

	g.session.GameSpeed = g.difficulty.Speed(g.baseSpeed, g.session.Score)

	g.scroll(g.session.GameSpeed)
	g.recycleFloors()
	g.session.BackgroundOffset = AdvanceBackground(g.session.BackgroundOffset, g.session.GameSpeed, g.viewW)

	g.spawn(dt)

	return core.StepResult{State: g.State(), Cues: g.cues}
}

// spawn runs every spawner against the already-scrolled world edge.
func (g *Game) spawn(dt time.Duration) {
	edge := g.session.CameraOffset + g.viewW

	if g.obstacleSpawner.Due(dt, g.rng) {
		g.spawnObstacles(edge)
	}
	if g.platformSpawner.Due(dt, g.rng) {
		g.spawnPlatforms(edge)
	}
	if g.coinSpawner.Due(dt, g.rng) {
		g.spawnCoins(edge)
	}
	if g.enemySpawner.Due(dt, g.rng) {
		g.spawnEnemies(edge)
	}
	if g.pickupSpawner.Due(dt, g.rng) {
		g.spawnPickups(edge)
	}
	g.spawnEnemyShots()
}

func (g *Game) spawnObstacles(edge float64) {
	sp := g.obstacleSpawner
	r := sp.Rule()
	for i, n := 0, sp.Room(g.obstacles.Len()); i < n; i++ {
		x, y := sp.Place(i, edge, g.viewH, g.rng)
		g.obstacles.Add(Obstacle{Box: core.NewBox(x, y, r.Width, r.Height)})
	}
}

func (g *Game) spawnPlatforms(edge float64) {
	sp := g.platformSpawner
	r := sp.Rule()
	for i, n := 0, sp.Room(g.platforms.Len()); i < n; i++ {
		x, y := sp.Place(i, edge, g.viewH, g.rng)
		g.platforms.Add(Platform{Box: core.NewBox(x, y, r.Width, r.Height)})
	}
}

func (g *Game) spawnCoins(edge float64) {
	sp := g.coinSpawner
	r := sp.Rule()
	for i, n := 0, sp.Room(g.coins.Len()); i < n; i++ {
		x, y := sp.Place(i, edge, g.viewH, g.rng)
		g.coins.Add(Coin{X: x, Y: y, R: r.Radius})
	}
}

func (g *Game) spawnEnemies(edge float64) {
	sp := g.enemySpawner
	r := sp.Rule()
	for i, n := 0, sp.Room(g.enemies.Len()); i < n; i++ {
		x, y := sp.Place(i, edge, g.viewH, g.rng)
		g.enemies.Add(Enemy{Box: core.NewBox(x, y, r.Width, r.Height)})
	}
}

func (g *Game) spawnPickups(edge float64) {
	sp := g.pickupSpawner
	r := sp.Rule()
	for i, n := 0, sp.Room(g.pickups.Len()); i < n; i++ {
		x, y := sp.Place(i, edge, g.viewH, g.rng)
		kind := PickupKind(g.rng.Intn(2))
		g.pickups.Add(Pickup{Circle: core.Circle{X: x, Y: y, R: r.Radius}, Kind: kind})
	}
}

// spawnEnemyShots gives every enemy whose left edge is on screen one roll
// to fire this frame. Shots start at that edge.
func (g *Game) spawnEnemyShots() {
	sp := g.enemyShotSpawner
	r := sp.Rule()
	cam := g.session.CameraOffset
	g.enemies.Each(func(_ ID, e *Enemy) {
		if e.X < cam || sp.Full(g.enemyShots.Len()) || !sp.Roll(g.rng) {
			return
		}
		g.enemyShots.Add(Projectile{
			Circle: core.Circle{X: e.X, Y: e.Y + e.H/2, R: r.Radius},
			DX:     r.Speed,
		})
	})
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

// Resize updates the cell mapping used by Render. Entities are untouched.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Lives:    g.session.Lives,
		GameOver: g.session.GameOver,
		Stats:    g.session.Stats,
	}
}

// Register the game modes with the registry
func init() {
	for _, m := range []Mode{ModeClassic, ModeShooter} {
		registry.Register(m.ID, m.Title, func() registry.Game {
			return New(m)
		})
	}
}
