package desktop

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Sound is the audio sink the window forwards cues to.
type Sound interface {
	Play(cues ...core.Cue)
	SetMuted(muted bool)
}

// Window adapts a runner game to ebiten.Game.
type Window struct {
	game   *runner.Game
	store  *storage.Store
	sound  Sound
	config core.RuntimeConfig
	keys   keyState

	state  core.GameState
	paused bool
	muted  bool
	saved  bool
}

// New creates a window driver. store and sound may be nil.
func New(game *runner.Game, store *storage.Store, sound Sound, cfg core.RuntimeConfig) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	w := &Window{
		game:   game,
		store:  store,
		sound:  sound,
		config: cfg,
		keys:   ebitenKeys{},
	}
	w.game.Reset(w.config)
	w.state = w.game.State()
	return w
}

// Update advances the simulation by one tick. It returns ebiten.Termination
// when the player quits.
func (w *Window) Update() error {
	ks := w.keys

	if anyJustPressed(ks, quitKeys) {
		return ebiten.Termination
	}
	if anyJustPressed(ks, muteKeys) && w.sound != nil {
		w.muted = !w.muted
		w.sound.SetMuted(w.muted)
	}
	if anyJustPressed(ks, resetKeys) && w.state.GameOver {
		w.config.Seed = time.Now().UnixNano()
		w.game.Reset(w.config)
		w.state = w.game.State()
		w.saved = false
		w.paused = false
		return nil
	}
	if anyJustPressed(ks, pauseKeys) && !w.state.GameOver {
		w.paused = !w.paused
	}
	if w.paused {
		return nil
	}

	// Ebitengine calls Update at a fixed TPS, so the nominal tick is exact
	// and Elapsed stays zero.
	res := w.game.Step(collectInput(ks))
	w.state = res.State
	if w.sound != nil && len(res.Cues) > 0 {
		w.sound.Play(res.Cues...)
	}

	if w.state.GameOver && !w.saved {
		w.saved = true
		if w.store != nil && w.state.Score > 0 {
			rec := storage.NewRunRecord(w.game.ID(), w.config.Seed, w.state)
			if _, err := w.store.SaveRun(rec); err != nil {
				log.Warn("could not save run", "game", w.game.ID(), "err", err)
			}
		}
	}
	return nil
}

// Layout reports the logical screen: the game's viewport. Ebitengine
// scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	snap := w.game.Snapshot()
	return int(snap.ViewportW), int(snap.ViewportH)
}

// Run opens the window and blocks until it closes.
func Run(game *runner.Game, store *storage.Store, sound Sound, cfg core.RuntimeConfig) error {
	w := New(game, store, sound, cfg)
	snap := game.Snapshot()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(snap.ViewportW), int(snap.ViewportH))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	log.Info("window opened", "game", game.ID(), "seed", w.config.Seed, "tps", ebiten.TPS())
	err := ebiten.RunGame(w)
	log.Info("window closed", "score", w.state.Score, "frames", w.state.Stats.Frames)
	return err
}
