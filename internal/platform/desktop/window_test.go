package desktop

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// fakeKeys is a scripted keyboard for one frame.
type fakeKeys struct {
	held     map[ebiten.Key]bool
	pressed  map[ebiten.Key]bool
	released map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		held:     map[ebiten.Key]bool{},
		pressed:  map[ebiten.Key]bool{},
		released: map[ebiten.Key]bool{},
	}
}

func (f *fakeKeys) Pressed(k ebiten.Key) bool      { return f.held[k] }
func (f *fakeKeys) JustPressed(k ebiten.Key) bool  { return f.pressed[k] }
func (f *fakeKeys) JustReleased(k ebiten.Key) bool { return f.released[k] }

// press marks k as pressed this frame and held.
func (f *fakeKeys) press(k ebiten.Key) *fakeKeys {
	f.held[k] = true
	f.pressed[k] = true
	return f
}

func (f *fakeKeys) release(k ebiten.Key) *fakeKeys {
	delete(f.held, k)
	f.released[k] = true
	return f
}

type fakeSound struct {
	played []core.Cue
	muted  bool
}

func (s *fakeSound) Play(cues ...core.Cue) { s.played = append(s.played, cues...) }
func (s *fakeSound) SetMuted(m bool)       { s.muted = m }

func newTestWindow(t *testing.T, sound Sound) *Window {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.Physics.EnemyHopChance = 0
	cfg.Spawns.EnemyShot.Chance = 0
	g, err := runner.NewWithConfig(runner.ModeShooter, cfg)
	require.NoError(t, err)
	rt := core.DefaultConfig()
	rt.Seed = 7
	return New(g, nil, sound, rt)
}

func TestCollectInputMovement(t *testing.T) {
	in := collectInput(newFakeKeys().press(ebiten.KeyD))
	assert.True(t, in.Has(core.ActionMoveRight))
	assert.False(t, in.Has(core.ActionStop))

	in = collectInput(newFakeKeys().press(ebiten.KeyArrowLeft))
	assert.True(t, in.Has(core.ActionMoveLeft))

	// Both directions held cancel out without stopping.
	in = collectInput(newFakeKeys().press(ebiten.KeyA).press(ebiten.KeyD))
	assert.False(t, in.Has(core.ActionMoveLeft))
	assert.False(t, in.Has(core.ActionMoveRight))
	assert.False(t, in.Has(core.ActionStop))
}

func TestCollectInputStopOnRelease(t *testing.T) {
	in := collectInput(newFakeKeys().release(ebiten.KeyD))
	assert.True(t, in.Has(core.ActionStop))

	// Releasing one key while the other is still held keeps moving.
	in = collectInput(newFakeKeys().release(ebiten.KeyD).press(ebiten.KeyA))
	assert.True(t, in.Has(core.ActionMoveLeft))
	assert.False(t, in.Has(core.ActionStop))
}

func TestCollectInputEdges(t *testing.T) {
	keys := newFakeKeys().press(ebiten.KeySpace).press(ebiten.KeyS).press(ebiten.KeyF)
	in := collectInput(keys)
	assert.True(t, in.Has(core.ActionJump))
	assert.True(t, in.Has(core.ActionFallThrough))
	assert.True(t, in.Has(core.ActionShoot))

	// Holding without a fresh press does nothing.
	held := newFakeKeys()
	held.held[ebiten.KeySpace] = true
	assert.False(t, collectInput(held).Has(core.ActionJump))
}

func TestWindowStepsAndForwardsCues(t *testing.T) {
	sound := &fakeSound{}
	w := newTestWindow(t, sound)

	w.keys = newFakeKeys().press(ebiten.KeySpace)
	require.NoError(t, w.Update())
	assert.Contains(t, sound.played, core.CueJump)
	assert.Equal(t, 1, w.state.Stats.Frames)
}

func TestWindowPause(t *testing.T) {
	w := newTestWindow(t, nil)

	w.keys = newFakeKeys().press(ebiten.KeyP)
	require.NoError(t, w.Update())
	assert.True(t, w.paused)
	frames := w.state.Stats.Frames

	w.keys = newFakeKeys()
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Update())
	}
	assert.Equal(t, frames, w.game.State().Stats.Frames, "no steps while paused")

	w.keys = newFakeKeys().press(ebiten.KeyP)
	require.NoError(t, w.Update())
	assert.False(t, w.paused)
	assert.Equal(t, frames+1, w.state.Stats.Frames)
}

func TestWindowQuit(t *testing.T) {
	w := newTestWindow(t, nil)
	w.keys = newFakeKeys().press(ebiten.KeyQ)
	assert.ErrorIs(t, w.Update(), ebiten.Termination)
}

func TestWindowMute(t *testing.T) {
	sound := &fakeSound{}
	w := newTestWindow(t, sound)
	w.keys = newFakeKeys().press(ebiten.KeyM)
	require.NoError(t, w.Update())
	assert.True(t, sound.muted)
}

func TestWindowLayoutIsViewport(t *testing.T) {
	w := newTestWindow(t, nil)
	lw, lh := w.Layout(640, 360)
	assert.Equal(t, 1280, lw)
	assert.Equal(t, 720, lh)
}
