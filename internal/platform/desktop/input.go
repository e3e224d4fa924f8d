// Package desktop runs the runner in a native window through Ebitengine.
// Unlike the terminal, the window sees real key releases, so Stop is sent
// when the last held move key comes up.
package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// keyState is the slice of the keyboard the driver reads each frame.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

var (
	leftKeys   = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys  = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	jumpKeys   = []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}
	dropKeys   = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	shootKeys  = []ebiten.Key{ebiten.KeyF, ebiten.KeyJ}
	pauseKeys  = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	resetKeys  = []ebiten.Key{ebiten.KeyR}
	quitKeys   = []ebiten.Key{ebiten.KeyQ}
	muteKeys   = []ebiten.Key{ebiten.KeyM}
	moveKeySet = append(append([]ebiten.Key{}, leftKeys...), rightKeys...)
)

func anyPressed(ks keyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if ks.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(ks keyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if ks.JustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(ks keyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if ks.JustReleased(k) {
			return true
		}
	}
	return false
}

// collectInput builds the frame's game actions. Held move keys repeat
// every frame; jump and shoot fire on the press edge only.
func collectInput(ks keyState) core.InputFrame {
	in := core.NewInputFrame()

	left := anyPressed(ks, leftKeys)
	right := anyPressed(ks, rightKeys)
	switch {
	case left && !right:
		in.Set(core.ActionMoveLeft)
	case right && !left:
		in.Set(core.ActionMoveRight)
	case !left && !right && anyJustReleased(ks, moveKeySet):
		in.Set(core.ActionStop)
	}

	if anyJustPressed(ks, jumpKeys) {
		in.Set(core.ActionJump)
	}
	if anyJustPressed(ks, dropKeys) {
		in.Set(core.ActionFallThrough)
	}
	if anyJustPressed(ks, shootKeys) {
		in.Set(core.ActionShoot)
	}
	return in
}
