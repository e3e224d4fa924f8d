package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

// Palette
var (
	colSky        = color.RGBA{R: 18, G: 22, B: 40, A: 255}
	colSkyBand    = color.RGBA{R: 26, G: 32, B: 58, A: 255}
	colFloor      = color.RGBA{R: 60, G: 140, B: 70, A: 255}
	colFloorEdge  = color.RGBA{R: 90, G: 190, B: 100, A: 255}
	colPlatform   = color.RGBA{R: 200, G: 170, B: 80, A: 255}
	colObstacle   = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	colEnemy      = color.RGBA{R: 170, G: 70, B: 190, A: 255}
	colCoin       = color.RGBA{R: 250, G: 210, B: 60, A: 255}
	colLife       = color.RGBA{R: 240, G: 90, B: 110, A: 255}
	colShield     = color.RGBA{R: 90, G: 220, B: 240, A: 255}
	colEnemyShot  = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	colPlayerShot = color.RGBA{R: 140, G: 240, B: 255, A: 255}
	colPlayer     = color.RGBA{R: 80, G: 200, B: 120, A: 255}
	colShielded   = color.RGBA{R: 120, G: 230, B: 255, A: 255}
	colOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	colHint       = color.RGBA{R: 170, G: 170, B: 190, A: 255}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// drawText writes s with its top-left corner at (x, y), scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, hudFace, op)
}

// Draw renders the latest snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()
	cam := float32(snap.Session.CameraOffset)

	drawSky(screen, snap)

	for _, f := range snap.Floors {
		fillBox(screen, f.Box, cam, colFloor)
		vector.FillRect(screen, float32(f.X)-cam, float32(f.Y), float32(f.W), 4, colFloorEdge, false)
	}
	for _, p := range snap.Platforms {
		fillBox(screen, p.Box, cam, colPlatform)
	}
	for _, o := range snap.Obstacles {
		fillBox(screen, o.Box, cam, colObstacle)
	}
	bob := float32(snap.Session.CoinOffset)
	for _, c := range snap.Coins {
		vector.FillCircle(screen, float32(c.X)-cam, float32(c.Y)+bob, float32(c.R), colCoin, true)
	}
	for _, p := range snap.Pickups {
		col := colShield
		if p.Kind == runner.PickupLife {
			col = colLife
		}
		vector.FillCircle(screen, float32(p.X)-cam, float32(p.Y), float32(p.R), col, true)
	}
	for _, e := range snap.Enemies {
		fillBox(screen, e.Box, cam, colEnemy)
	}
	for _, s := range snap.EnemyShots {
		vector.FillCircle(screen, float32(s.X)-cam, float32(s.Y), float32(s.R), colEnemyShot, true)
	}
	for _, s := range snap.PlayerShots {
		vector.FillCircle(screen, float32(s.X)-cam, float32(s.Y), float32(s.R), colPlayerShot, true)
	}

	drawPlayer(screen, snap, cam)
	drawHUD(screen, snap)

	switch {
	case snap.Session.GameOver:
		drawBanner(screen, snap, "GAME OVER", fmt.Sprintf("Score: %d   R: restart   Q: quit", snap.Session.Score))
	case w.paused:
		drawBanner(screen, snap, "PAUSED", "P: resume   Q: quit")
	}
}

func fillBox(dst *ebiten.Image, b core.Box, cam float32, col color.Color) {
	vector.FillRect(dst, float32(b.X)-cam, float32(b.Y), float32(b.W), float32(b.H), col, false)
}

// drawSky paints parallax bands scrolled by the background offset.
func drawSky(dst *ebiten.Image, snap runner.Snapshot) {
	dst.Fill(colSky)
	const bandW = 160
	off := float32(snap.Session.BackgroundOffset)
	for x := -off; x < float32(snap.ViewportW); x += 2 * bandW {
		vector.FillRect(dst, x, 0, bandW, float32(snap.GroundY), colSkyBand, false)
	}
}

func drawPlayer(dst *ebiten.Image, snap runner.Snapshot, cam float32) {
	p := snap.Player
	if p.Invincible && (snap.Session.Frame/6)%2 == 1 {
		return
	}
	col := colPlayer
	if p.CoinInvincible {
		col = colShielded
	}
	vector.FillRect(dst, float32(p.X)-cam, float32(p.Y), float32(p.W), float32(p.H), col, false)

	// Eye on the facing side.
	eyeX := float32(p.X+p.W*0.75) - cam
	if p.Facing < 0 {
		eyeX = float32(p.X+p.W*0.25) - cam
	}
	vector.FillCircle(dst, eyeX, float32(p.Y+p.H*0.2), 6, color.White, true)
}

func drawHUD(dst *ebiten.Image, snap runner.Snapshot) {
	s := snap.Session
	hud := fmt.Sprintf("Score: %d   Lives: %d   Speed: %.1f", s.Score, s.Lives, s.GameSpeed)
	if snap.Player.CoinInvincible {
		hud += "   SHIELD"
	}
	drawText(dst, hud, 12, 10, 2, color.White)
	drawText(dst, "A/D run  Space jump  S drop  F shoot  P pause  M mute", 12, 40, 1, colHint)
}

func drawBanner(dst *ebiten.Image, snap runner.Snapshot, title, hint string) {
	const w, h = 420, 100
	x := float32(snap.ViewportW-w) / 2
	y := float32(snap.ViewportH-h) / 2
	vector.FillRect(dst, x, y, w, h, colOverlay, false)
	vector.StrokeRect(dst, x, y, w, h, 2, color.White, false)
	drawText(dst, title, float64(x)+16, float64(y)+14, 3, colCoin)
	drawText(dst, hint, float64(x)+16, float64(y)+70, 1, color.White)
}
