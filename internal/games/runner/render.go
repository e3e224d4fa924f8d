package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '█'
	PlayerHead     = '◆'
	ObstacleChar   = '▓'
	PlatformChar   = '▬'
	FloorChar      = '▀'
	EnemyChar      = '▒'
	CoinChar       = '●'
	LifeChar       = '♥'
	ShieldChar     = '◈'
	EnemyShotChar  = '•'
	PlayerShotChar = '─'
	StarChar       = '·'
)

// cellMapper converts world coordinates to screen cells.
type cellMapper struct {
	sx, sy float64 // Cells per world unit
	cam    float64
}

func newCellMapper(dst *core.Screen, viewW, viewH, cam float64) cellMapper {
	return cellMapper{
		sx:  float64(dst.Width()) / viewW,
		sy:  float64(dst.Height()) / viewH,
		cam: cam,
	}
}

// rect maps a world box to the cells it covers. Anything visible gets at
// least one cell.
func (m cellMapper) rect(b core.Box) core.Rect {
	x0 := core.Round((b.X - m.cam) * m.sx)
	x1 := core.Round((b.Right() - m.cam) * m.sx)
	y0 := core.Round(b.Y * m.sy)
	y1 := core.Round(b.Bottom() * m.sy)
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

func (m cellMapper) point(x, y float64) (int, int) {
	return core.Round((x - m.cam) * m.sx), core.Round(y * m.sy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || g.viewW <= 0 {
		return
	}

	s := &g.session
	m := newCellMapper(dst, g.viewW, g.viewH, s.CameraOffset)

	g.drawBackground(dst)

	g.floors.Each(func(_ ID, f *Floor) {
		dst.DrawRectColored(m.rect(f.Box), FloorChar, core.ColorGreen)
	})
	g.platforms.Each(func(_ ID, p *Platform) {
		r := m.rect(p.Box)
		dst.DrawRectColored(core.NewRect(r.X, r.Y, r.W, 1), PlatformChar, core.ColorYellow)
	})
	g.obstacles.Each(func(_ ID, o *Obstacle) {
		dst.DrawRectColored(m.rect(o.Box), ObstacleChar, core.ColorRed)
	})
	g.coins.Each(func(_ ID, c *Coin) {
		x, y := m.point(c.X, c.Y+s.CoinOffset)
		dst.SetColored(x, y, CoinChar, core.ColorBrightYellow)
	})
	g.pickups.Each(func(_ ID, p *Pickup) {
		x, y := m.point(p.X, p.Y)
		if p.Kind == PickupLife {
			dst.SetColored(x, y, LifeChar, core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, ShieldChar, core.ColorBrightCyan)
		}
	})
	g.enemies.Each(func(_ ID, e *Enemy) {
		dst.DrawRectColored(m.rect(e.Box), EnemyChar, core.ColorMagenta)
	})
	g.enemyShots.Each(func(_ ID, p *Projectile) {
		x, y := m.point(p.X, p.Y)
		dst.SetColored(x, y, EnemyShotChar, core.ColorBrightRed)
	})
	g.playerShots.Each(func(_ ID, p *Projectile) {
		x, y := m.point(p.X, p.Y)
		dst.SetColored(x, y, PlayerShotChar, core.ColorBrightCyan)
	})

	g.drawPlayer(dst, m)
	g.drawHUD(dst)

	if s.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

// drawBackground scatters parallax stars scrolled by the background offset.
func (g *Game) drawBackground(dst *core.Screen) {
	w := dst.Width()
	shift := core.Round(g.session.BackgroundOffset * float64(w) / g.viewW)
	skyRows := core.Round(g.groundY * float64(dst.Height()) / g.viewH)
	for y := 1; y < skyRows; y += 3 {
		for x := (y * 7) % 11; x < w+shift; x += 11 {
			dst.SetColored(x-shift, y, StarChar, core.ColorGray)
		}
	}
}

// drawPlayer renders the player, blinking while invincible.
func (g *Game) drawPlayer(dst *core.Screen, m cellMapper) {
	p := &g.player
	if p.Invincible && (g.session.Frame/4)%2 == 1 {
		return
	}
	color := core.ColorBrightGreen
	if p.CoinInvincible {
		color = core.ColorBrightCyan
	}
	r := m.rect(p.Box())
	dst.DrawRectColored(r, PlayerChar, color)

	headX := r.X + r.W - 1
	if p.Facing < 0 {
		headX = r.X
	}
	dst.SetColored(headX, r.Y, PlayerHead, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := &g.session
	hud := fmt.Sprintf(" Score: %d  Lives: %d ", s.Score, s.Lives)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)

	speed := fmt.Sprintf(" Spd: %.1f ", s.GameSpeed)
	if g.player.CoinInvincible {
		speed = " SHIELD " + speed
	}
	dst.DrawTextColored(dst.Width()-len(speed)-2, 0, speed, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
