package runner

// backgroundWrap is the background offset period in viewport widths.
const backgroundWrap = 1.5

// parallaxDivisor slows the background relative to the world scroll.
const parallaxDivisor = 20

// CameraOffset returns the horizontal camera translation. The camera
// follows once the player passes the viewport midpoint and never goes
// negative; with follow disabled it stays at 0.
func CameraOffset(playerX, viewportW float64, follow bool) float64 {
	if !follow {
		return 0
	}
	if off := playerX - viewportW/2; off > 0 {
		return off
	}
	return 0
}

// AdvanceBackground moves the parallax offset by speed/20 and wraps it to
// 0 once it reaches 1.5 viewport widths.
func AdvanceBackground(offset, speed, viewportW float64) float64 {
	offset += speed / parallaxDivisor
	if offset >= viewportW*backgroundWrap {
		return 0
	}
	return offset
}

// scroll translates every scrolling entity left by speed. Entity-local
// velocity is applied separately.
func (g *Game) scroll(speed float64) {
	g.obstacles.Each(func(_ ID, o *Obstacle) { o.X -= speed })
	g.platforms.Each(func(_ ID, p *Platform) { p.X -= speed })
	g.coins.Each(func(_ ID, c *Coin) { c.X -= speed })
	g.enemies.Each(func(_ ID, e *Enemy) { e.X -= speed })
	g.pickups.Each(func(_ ID, p *Pickup) { p.X -= speed })
	g.enemyShots.Each(func(_ ID, p *Projectile) { p.X -= speed })
	g.playerShots.Each(func(_ ID, p *Projectile) { p.X -= speed })
	g.floors.Each(func(_ ID, f *Floor) { f.X -= speed })
}

// recycleFloors moves every floor segment that left the visible area to
// the current end of the strip, keeping the ground contiguous.
func (g *Game) recycleFloors() {
	end := 0.0
	g.floors.Each(func(_ ID, f *Floor) {
		if r := f.Right(); r > end {
			end = r
		}
	})
	left := g.session.CameraOffset
	g.floors.Each(func(_ ID, f *Floor) {
		if f.Right() < left {
			f.X = end
			end = f.Right()
		}
	})
}
