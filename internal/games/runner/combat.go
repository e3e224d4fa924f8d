package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// resolveCombat runs the interaction rules in their fixed order:
// obstacles, coins, pickups, enemies, enemy shots, player shots.
// Removals are only marked here; Compact runs after pruning.
func (g *Game) resolveCombat() {
	p := &g.player
	cb := g.cfg.Combat
	hb := PlayerHitbox(*p, cb.HitboxInset)

	g.obstacles.Each(func(_ ID, o *Obstacle) {
		if hitsPlayer(hb, o.Box) && !p.Shielded() {
			g.damage()
		}
	})

	g.coins.Each(func(id ID, c *Coin) {
		if !hitsPlayer(hb, CoinBox(*c, g.session.CoinOffset)) {
			return
		}
		if !g.coins.MarkRemoved(id) {
			return
		}
		prev := g.session.Score
		g.session.addScore(cb.CoinScore)
		g.session.Stats.Coins++
		g.emit(core.CueCoin)
		// Shots and stomps move the score off the milestone grid, so any
		// crossing counts.
		if m := cb.CoinMilestone; m > 0 && prev/m < g.session.Score/m {
			p.CoinInvincible = true
			p.CoinInvincibleTime = cb.CoinInvincibleFrames
		}
	})

	g.pickups.Each(func(id ID, pk *Pickup) {
		if !circleHitsPlayer(hb, pk.Circle) || !g.pickups.MarkRemoved(id) {
			return
		}
		g.applyPickup(pk.Kind)
	})

	g.enemies.Each(func(id ID, e *Enemy) {
		if !hitsPlayer(hb, e.Box) {
			return
		}
		if p.DY > 0 {
			if !g.enemies.MarkRemoved(id) {
				return
			}
			g.session.addScore(cb.StompScore)
			g.session.Stats.Stomps++
			p.DY = g.cfg.Physics.StompBounce
			g.gainLife()
			g.emit(core.CueEnemyHit)
			return
		}
		if !p.Shielded() {
			g.damage()
		}
	})

	g.enemyShots.Each(func(id ID, s *Projectile) {
		if p.Shielded() || !circleHitsPlayer(hb, s.Circle) {
			return
		}
		if g.enemyShots.MarkRemoved(id) {
			g.damage()
		}
	})

	g.playerShots.Each(func(sid ID, s *Projectile) {
		hit := false
		g.enemies.Each(func(eid ID, e *Enemy) {
			if hit || !core.CircleBoxIntersect(s.Circle, e.Box) {
				return
			}
			if g.enemies.MarkRemoved(eid) && g.playerShots.MarkRemoved(sid) {
				hit = true
				g.session.addScore(cb.ShotScore)
				g.session.Stats.Shots++
				g.emit(core.CueEnemyHit)
			}
		})
	})
}

// damage is the shared damage sequence. Callers check invincibility.
func (g *Game) damage() {
	p := &g.player
	if !p.Alive {
		return
	}
	g.session.Lives--
	p.Invincible = true
	p.InvincibleTime = g.cfg.Combat.InvincibleFrames
	g.emit(core.CueDamage)

	if g.session.Lives <= 0 {
		g.session.Lives = 0
		p.Alive = false
		g.session.GameOver = true
		g.emit(core.CueGameOver)
	}
}

// gainLife adds a life unless the cap is reached.
func (g *Game) gainLife() {
	if g.session.Lives < g.cfg.Player.MaxLives {
		g.session.Lives++
	}
}

func (g *Game) applyPickup(kind PickupKind) {
	switch kind {
	case PickupLife:
		g.gainLife()
	case PickupShield:
		g.player.CoinInvincible = true
		g.player.CoinInvincibleTime = g.cfg.Combat.CoinInvincibleFrames
	}
	g.session.Stats.Pickups++
	g.emit(core.CuePickup)
}

// prune marks every entity that left the visible area: anything whose
// right edge is behind the camera, and player shots past the right edge.
func (g *Game) prune() {
	left := g.session.CameraOffset
	right := left + g.viewW

	g.obstacles.Each(func(id ID, o *Obstacle) {
		if o.Right() < left {
			g.obstacles.MarkRemoved(id)
		}
	})
	g.platforms.Each(func(id ID, pl *Platform) {
		if pl.Right() < left {
			g.platforms.MarkRemoved(id)
		}
	})
	g.coins.Each(func(id ID, c *Coin) {
		if CoinBox(*c, g.session.CoinOffset).Right() < left {
			g.coins.MarkRemoved(id)
		}
	})
	g.enemies.Each(func(id ID, e *Enemy) {
		if e.Right() < left {
			g.enemies.MarkRemoved(id)
		}
	})
	g.pickups.Each(func(id ID, pk *Pickup) {
		if pk.X+pk.R < left {
			g.pickups.MarkRemoved(id)
		}
	})
	g.enemyShots.Each(func(id ID, s *Projectile) {
		if s.Right() < left {
			g.enemyShots.MarkRemoved(id)
		}
	})
	g.playerShots.Each(func(id ID, s *Projectile) {
		if s.Left() > right || s.Right() < left {
			g.playerShots.MarkRemoved(id)
		}
	})
}

// compact drops everything marked this frame.
func (g *Game) compact() {
	g.obstacles.Compact()
	g.platforms.Compact()
	g.coins.Compact()
	g.enemies.Compact()
	g.pickups.Compact()
	g.enemyShots.Compact()
	g.playerShots.Compact()
}
