package runner

import (
	"github.com/vovakirdan/tui-runner/internal/core"
)

// applyIntents translates this frame's actions into player state.
// Invalid intents (a jump with no budget left, a drop while rising) are
// ignored.
func (g *Game) applyIntents(in core.InputFrame) {
	p := &g.player

	if in.Has(core.ActionStop) {
		p.DX = 0
	}
	if in.Has(core.ActionMoveLeft) {
		p.DX = -p.Speed
		p.Facing = -1
	}
	if in.Has(core.ActionMoveRight) {
		p.DX = p.Speed
		p.Facing = 1
	}

	if in.Has(core.ActionJump) {
		g.jump()
	}

	if in.Has(core.ActionFallThrough) && p.DY >= 0 {
		p.FallingThrough = true
	}

	if in.Has(core.ActionShoot) {
		g.shoot()
	}
}

// jump applies the jump impulse when the budget allows it.
func (g *Game) jump() bool {
	p := &g.player
	if p.JumpCount >= p.MaxJumps {
		return false
	}
	p.DY = g.cfg.Physics.JumpImpulse
	p.JumpCount++
	p.Grounded = false
	g.emit(core.CueJump)
	return true
}

// shoot fires a player projectile in the facing direction.
func (g *Game) shoot() bool {
	if !g.mode.Shooting {
		return false
	}
	p := &g.player
	sc := g.cfg.Shooter
	if p.ShotCooldown > 0 || (sc.Cap > 0 && g.playerShots.Len() >= sc.Cap) {
		return false
	}

	x := p.X + p.W
	if p.Facing < 0 {
		x = p.X
	}
	g.playerShots.Add(Projectile{
		Circle: core.Circle{X: x, Y: p.Y + p.H/2, R: sc.Radius},
		DX:     p.Facing * sc.Speed,
	})
	p.ShotCooldown = sc.Cooldown
	g.emit(core.CueShoot)
	return true
}

// stepPlayer integrates gravity and velocity, clamps horizontally, then
// resolves ground and platform contact.
func (g *Game) stepPlayer() {
	p := &g.player
	phys := g.cfg.Physics

	p.DY += phys.Gravity
	p.X += p.DX
	p.Y += p.DY
	p.Grounded = false

	// Left edge always clamps; the right edge only when the camera is fixed.
	if p.X < 0 {
		p.X = 0
	}
	if !g.cfg.Camera.Follow {
		if maxX := g.viewW - p.W; p.X > maxX {
			p.X = maxX
		}
	}

	if p.Bottom() > g.groundY {
		p.Y = g.groundY - p.H
		p.DY = 0
		p.Grounded = true
		p.JumpCount = 0
		p.FallingThrough = false
	}

	g.resolvePlatforms()

	if p.FallingThrough && p.DY == 0 {
		p.FallingThrough = false
	}
}

// resolvePlatforms lands a falling player on platform tops. Every platform
// is checked in insertion order; the last match wins.
func (g *Game) resolvePlatforms() {
	p := &g.player
	if p.FallingThrough {
		return
	}
	g.platforms.Each(func(_ ID, pl *Platform) {
		if p.DY < 0 {
			return
		}
		bottom := p.Bottom()
		if bottom <= pl.Y || bottom >= pl.Bottom() {
			return
		}
		if p.X >= pl.Right() || p.X+p.W <= pl.X {
			return
		}
		p.Y = pl.Y - p.H
		p.DY = 0
		p.Grounded = true
		p.JumpCount = 0
	})
}

// stepEnemies applies hop, gravity and the ground clamp. Enemies ignore
// platforms.
func (g *Game) stepEnemies() {
	phys := g.cfg.Physics
	g.enemies.Each(func(_ ID, e *Enemy) {
		if g.rng.Float64() < phys.EnemyHopChance {
			e.DY = phys.EnemyHopImpulse
		}
		e.DY += phys.Gravity
		e.Y += e.DY
		if e.Bottom() > g.groundY {
			e.Y = g.groundY - e.H
			e.DY = 0
		}
	})
}

// stepProjectiles moves shots by their own velocity.
func (g *Game) stepProjectiles() {
	g.enemyShots.Each(func(_ ID, s *Projectile) { s.X += s.DX })
	g.playerShots.Each(func(_ ID, s *Projectile) { s.X += s.DX })
}

// tickTimers counts down status effects and the shot cooldown.
func (g *Game) tickTimers() {
	p := &g.player
	if p.Invincible {
		p.InvincibleTime--
		if p.InvincibleTime <= 0 {
			p.InvincibleTime = 0
			p.Invincible = false
		}
	}
	if p.CoinInvincible {
		p.CoinInvincibleTime--
		if p.CoinInvincibleTime <= 0 {
			p.CoinInvincibleTime = 0
			p.CoinInvincible = false
		}
	}
	if p.ShotCooldown > 0 {
		p.ShotCooldown--
	}
}
