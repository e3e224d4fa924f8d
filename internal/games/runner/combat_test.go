package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// onPlayer returns a box fully inside the player's hitbox.
func onPlayer(g *Game) core.Box {
	hb := PlayerHitbox(g.player, g.cfg.Combat.HitboxInset)
	return core.NewBox(hb.X+5, hb.Y+5, 30, 30)
}

func TestFatalObstacleHit(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.session.Lives = 1
	g.player.DY = 0
	g.obstacles.Add(Obstacle{Box: onPlayer(g)})

	g.resolveCombat()

	assert.Equal(t, 0, g.session.Lives)
	assert.False(t, g.player.Alive)
	assert.True(t, g.session.GameOver)
	assert.True(t, hasCue(g.cues, core.CueDamage))
	assert.True(t, hasCue(g.cues, core.CueGameOver))
}

func TestObstacleDamageSetsCooldown(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.obstacles.Add(Obstacle{Box: onPlayer(g)})
	g.obstacles.Add(Obstacle{Box: onPlayer(g)})

	g.resolveCombat()

	assert.Equal(t, 2, g.session.Lives, "second obstacle in the same frame is suppressed")
	assert.True(t, g.player.Invincible)
	assert.Equal(t, g.cfg.Combat.InvincibleFrames, g.player.InvincibleTime)
	assert.Equal(t, 2, g.obstacles.Len(), "obstacles are not consumed")
}

func TestInvincibilityGating(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.obstacles.Add(Obstacle{Box: onPlayer(g)})
	g.player.Invincible = true
	g.player.InvincibleTime = 3

	for i := 0; i < 2; i++ {
		g.tickTimers()
		g.resolveCombat()
		assert.Equal(t, 3, g.session.Lives, "frame %d: shielded", i)
	}

	// Cooldown reaches zero this frame; the contact now counts.
	g.tickTimers()
	require.False(t, g.player.Invincible)
	g.resolveCombat()
	assert.Equal(t, 2, g.session.Lives)
}

func TestCoinInvincibilityAlsoShields(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.obstacles.Add(Obstacle{Box: onPlayer(g)})
	g.enemies.Add(Enemy{Box: onPlayer(g)})
	g.enemyShots.Add(Projectile{Circle: core.Circle{X: g.player.X + 40, Y: g.player.Y + 40, R: 5}, DX: -3})
	g.player.CoinInvincible = true
	g.player.CoinInvincibleTime = 10

	g.resolveCombat()

	assert.Equal(t, 3, g.session.Lives)
	assert.False(t, g.player.Invincible)
	assert.Equal(t, 1, g.enemyShots.Len(), "suppressed shot is not consumed")
}

func TestStompKill(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.player.DY = 5
	g.enemies.Add(Enemy{Box: onPlayer(g)})

	g.resolveCombat()
	g.compact()

	assert.Equal(t, 0, g.enemies.Len())
	assert.Equal(t, 20, g.session.Score)
	assert.Equal(t, -10.0, g.player.DY)
	assert.Equal(t, 4, g.session.Lives, "+1 life under the cap")
	assert.Equal(t, 1, g.session.Stats.Stomps)
	assert.True(t, hasCue(g.cues, core.CueEnemyHit))
	assert.False(t, hasCue(g.cues, core.CueDamage))
}

func TestStompAtLifeCap(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.session.Lives = g.cfg.Player.MaxLives
	g.player.DY = 5
	g.enemies.Add(Enemy{Box: onPlayer(g)})

	g.resolveCombat()
	assert.Equal(t, g.cfg.Player.MaxLives, g.session.Lives)
}

func TestEnemySideContactDamages(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.player.DY = 0
	g.enemies.Add(Enemy{Box: onPlayer(g)})

	g.resolveCombat()

	assert.Equal(t, 2, g.session.Lives)
	assert.Equal(t, 1, g.enemies.Len(), "enemy survives a side hit")
	assert.Equal(t, 0, g.session.Score)
}

func TestCoinMilestone(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.session.Score = 90
	hb := PlayerHitbox(g.player, g.cfg.Combat.HitboxInset)
	g.coins.Add(Coin{X: hb.X + 30, Y: hb.Y + 30, R: 20})

	g.resolveCombat()
	g.compact()

	assert.Equal(t, 100, g.session.Score)
	assert.True(t, g.player.CoinInvincible)
	assert.Equal(t, 180, g.player.CoinInvincibleTime)
	assert.False(t, g.player.Invincible, "coins never touch the damage cooldown")
	assert.Equal(t, 0, g.coins.Len())
	assert.True(t, hasCue(g.cues, core.CueCoin))
}

func TestCoinCrossingMilestone(t *testing.T) {
	// A shot leaves the score off the multiples of ten.
	g := emptyScene(t, ModeShooter)
	g.session.Score = 95
	hb := PlayerHitbox(g.player, g.cfg.Combat.HitboxInset)
	g.coins.Add(Coin{X: hb.X + 30, Y: hb.Y + 30, R: 20})

	g.resolveCombat()

	assert.Equal(t, 105, g.session.Score)
	assert.True(t, g.player.CoinInvincible)
	assert.Equal(t, g.cfg.Combat.CoinInvincibleFrames, g.player.CoinInvincibleTime)
}

func TestCoinBetweenMilestones(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.session.Score = 40
	hb := PlayerHitbox(g.player, g.cfg.Combat.HitboxInset)
	g.coins.Add(Coin{X: hb.X + 30, Y: hb.Y + 30, R: 20})

	g.resolveCombat()
	assert.Equal(t, 50, g.session.Score)
	assert.False(t, g.player.CoinInvincible)
}

func TestCoinCollectedWhileInvincible(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	g.player.Invincible = true
	g.player.InvincibleTime = 50
	hb := PlayerHitbox(g.player, g.cfg.Combat.HitboxInset)
	g.coins.Add(Coin{X: hb.X + 30, Y: hb.Y + 30, R: 20})

	g.resolveCombat()
	assert.Equal(t, 10, g.session.Score, "scoring is never gated")
}

func TestCoinCollisionFollowsBob(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	hb := PlayerHitbox(g.player, g.cfg.Combat.HitboxInset)
	// The coin's box ends 5 units above the hitbox at rest.
	g.coins.Add(Coin{X: hb.X + 30, Y: hb.Y - 50 - 5 + 20, R: 20})

	g.resolveCombat()
	require.Equal(t, 0, g.session.Score)

	g.session.CoinOffset = 10
	g.resolveCombat()
	assert.Equal(t, 10, g.session.Score)
}

func TestEnemyShotHitsInsetHitbox(t *testing.T) {
	g := emptyScene(t, ModeClassic)
	p := g.player
	// Grazes the full rectangle but misses the inset hitbox.
	g.enemyShots.Add(Projectile{Circle: core.Circle{X: p.X + p.W + 2, Y: p.Y + 60, R: 5}, DX: -3})

	g.resolveCombat()
	assert.Equal(t, 3, g.session.Lives)
	assert.Equal(t, 1, g.enemyShots.Len())

	g.enemyShots.Clear()
	g.enemyShots.Add(Projectile{Circle: core.Circle{X: p.X + p.W - 12, Y: p.Y + 60, R: 5}, DX: -3})
	g.resolveCombat()
	g.compact()
	assert.Equal(t, 2, g.session.Lives)
	assert.Equal(t, 0, g.enemyShots.Len(), "shot consumed on hit")
	assert.Equal(t, 0.0, g.player.DY, "no bounce")
}

func TestPlayerShotKillsEnemy(t *testing.T) {
	g := emptyScene(t, ModeShooter)
	g.enemies.Add(Enemy{Box: core.NewBox(600, 570, 100, 100)})
	g.enemies.Add(Enemy{Box: core.NewBox(600, 570, 100, 100)})
	g.playerShots.Add(Projectile{Circle: core.Circle{X: 610, Y: 620, R: 6}, DX: 12})

	g.resolveCombat()
	g.compact()

	assert.Equal(t, 1, g.enemies.Len(), "one shot kills one enemy")
	assert.Equal(t, 0, g.playerShots.Len())
	assert.Equal(t, 25, g.session.Score)
	assert.Equal(t, 1, g.session.Stats.Shots)
}

func TestStompedEnemyNotShotTwice(t *testing.T) {
	g := emptyScene(t, ModeShooter)
	g.player.DY = 5
	box := onPlayer(g)
	g.enemies.Add(Enemy{Box: box})
	g.playerShots.Add(Projectile{Circle: core.Circle{X: box.X + 10, Y: box.Y + 10, R: 6}, DX: 12})

	g.resolveCombat()
	g.compact()

	assert.Equal(t, 20, g.session.Score, "stomp only; the shot finds no live enemy")
	assert.Equal(t, 1, g.playerShots.Len())
}

func TestPickups(t *testing.T) {
	t.Run("life", func(t *testing.T) {
		g := emptyScene(t, ModeClassic)
		g.pickups.Add(Pickup{Circle: core.Circle{X: g.player.X + 40, Y: g.player.Y + 40, R: 16}, Kind: PickupLife})
		g.resolveCombat()
		g.compact()
		assert.Equal(t, 4, g.session.Lives)
		assert.Equal(t, 0, g.pickups.Len())
		assert.True(t, hasCue(g.cues, core.CuePickup))
	})

	t.Run("shield", func(t *testing.T) {
		g := emptyScene(t, ModeClassic)
		g.player.Invincible = true
		g.player.InvincibleTime = 5
		g.pickups.Add(Pickup{Circle: core.Circle{X: g.player.X + 40, Y: g.player.Y + 40, R: 16}, Kind: PickupShield})
		g.resolveCombat()
		assert.True(t, g.player.CoinInvincible, "collected even while invincible")
		assert.Equal(t, g.cfg.Combat.CoinInvincibleFrames, g.player.CoinInvincibleTime)
		assert.Equal(t, 1, g.session.Stats.Pickups)
	})
}

func TestShootingModeOnly(t *testing.T) {
	classic := emptyScene(t, ModeClassic)
	classic.applyIntents(input(core.ActionShoot))
	assert.Equal(t, 0, classic.playerShots.Len())

	g := emptyScene(t, ModeShooter)
	g.applyIntents(input(core.ActionShoot))
	require.Equal(t, 1, g.playerShots.Len())
	assert.True(t, hasCue(g.cues, core.CueShoot))

	shot := g.playerShots.Items()[0]
	assert.Equal(t, g.player.X+g.player.W, shot.X)
	assert.Equal(t, g.cfg.Shooter.Speed, shot.DX)

	g.applyIntents(input(core.ActionShoot))
	assert.Equal(t, 1, g.playerShots.Len(), "cooldown blocks the second shot")

	g.player.ShotCooldown = 0
	g.applyIntents(input(core.ActionMoveLeft, core.ActionShoot))
	require.Equal(t, 2, g.playerShots.Len())
	assert.Equal(t, -g.cfg.Shooter.Speed, g.playerShots.Items()[1].DX, "fires in the facing direction")
}

func TestShotCap(t *testing.T) {
	g := emptyScene(t, ModeShooter)
	for i := 0; i < 20; i++ {
		g.player.ShotCooldown = 0
		g.applyIntents(input(core.ActionShoot))
	}
	assert.Equal(t, g.cfg.Shooter.Cap, g.playerShots.Len())
}

func TestPruneOffscreen(t *testing.T) {
	g := emptyScene(t, ModeShooter)
	g.session.CameraOffset = 100
	g.obstacles.Add(Obstacle{Box: core.NewBox(-20, 500, 110, 140)}) // right edge 90
	g.obstacles.Add(Obstacle{Box: core.NewBox(0, 500, 110, 140)})   // right edge 110
	g.coins.Add(Coin{X: 60, Y: 300, R: 20})                           // box right edge 90
	g.coins.Add(Coin{X: 75, Y: 300, R: 20})                           // box right edge 105
	g.enemyShots.Add(Projectile{Circle: core.Circle{X: 90, Y: 300, R: 5}})
	g.playerShots.Add(Projectile{Circle: core.Circle{X: 100 + 1280 + 7, Y: 300, R: 6}})
	g.playerShots.Add(Projectile{Circle: core.Circle{X: 100 + 1280, Y: 300, R: 6}})

	g.prune()
	g.compact()

	assert.Equal(t, 1, g.obstacles.Len())
	assert.Equal(t, 110.0, g.obstacles.Items()[0].Right())
	require.Equal(t, 1, g.coins.Len(), "a coin goes only once its collision box is behind the camera")
	assert.Equal(t, 75.0, g.coins.Items()[0].X)
	assert.Equal(t, 0, g.enemyShots.Len())
	assert.Equal(t, 1, g.playerShots.Len())
}

func TestEnemyFiresOnlyWhenOnScreen(t *testing.T) {
	cfg := testConfig()
	cfg.Spawns.EnemyShot.Chance = 1
	g := newTestGame(t, ModeShooter, cfg)
	g.enemies.Clear()
	g.enemyShots.Clear()
	g.session.CameraOffset = 100

	g.enemies.Add(Enemy{Box: core.NewBox(60, 400, 60, 60)})  // straddles the left edge
	g.enemies.Add(Enemy{Box: core.NewBox(150, 400, 60, 60)}) // fully visible

	g.spawnEnemyShots()

	require.Equal(t, 1, g.enemyShots.Len())
	shot := g.enemyShots.Items()[0]
	assert.Equal(t, 150.0, shot.X)
	assert.GreaterOrEqual(t, shot.Right(), g.session.CameraOffset)
}
