package runner

// Snapshot is a read-only copy of the world for presentation. Front-ends
// read it after Step; mutating it has no effect on the game.
type Snapshot struct {
	Player  Player
	Session SessionState

	ViewportW float64
	ViewportH float64
	GroundY   float64
	Shooting  bool

	Floors      []Floor
	Platforms   []Platform
	Obstacles   []Obstacle
	Coins       []Coin
	Enemies     []Enemy
	Pickups     []Pickup
	EnemyShots  []Projectile
	PlayerShots []Projectile
}

// Snapshot copies the current world state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Player:      g.player,
		Session:     g.session,
		ViewportW:   g.viewW,
		ViewportH:   g.viewH,
		GroundY:     g.groundY,
		Shooting:    g.mode.Shooting,
		Floors:      g.floors.Items(),
		Platforms:   g.platforms.Items(),
		Obstacles:   g.obstacles.Items(),
		Coins:       g.coins.Items(),
		Enemies:     g.enemies.Items(),
		Pickups:     g.pickups.Items(),
		EnemyShots:  g.enemyShots.Items(),
		PlayerShots: g.playerShots.Items(),
	}
}
