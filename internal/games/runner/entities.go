package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// Player is the single player-controlled character.
type Player struct {
	X, Y   float64 // Top-left corner in world space
	DX, DY float64
	W, H   float64
	Speed  float64 // Horizontal move magnitude

	JumpCount int
	MaxJumps  int
	Grounded  bool
	Alive     bool

	Invincible         bool // Damage cooldown after a hit
	InvincibleTime     int
	CoinInvincible     bool // Granted by coin milestones and shield pickups
	CoinInvincibleTime int

	FallingThrough bool // Platforms are ignored until ground contact or dy == 0

	Facing       float64 // +1 right, -1 left
	ShotCooldown int
}

// Box returns the player's full rectangle.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Bottom returns the y-coordinate of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// Shielded reports whether either invincibility flag suppresses damage.
func (p Player) Shielded() bool {
	return p.Invincible || p.CoinInvincible
}

// Obstacle is a static hazard.
type Obstacle struct {
	core.Box
}

// Platform is a one-way ledge the player can land on from above.
type Platform struct {
	core.Box
}

// Floor is one segment of the recycled ground strip. Floors are scenery;
// ground contact uses the fixed ground line.
type Floor struct {
	core.Box
}

// Enemy hops in place and can be stomped.
type Enemy struct {
	core.Box
	DY float64
}

// Coin is a collectible drawn as a circle. Its collision box follows the
// shared bob offset.
type Coin struct {
	X, Y float64 // Center
	R    float64
}

// PickupKind selects a pickup's effect.
type PickupKind int

const (
	PickupLife   PickupKind = iota // +1 life under the cap
	PickupShield                   // Coin invincibility
)

// String returns the pickup name.
func (k PickupKind) String() string {
	switch k {
	case PickupLife:
		return "life"
	case PickupShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Pickup is a power-up collected on contact.
type Pickup struct {
	core.Circle
	Kind PickupKind
}

// Projectile is a round shot travelling horizontally.
type Projectile struct {
	core.Circle
	DX float64
}

// Left returns the x-coordinate of the shot's left edge.
func (p Projectile) Left() float64 {
	return p.X - p.R
}

// Right returns the x-coordinate of the shot's right edge.
func (p Projectile) Right() float64 {
	return p.X + p.R
}
