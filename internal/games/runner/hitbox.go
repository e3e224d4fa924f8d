package runner

import "github.com/vovakirdan/tui-runner/internal/core"

// PlayerHitbox returns the player's rectangle shrunk by inset on every
// side. Every player-vs-hazard or player-vs-collectible test uses it; the
// other side of the test is never inset.
func PlayerHitbox(p Player, inset float64) core.Box {
	return p.Box().Inset(inset)
}

// CoinBox is the coin's collision rectangle: its bounding square widened
// to 2.5r and shifted by the shared bob offset.
func CoinBox(c Coin, bob float64) core.Box {
	return core.NewBox(c.X-c.R, c.Y-c.R+bob, c.R*2.5, c.R*2.5)
}

// hitsPlayer tests a world-space box against the player hitbox.
func hitsPlayer(hitbox, other core.Box) bool {
	return core.BoxesIntersect(hitbox, other)
}

// circleHitsPlayer tests a circle against the player hitbox.
func circleHitsPlayer(hitbox core.Box, c core.Circle) bool {
	return core.CircleBoxIntersect(c, hitbox)
}
