package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestCollisionSymmetry(t *testing.T) {
	rng := testRNG()
	box := func() core.Box {
		return core.NewBox(rng.Float64()*200-100, rng.Float64()*200-100, rng.Float64()*80, rng.Float64()*80)
	}
	for i := 0; i < 2000; i++ {
		a, b := box(), box()
		assert.Equal(t, core.BoxesIntersect(a, b), core.BoxesIntersect(b, a), "a=%+v b=%+v", a, b)
	}
}

func TestHitboxInsetBorder(t *testing.T) {
	p := Player{X: 0, Y: 0, W: 100, H: 100}
	hb := PlayerHitbox(p, 10)
	assert.Equal(t, core.NewBox(10, 10, 80, 80), hb)

	tests := []struct {
		name    string
		overlap float64
		hit     bool
	}{
		{"9 unit border", 9, false},
		{"10 unit border touches", 10, false},
		{"11 unit overlap", 11, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Right side
			right := core.NewBox(p.W-tt.overlap, 0, 50, p.H)
			assert.Equal(t, tt.hit, hitsPlayer(hb, right), "right side")
			// Top side
			top := core.NewBox(0, -50+tt.overlap, p.W, 50)
			assert.Equal(t, tt.hit, hitsPlayer(hb, top), "top side")
			// The full rectangles always overlap, so only the inset decides.
			assert.True(t, core.BoxesIntersect(p.Box(), right))
		})
	}
}

func TestHitboxInsetOnlyPlayerSide(t *testing.T) {
	p := Player{X: 0, Y: 0, W: 100, H: 100}
	hb := PlayerHitbox(p, 10)

	// A thin obstacle 1 unit inside the hitbox edge must collide. Insetting
	// the obstacle as well would shrink it to nothing.
	thin := core.NewBox(89, 20, 2, 20)
	assert.True(t, hitsPlayer(hb, thin))
}

func TestHitboxLargeInsetCollapses(t *testing.T) {
	p := Player{X: 0, Y: 0, W: 10, H: 10}
	hb := PlayerHitbox(p, 20)
	assert.Zero(t, hb.W)
	assert.Zero(t, hb.H)
}

func TestCoinBoxFollowsBob(t *testing.T) {
	c := Coin{X: 100, Y: 200, R: 20}

	assert.Equal(t, core.NewBox(80, 180, 50, 50), CoinBox(c, 0))
	assert.Equal(t, core.NewBox(80, 195, 50, 50), CoinBox(c, 15))
}

func TestCircleHitsPlayer(t *testing.T) {
	p := Player{X: 0, Y: 0, W: 100, H: 100}
	hb := PlayerHitbox(p, 10)

	// Touches the full rectangle but not the hitbox.
	assert.False(t, circleHitsPlayer(hb, core.Circle{X: 104, Y: 50, R: 5}))
	assert.True(t, circleHitsPlayer(hb, core.Circle{X: 93, Y: 50, R: 5}))
}
