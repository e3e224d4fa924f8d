package runner

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Spawner decides when a category spawns and where each entity of a batch
// is placed. One spawner per category; the trigger comes from its rule:
//
//   - interval: fires each time the accumulated elapsed time reaches the
//     interval, then rolls the rule's chance (0 means always).
//   - chance: rolls the chance once per call.
//
// A positive cap limits the live population; Room reports how many more
// entities fit.
type Spawner struct {
	rule     config.SpawnRule
	interval time.Duration
	elapsed  time.Duration
}

// NewSpawner creates a spawner from a rule.
func NewSpawner(rule config.SpawnRule) *Spawner {
	return &Spawner{
		rule:     rule,
		interval: time.Duration(rule.IntervalMs) * time.Millisecond,
	}
}

// Rule returns the spawner's rule.
func (s *Spawner) Rule() config.SpawnRule {
	return s.rule
}

// Reset clears accumulated time.
func (s *Spawner) Reset() {
	s.elapsed = 0
}

// Due advances the spawner by dt and reports whether a batch should spawn
// this frame. At most one batch fires per call.
func (s *Spawner) Due(dt time.Duration, rng *rand.Rand) bool {
	switch s.rule.Trigger {
	case config.TriggerInterval:
		if s.interval <= 0 {
			return false
		}
		s.elapsed += dt
		if s.elapsed < s.interval {
			return false
		}
		s.elapsed %= s.interval
		if s.rule.Chance > 0 {
			return rng.Float64() < s.rule.Chance
		}
		return true
	case config.TriggerChance:
		return s.Roll(rng)
	default:
		return false
	}
}

// Roll makes one probability roll against the rule's chance.
func (s *Spawner) Roll(rng *rand.Rand) bool {
	return s.rule.Chance > 0 && rng.Float64() < s.rule.Chance
}

// Room returns how many of a batch fit given the live population.
func (s *Spawner) Room(live int) int {
	n := s.rule.Batch
	if s.rule.Cap > 0 && live+n > s.rule.Cap {
		n = s.rule.Cap - live
	}
	if n < 0 {
		return 0
	}
	return n
}

// Full reports whether the live population has reached the cap.
func (s *Spawner) Full(live int) bool {
	return s.rule.Cap > 0 && live >= s.rule.Cap
}

// Place returns the position of batch item i. edge is the world-space
// right edge of the visible area; y is measured from viewportH.
func (s *Spawner) Place(i int, edge, viewportH float64, rng *rand.Rand) (x, y float64) {
	x = edge + s.rule.Offset + float64(i)*s.rule.Spacing
	if s.rule.Spread > 0 {
		x += rng.Float64() * s.rule.Spread
	}

	switch len(s.rule.Levels) {
	case 0:
		y = viewportH
	case 1:
		y = viewportH - s.rule.Levels[0]
	default:
		y = viewportH - s.rule.Levels[rng.Intn(len(s.rule.Levels))]
	}
	return x, y
}
