package config

import "math"

// DifficultyManager maps cumulative score to a bounded scroll speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// BaseSpeed returns the speed at score 0. Constrained viewports use the
// reduced base speed when one is configured.
func (d *DifficultyManager) BaseSpeed(constrained bool) float64 {
	if constrained && d.cfg.ConstrainedBaseSpeed > 0 {
		return d.cfg.ConstrainedBaseSpeed
	}
	return d.cfg.BaseSpeed
}

// Multiplier returns min(1 + score/scoreFactor, maxMultiplier).
// Negative scores count as zero; disabled progression always yields 1.
func (d *DifficultyManager) Multiplier(score int) float64 {
	if !d.cfg.Enabled || d.cfg.ScoreFactor <= 0 {
		return 1
	}
	m := 1 + math.Max(0, float64(score))/d.cfg.ScoreFactor
	maxM := math.Max(1, d.cfg.MaxMultiplier)
	return math.Min(m, maxM)
}

// Speed returns baseSpeed scaled by the current multiplier.
func (d *DifficultyManager) Speed(baseSpeed float64, score int) float64 {
	return baseSpeed * d.Multiplier(score)
}
