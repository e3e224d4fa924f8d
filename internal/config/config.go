// Package config provides YAML-based game configuration loading and
// difficulty management for the runner.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RunnerConfig contains all configuration for the runner game.
// Distances are in base viewport units, durations in frames unless the
// field name says otherwise.
type RunnerConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Floor      RunnerFloor      `yaml:"floor"`
	Combat     RunnerCombat     `yaml:"combat"`
	Camera     RunnerCamera     `yaml:"camera"`
	Coins      RunnerCoins      `yaml:"coins"`
	Shooter    RunnerShooter    `yaml:"shooter"`
	Spawns     RunnerSpawns     `yaml:"spawns"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// ViewportConfig defines the base coordinate space of the simulation.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerPhysics defines physics parameters for the runner.
type RunnerPhysics struct {
	Gravity         float64 `yaml:"gravity"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	StompBounce     float64 `yaml:"stomp_bounce"`
	EnemyHopChance  float64 `yaml:"enemy_hop_chance"`
	EnemyHopImpulse float64 `yaml:"enemy_hop_impulse"`
}

// RunnerPlayer defines player parameters for the runner.
type RunnerPlayer struct {
	StartX   float64 `yaml:"start_x"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	MaxJumps int     `yaml:"max_jumps"`
	Lives    int     `yaml:"lives"`
	MaxLives int     `yaml:"max_lives"`
}

// RunnerFloor defines the recycled ground strip.
type RunnerFloor struct {
	SegmentWidth float64 `yaml:"segment_width"`
	Height       float64 `yaml:"height"`
	Coverage     float64 `yaml:"coverage"` // Multiple of the viewport width covered at reset
}

// RunnerCombat defines scoring and damage parameters.
type RunnerCombat struct {
	HitboxInset          float64 `yaml:"hitbox_inset"`
	InvincibleFrames     int     `yaml:"invincible_frames"`
	CoinInvincibleFrames int     `yaml:"coin_invincible_frames"`
	CoinScore            int     `yaml:"coin_score"`
	CoinMilestone        int     `yaml:"coin_milestone"`
	StompScore           int     `yaml:"stomp_score"`
	ShotScore            int     `yaml:"shot_score"`
}

// RunnerCamera defines camera behaviour.
type RunnerCamera struct {
	Follow bool `yaml:"follow"` // When false the right edge clamps the player
}

// RunnerCoins defines the coin bob animation.
type RunnerCoins struct {
	BobRange float64 `yaml:"bob_range"`
	BobStep  float64 `yaml:"bob_step"`
}

// RunnerShooter defines player projectiles in shooter mode.
type RunnerShooter struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"`
	Cap      int     `yaml:"cap"`
}

// RunnerSpawns holds one spawn rule per entity category.
type RunnerSpawns struct {
	Obstacle  SpawnRule `yaml:"obstacle"`
	Platform  SpawnRule `yaml:"platform"`
	Coin      SpawnRule `yaml:"coin"`
	Enemy     SpawnRule `yaml:"enemy"`
	Pickup    SpawnRule `yaml:"pickup"`
	EnemyShot SpawnRule `yaml:"enemy_shot"`
}

// Spawn trigger kinds.
const (
	TriggerInterval = "interval" // Wall-clock interval, optional chance on each elapse
	TriggerChance   = "chance"   // Per-frame probability roll
)

// SpawnRule describes when and where a category spawns.
//
// Placement: x = visible right edge + offset + i*spacing + rand*spread,
// y = viewport height - one of levels (picked at random per entity).
type SpawnRule struct {
	Trigger    string    `yaml:"trigger"`
	IntervalMs int       `yaml:"interval_ms"`
	Chance     float64   `yaml:"chance"`
	Batch      int       `yaml:"batch"`
	Cap        int       `yaml:"cap"`
	Offset     float64   `yaml:"offset"`
	Spacing    float64   `yaml:"spacing"`
	Spread     float64   `yaml:"spread"`
	Levels     []float64 `yaml:"levels"`
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Radius     float64   `yaml:"radius"`
	Speed      float64   `yaml:"speed"`
}

// AudioConfig defines the synthesized audio cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // Linear gain, 0..1
}

// DifficultyConfig defines the score-driven scroll speed scaling.
// multiplier = min(1 + score/score_factor, max_multiplier).
type DifficultyConfig struct {
	Enabled              bool    `yaml:"enabled"`
	BaseSpeed            float64 `yaml:"base_speed"`
	ConstrainedBaseSpeed float64 `yaml:"constrained_base_speed"`
	ScoreFactor          float64 `yaml:"score_factor"`
	MaxMultiplier        float64 `yaml:"max_multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the config for values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %vx%v", ErrInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	}
	if c.Player.MaxJumps < 1 {
		return fmt.Errorf("%w: player.max_jumps must be at least 1", ErrInvalidConfig)
	}
	if c.Player.Lives < 1 || c.Player.MaxLives < c.Player.Lives {
		return fmt.Errorf("%w: player lives %d must be in [1, max_lives=%d]", ErrInvalidConfig, c.Player.Lives, c.Player.MaxLives)
	}
	if c.Floor.SegmentWidth <= 0 || c.Floor.Height <= 0 || c.Floor.Height >= c.Viewport.Height {
		return fmt.Errorf("%w: floor segment must be positive and below viewport height", ErrInvalidConfig)
	}
	if c.Floor.Coverage < 1 {
		return fmt.Errorf("%w: floor.coverage must be at least 1", ErrInvalidConfig)
	}
	if c.Combat.HitboxInset < 0 {
		return fmt.Errorf("%w: combat.hitbox_inset must not be negative", ErrInvalidConfig)
	}
	if c.Combat.CoinMilestone <= 0 {
		return fmt.Errorf("%w: combat.coin_milestone must be positive", ErrInvalidConfig)
	}
	if c.Shooter.Cap < 0 || c.Shooter.Cooldown < 0 {
		return fmt.Errorf("%w: shooter cap and cooldown must not be negative", ErrInvalidConfig)
	}
	if c.Difficulty.BaseSpeed <= 0 || c.Difficulty.ScoreFactor <= 0 || c.Difficulty.MaxMultiplier < 1 {
		return fmt.Errorf("%w: difficulty needs base_speed>0, score_factor>0, max_multiplier>=1", ErrInvalidConfig)
	}

	rules := map[string]SpawnRule{
		"obstacle":   c.Spawns.Obstacle,
		"platform":   c.Spawns.Platform,
		"coin":       c.Spawns.Coin,
		"enemy":      c.Spawns.Enemy,
		"pickup":     c.Spawns.Pickup,
		"enemy_shot": c.Spawns.EnemyShot,
	}
	for name, r := range rules {
		// Enemy shots are placed at the firing enemy, not on a level.
		if err := r.validate(name != "enemy_shot"); err != nil {
			return fmt.Errorf("spawns.%s: %w", name, err)
		}
	}
	return nil
}

func (r SpawnRule) validate(needsLevels bool) error {
	switch r.Trigger {
	case TriggerInterval:
		if r.IntervalMs <= 0 {
			return fmt.Errorf("%w: interval_ms must be positive", ErrInvalidConfig)
		}
	case TriggerChance:
	default:
		return fmt.Errorf("%w: unknown trigger %q", ErrInvalidConfig, r.Trigger)
	}
	if r.Chance < 0 || r.Chance > 1 {
		return fmt.Errorf("%w: chance %v out of [0, 1]", ErrInvalidConfig, r.Chance)
	}
	if r.Batch < 1 {
		return fmt.Errorf("%w: batch must be at least 1", ErrInvalidConfig)
	}
	if r.Cap < 0 {
		return fmt.Errorf("%w: cap must not be negative", ErrInvalidConfig)
	}
	if needsLevels && len(r.Levels) == 0 {
		return fmt.Errorf("%w: at least one level is required", ErrInvalidConfig)
	}
	if r.Radius <= 0 && (r.Width <= 0 || r.Height <= 0) {
		return fmt.Errorf("%w: either radius or width/height must be positive", ErrInvalidConfig)
	}
	return nil
}
