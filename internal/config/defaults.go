package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Viewport: ViewportConfig{Width: 1280, Height: 720},
		Physics: RunnerPhysics{
			Gravity:         0.5,
			JumpImpulse:     -12,
			StompBounce:     -10,
			EnemyHopChance:  0.02,
			EnemyHopImpulse: -15,
		},
		Player: RunnerPlayer{
			StartX:   50,
			Width:    95,
			Height:   120,
			Speed:    10,
			MaxJumps: 3,
			Lives:    3,
			MaxLives: 10,
		},
		Floor: RunnerFloor{
			SegmentWidth: 1000,
			Height:       50,
			Coverage:     10,
		},
		Combat: RunnerCombat{
			HitboxInset:          10,
			InvincibleFrames:     120,
			CoinInvincibleFrames: 180,
			CoinScore:            10,
			CoinMilestone:        100,
			StompScore:           20,
			ShotScore:            25,
		},
		Camera: RunnerCamera{Follow: true},
		Coins:  RunnerCoins{BobRange: 20, BobStep: 0.5},
		Shooter: RunnerShooter{
			Radius:   6,
			Speed:    12,
			Cooldown: 15,
			Cap:      6,
		},
		Spawns: RunnerSpawns{
			Obstacle: SpawnRule{
				Trigger: TriggerInterval, IntervalMs: 4000, Chance: 0.8,
				Batch: 1, Cap: 6, Spread: 1000,
				Levels: []float64{120}, Width: 110, Height: 140,
			},
			Platform: SpawnRule{
				Trigger: TriggerInterval, IntervalMs: 5000,
				Batch: 1, Cap: 8, Spread: 1000,
				Levels: []float64{220, 460}, Width: 100, Height: 35,
			},
			Coin: SpawnRule{
				Trigger: TriggerInterval, IntervalMs: 3000,
				Batch: 4, Cap: 16, Offset: 300, Spacing: 800,
				Levels: []float64{200, 460}, Radius: 20,
			},
			Enemy: SpawnRule{
				Trigger: TriggerInterval, IntervalMs: 7000,
				Batch: 5, Cap: 10, Offset: 1000, Spacing: 750,
				Levels: []float64{150}, Width: 100, Height: 100,
			},
			Pickup: SpawnRule{
				Trigger: TriggerChance, Chance: 0.001,
				Batch: 1, Cap: 2, Spread: 600,
				Levels: []float64{260, 500}, Radius: 16,
			},
			EnemyShot: SpawnRule{
				Trigger: TriggerChance, Chance: 0.005,
				Batch: 1, Cap: 20, Radius: 5, Speed: -3,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:              true,
			BaseSpeed:            4,
			ConstrainedBaseSpeed: 3,
			ScoreFactor:          1000,
			MaxMultiplier:        4,
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "runner", "runner_shooter":
		return defaultRunnerYAML
	default:
		return nil
	}
}
