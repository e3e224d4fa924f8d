package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	emb := embeddedRunner()
	def := DefaultRunnerConfig()

	if emb.Viewport != def.Viewport {
		t.Errorf("viewport: embedded %+v, hardcoded %+v", emb.Viewport, def.Viewport)
	}
	if emb.Player != def.Player {
		t.Errorf("player: embedded %+v, hardcoded %+v", emb.Player, def.Player)
	}
	if emb.Combat != def.Combat {
		t.Errorf("combat: embedded %+v, hardcoded %+v", emb.Combat, def.Combat)
	}
	if emb.Difficulty != def.Difficulty {
		t.Errorf("difficulty: embedded %+v, hardcoded %+v", emb.Difficulty, def.Difficulty)
	}
	if emb.Spawns.Coin.IntervalMs != def.Spawns.Coin.IntervalMs || len(emb.Spawns.Coin.Levels) != 2 {
		t.Errorf("coin spawn rule mismatch: %+v", emb.Spawns.Coin)
	}
	if err := emb.Validate(); err != nil {
		t.Errorf("embedded config should validate, got %v", err)
	}
}

func TestLoadRunnerCustomPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("player:\n  lives: 7\ncamera:\n  follow: false\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Camera.Follow {
		t.Error("camera.follow should be overridden to false")
	}
	// Untouched keys keep their defaults
	if cfg.Player.MaxJumps != 3 {
		t.Errorf("MaxJumps = %d, expected default 3", cfg.Player.MaxJumps)
	}
	if cfg.Spawns.Enemy.Batch != 5 {
		t.Errorf("enemy batch = %d, expected default 5", cfg.Spawns.Enemy.Batch)
	}
}

func TestLoadRunnerMissingCustomPath(t *testing.T) {
	_, err := LoadRunner(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestLoadRunnerRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player:\n  max_jumps: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRunner(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseRunnerSyntaxError(t *testing.T) {
	if _, err := ParseRunner([]byte("player: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateSpawnRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"unknown trigger", func(c *RunnerConfig) { c.Spawns.Coin.Trigger = "sometimes" }},
		{"zero interval", func(c *RunnerConfig) { c.Spawns.Platform.IntervalMs = 0 }},
		{"chance above one", func(c *RunnerConfig) { c.Spawns.Pickup.Chance = 1.5 }},
		{"no levels", func(c *RunnerConfig) { c.Spawns.Obstacle.Levels = nil }},
		{"zero batch", func(c *RunnerConfig) { c.Spawns.Enemy.Batch = 0 }},
		{"negative cap", func(c *RunnerConfig) { c.Spawns.Coin.Cap = -1 }},
		{"no size", func(c *RunnerConfig) { c.Spawns.Platform.Width = 0 }},
		{"floor too tall", func(c *RunnerConfig) { c.Floor.Height = 720 }},
		{"lives above cap", func(c *RunnerConfig) { c.Player.Lives = 11 }},
		{"zero score factor", func(c *RunnerConfig) { c.Difficulty.ScoreFactor = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestEnemyShotNeedsNoLevels(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Spawns.EnemyShot.Levels = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("enemy shots are placed at the enemy, got %v", err)
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		lives   int
		factor  float64
	}{
		{DifficultyEasy, true, 5, 1500},
		{DifficultyNormal, true, 3, 1000},
		{DifficultyHard, true, 2, 600},
		{DifficultyFixed, false, 3, 1000},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyRunnerPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.enabled)
			}
			if cfg.Player.Lives != tt.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tt.lives)
			}
			if cfg.Difficulty.ScoreFactor != tt.factor {
				t.Errorf("ScoreFactor = %v, expected %v", cfg.Difficulty.ScoreFactor, tt.factor)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config should validate: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for unknown preset, got %v", err)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("runner")) == 0 {
		t.Error("runner should have embedded YAML")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no YAML")
	}
}
