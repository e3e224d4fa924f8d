package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
//
// Files are decoded over the embedded defaults, so a partial file only
// overrides the keys it names. An explicit customPath that cannot be read,
// parsed or validated is an error; the implicit locations fall through.
func LoadRunner(customPath string) (RunnerConfig, error) {
	base := embeddedRunner()

	// Try custom path first
	if customPath != "" {
		cfg, err := decodeRunnerFile(customPath, base)
		if err != nil {
			return base, err
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("runner.yaml"), filepath.Join("configs", "runner.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		cfg, err := decodeRunnerFile(path, base)
		if err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// ParseRunner decodes YAML over the embedded defaults and validates it.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := embeddedRunner()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// embeddedRunner returns the embedded default YAML decoded over the
// hard-coded defaults.
func embeddedRunner() RunnerConfig {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

func decodeRunnerFile(path string, base RunnerConfig) (RunnerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := base
	// Slices must not alias the base config's backing arrays.
	cfg.Spawns = base.Spawns.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func (s RunnerSpawns) clone() RunnerSpawns {
	cp := func(r SpawnRule) SpawnRule {
		r.Levels = append([]float64(nil), r.Levels...)
		return r
	}
	return RunnerSpawns{
		Obstacle:  cp(s.Obstacle),
		Platform:  cp(s.Platform),
		Coin:      cp(s.Coin),
		Enemy:     cp(s.Enemy),
		Pickup:    cp(s.Pickup),
		EnemyShot: cp(s.EnemyShot),
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust progression and lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.ScoreFactor = 1500
		cfg.Difficulty.MaxMultiplier = 3
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Difficulty.ScoreFactor = 600
		cfg.Difficulty.MaxMultiplier = 5
		cfg.Player.Lives = 2
	}
	if cfg.Player.MaxLives < cfg.Player.Lives {
		cfg.Player.MaxLives = cfg.Player.Lives
	}
}
