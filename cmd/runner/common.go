package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// setupLogging points the default logger at --log-file. Full-screen
// front-ends own the terminal, so without a file they log nowhere.
func setupLogging(fullscreen bool) (closeFn func()) {
	closeFn = func() {}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			log.SetOutput(io.Discard)
			return closeFn
		}
		log.SetOutput(f)
		return func() { f.Close() }
	case fullscreen:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return closeFn
}

// requireMode exits with a hint when id is not a registered mode.
func requireMode(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available modes.")
		os.Exit(1)
	}
}

// modeByID maps a registered ID to its runner mode.
func modeByID(id string) runner.Mode {
	if id == runner.ModeShooter.ID {
		return runner.ModeShooter
	}
	return runner.ModeClassic
}

// openStore opens the scores database. Failure is a warning: the game
// still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// terminalRuntime builds the runtime config from the terminal size.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:     width,
		ScreenH:     height,
		TickRate:    flagFPS,
		Seed:        flagSeed,
		Constrained: width < tui.ConstrainedWidth,
	}
}

// applyGameFlags hands --config and --difficulty to the runner before any
// game is created.
func applyGameFlags() {
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v; using the config as loaded\n", err)
		}
	}
}

// newAudio creates the cue player from the loaded config. --mute or a
// disabled config yields a silent player.
func newAudio() *audio.Player {
	cfg, err := runner.LoadConfig()
	if err != nil {
		log.Warn("config load failed, using defaults for audio", "err", err)
		cfg = config.DefaultRunnerConfig()
	}
	ac := cfg.Audio
	if flagMute {
		ac.Enabled = false
	}
	p := audio.NewPlayer(ac)
	_ = p.Init() // Logs and falls back to silence
	return p
}
