package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/games/runner"
	"github.com/vovakirdan/tui-runner/internal/platform/desktop"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWindow     bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a runner mode",
	Long: `Start playing a runner mode in the terminal, or in a desktop window
with --window.

Controls:
  A/D or Left/Right  - Run
  Space/W/Up         - Jump
  S/Down             - Drop through a platform
  F/J/X              - Shoot (runner_shooter)
  P                  - Pause
  R                  - Restart after game over
  Q                  - Quit

Examples:
  runner play
  runner play runner_shooter
  runner play --fps 30 --seed 42
  runner play --config ./my-runner.yaml
  runner play --difficulty hard
  runner play --window --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config file (YAML)")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := runner.ModeClassic.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	requireMode(gameID)

	defer setupLogging(true)()
	applyGameFlags()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := newAudio()
	defer player.Close()

	cfg := terminalRuntime()

	if flagWindow {
		game := runner.New(modeByID(gameID))
		if err := desktop.Run(game, store, player, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(game, store, player, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
