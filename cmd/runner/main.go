// runner is a side-scrolling arcade runner for the terminal, a desktop
// window, or an SSH server.
//
// Usage:
//
//	runner list              - List available modes
//	runner play [mode]       - Play a mode (default: runner)
//	runner menu              - Start menu to pick a mode interactively
//	runner serve             - Start SSH server for remote play
//	runner scores [mode]     - Show high scores for a mode
//	runner sim [mode]        - Run headless bot games
//	runner defaults          - Print the built-in config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/runner.db)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Runner - a side-scrolling arcade runner",
	Long: `Runner is a side-scrolling arcade game: run, jump across platforms,
collect coins and stomp enemies while the world scrolls ever faster.

Available commands:
  list      - Show all game modes
  play      - Play a mode in the terminal (or a window with --window)
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  sim       - Run headless bot games
  defaults  - Print the built-in config

Examples:
  runner play
  runner play runner_shooter --difficulty hard
  runner play --window
  runner serve --ssh :2222
  runner sim --runs 20 --frames 36000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(defaultsCmd)
}
