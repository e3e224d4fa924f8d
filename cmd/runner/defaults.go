package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/games/runner"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in config",
	Long: `Print the embedded default YAML config. Save it to
~/.arcade/configs/runner.yaml and edit to customize the game.

Example:
  runner defaults > ~/.arcade/configs/runner.yaml`,
	Run: runDefaults,
}

func runDefaults(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML(runner.ModeClassic.ID)
	if data == nil {
		fmt.Fprintln(os.Stderr, "No default config embedded.")
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
