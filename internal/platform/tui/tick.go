// Package tui provides the Bubble Tea front-end for the runner.
// It handles the terminal UI loop, input mapping, and game orchestration,
// locally or over SSH via Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ConstrainedWidth is the terminal width below which a session counts as
// a constrained display and starts at the slower base speed.
const ConstrainedWidth = 60

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
