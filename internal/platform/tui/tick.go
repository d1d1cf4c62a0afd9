// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and frame orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. It carries the wall-clock time so the
// model can derive a real dt instead of assuming a perfect interval.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
