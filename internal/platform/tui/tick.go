// Package tui runs blockfall in the terminal with Bubble Tea. Keys are
// queued as they arrive and handed to the game on the next frame tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time of a frame.
type TickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
