// Package tui runs games in a terminal with Bubble Tea, locally or over
// SSH. It owns the tick loop, key mapping, menus and run recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(tickRate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
