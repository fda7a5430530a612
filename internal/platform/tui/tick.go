// Package tui provides the Bubble Tea front end for 2048: the game view,
// menu, scoreboard and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 2 * time.Second

// clearStatusMsg clears the status line set with the same id.
type clearStatusMsg struct {
	id int
}

// clearStatusCmd returns a command that expires status id after statusTimeout.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
