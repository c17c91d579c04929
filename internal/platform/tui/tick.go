// Package tui provides the Bubble Tea integration for gravtiles: the play
// view, the curation prompt, the solutions browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 3 * time.Second

// statusExpiredMsg is sent when a status message times out.
// seq identifies the message it belongs to so a newer one is not cleared.
type statusExpiredMsg struct {
	seq int
}

// expireStatusCmd returns a command that reports the end of status seq.
func expireStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
