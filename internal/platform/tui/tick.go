// Package tui provides the Bubble Tea shell for the game: the board screen,
// the scoreboard and the SSH server that serves both.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NoticeExpiredMsg clears a timed notice. ID ties it to the notice that
// scheduled it, so a stale timer cannot clear a newer notice.
type NoticeExpiredMsg struct {
	ID int
}

// noticeCmd returns a command that expires notice id after d.
func noticeCmd(d time.Duration, id int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return NoticeExpiredMsg{ID: id}
	})
}
