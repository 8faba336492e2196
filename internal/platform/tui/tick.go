// Package tui provides the Bubble Tea frontend. The program's update loop is
// the only goroutine touching the game: key messages queue intents, tick
// messages run one frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame interval.
func tickCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickNow fires the first frame without waiting.
func tickNow() tea.Msg {
	return TickMsg(time.Now())
}
