// Package tui runs a game inside a Bubble Tea program.
// It owns the frame clock, key bindings and terminal rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame.
type TickMsg time.Time

// tickCmd returns a command that delivers the next frame after 1/frameRate seconds.
func tickCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, frameRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
