// Package tui provides the Bubble Tea front end: the scenario viewer, the
// scenario picker, the capture browser and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTickInterval is used when no interval is configured.
const DefaultTickInterval = time.Second / 60

// TickMsg is sent to advance playback by one frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
