// Package tui provides the Bubble Tea host for the breaker.
// It owns the terminal loop, maps keys and mouse events to input frames,
// and paints the game canvas with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// idleRate is the tick rate while the game is not running.
const idleRate = 10

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the model that scheduled it, so a tick left over
// from a previous game is dropped instead of doubling the loop.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickInterval returns the delay until the next tick.
func tickInterval(fps int, running bool) time.Duration {
	if !running || fps <= 0 {
		return time.Second / idleRate
	}
	return time.Second / time.Duration(fps)
}

// tickCmd returns a Bubble Tea command that sends one tick message.
// Exactly one tick is ever pending; handlers schedule the next.
func tickCmd(fps int, running bool, gen uint64) tea.Cmd {
	return tea.Tick(tickInterval(fps, running), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
