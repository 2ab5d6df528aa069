// Package tui runs the game in a terminal with Bubble Tea, locally or
// over SSH. It maps keys and mouse to game actions, rasterizes the
// logical surface onto cells and paints them with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the milliseconds between two ticks. The first tick
// and clock jumps fall back to the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) int {
	nominal := 1000 / max(tickRate, 1)
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	dt := int(now.Sub(prev) / time.Millisecond)
	// Long stalls such as a suspended terminal count as 250ms
	if dt > 250 {
		return 250
	}
	return dt
}
