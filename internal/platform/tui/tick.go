// Package tui runs the T-Rex runner in a terminal through Bubble Tea,
// locally or over SSH. It maps key presses to held input frames, paces the
// simulation and records finished runs in the ledger.
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

// holdTicks converts the key hold window into ticks at the given rate.
func holdTicks(tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int((holdWindow*time.Duration(tickRate) + time.Second - 1) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}
