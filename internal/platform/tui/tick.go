// Package tui runs the campaign in a terminal: it maps keys to actions,
// drives levels from a single tick source, applies level completion to
// the progression store and draws every screen through Bubble Tea.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step of the attempt it was scheduled for.
type TickMsg struct {
	Attempt uint64
	Time    time.Time
}

var attempts atomic.Uint64

// nextAttempt returns a fresh id so ticks of an abandoned attempt are
// recognized and dropped.
func nextAttempt() uint64 {
	return attempts.Add(1)
}

// tickCmd schedules the next tick. A model that stops rescheduling stops
// every timer of its attempt at once.
func tickCmd(attempt uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Attempt: attempt, Time: t}
	})
}
