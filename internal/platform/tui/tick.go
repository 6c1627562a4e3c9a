// Package tui provides the Bubble Tea host for barrage games.
// It runs the tick loop, maps keys and renders the cell grid with Lip Gloss.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID ties the message to the model that scheduled it, so a game left for the
// menu cannot keep ticking the next one.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var tickIDs atomic.Int64

// nextTickID returns a fresh tick loop identifier.
func nextTickID() int64 {
	return tickIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 1
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
