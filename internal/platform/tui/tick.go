// Package tui provides the Bubble Tea integration for the arena: the
// terminal frame loop, input mapping, the variant picker and the round
// history view.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg is sent once per frame with the wall-clock time of the frame.
type TickMsg time.Time

// frameInterval returns the time between frames for a tick rate.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next frame.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
