// Package tui provides the Bubble Tea integration for Earthshaker.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDT caps the elapsed time fed to the game after a stall, such as a
// suspended process or a slow SSH link, so bodies never skip tiles.
const maxFrameDT = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock converts tick timestamps into elapsed seconds.
type frameClock struct {
	last     time.Time
	fallback float64 // Used for the first frame
}

func newFrameClock(tickRate int) frameClock {
	if tickRate <= 0 {
		tickRate = 30
	}
	return frameClock{fallback: 1.0 / float64(tickRate)}
}

// dt returns the seconds since the previous call, clamped to [0, maxFrameDT].
func (c *frameClock) dt(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.fallback
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	return min(max(d, 0), maxFrameDT)
}
