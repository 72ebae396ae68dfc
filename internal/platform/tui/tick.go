// Package tui provides the Bubble Tea front end for catchit: the game loop,
// mouse and key mapping, menu, scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/catchit/internal/core"
)

// maxFrameDT caps the simulated length of one tick, in seconds. A terminal
// that stalls for a while resumes with a normal frame.
const maxFrameDT = 0.1

// TickMsg carries the wall time of a simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick at the configured rate.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	interval := time.Duration(cfg.TickSeconds() * float64(time.Second))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds to simulate for a tick at now. The first tick
// uses the nominal interval; later ones use wall time, capped at maxFrameDT.
// A clock that steps backwards yields zero.
func frameDT(cfg core.RuntimeConfig, last, now time.Time) float64 {
	if last.IsZero() {
		return cfg.TickSeconds()
	}
	return min(max(now.Sub(last).Seconds(), 0), maxFrameDT)
}
