// Package tui provides the Bubble Tea integration for the sandbox.
// It handles the terminal UI loop, input mapping, and scene orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// TickMsg is sent to trigger a simulation tick. Loop identifies the model
// that scheduled it, so a stale tick cannot drive a newer model.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loops atomic.Uint64

// nextLoop returns a fresh tick loop id.
func nextLoop() uint64 {
	return loops.Add(1)
}

// unlimitedInterval paces ticks when the frame limit is off.
const unlimitedInterval = time.Millisecond

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(loop uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}

// frameInterval is the delay before the next tick.
func frameInterval(tickRate int, limited bool) time.Duration {
	if !limited {
		return unlimitedInterval
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}
