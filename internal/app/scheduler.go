package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerFiredMsg carries a scheduled callback back onto the event loop.
type timerFiredMsg struct {
	fn func()
}

// teaScheduler turns game timers into tea.Tick commands. The controller
// schedules during Update; the model drains the pending ticks into the
// command it returns, and runs each callback when its message arrives.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) After(d time.Duration, fn func()) {
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{fn: fn}
	}))
}

// Drain returns the scheduled ticks as one command, or nil.
func (s *teaScheduler) Drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
