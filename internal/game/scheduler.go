package game

import "time"

// Scheduler runs fn once after d. Callbacks must be delivered on the
// same loop that calls the controller; they are never cancelled.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func(d time.Duration, fn func())

func (f SchedulerFunc) After(d time.Duration, fn func()) {
	f(d, fn)
}
