// Package clock abstracts wall-clock access and callback scheduling so that
// time-driven code can run against a deterministic clock in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
	// AfterFunc schedules f to run after d and returns a handle to cancel it.
	// The real implementation runs f on its own goroutine, like time.AfterFunc.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a single scheduled callback. Stop reports whether the
// callback was prevented from running.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

// System returns a Clock backed by the time package.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return systemTimer{t: time.AfterFunc(d, f)}
}

type systemTimer struct {
	t *time.Timer
}

func (st systemTimer) Stop() bool {
	return st.t.Stop()
}
