package components

import "time"

// Timer is the part of time.Timer the loading machine relies on.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates timers. Tests substitute a manual clock to control when a
// delayed loading state elapses.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type realClock struct{}

type realTimer struct {
	t *time.Timer
}

func (realClock) NewTimer(d time.Duration) Timer {
	return realTimer{t: time.NewTimer(d)}
}

func (r realTimer) C() <-chan time.Time { return r.t.C }
func (r realTimer) Stop() bool          { return r.t.Stop() }

// SystemClock is the wall clock.
var SystemClock Clock = realClock{}
