// Package clock abstracts wall time and one-shot timers so the card engine
// can run against the real event loop or a hand-cranked clock in tests
package clock

import "time"

// Timer is a cancellation handle for a scheduled callback
type Timer interface {
	// Stop prevents the callback from firing, returns false if it already fired or was stopped
	Stop() bool
}

// Clock provides current time and one-shot timers
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Dispatcher hands a fired callback to the goroutine that owns UI state
type Dispatcher func(fn func())

// Real is backed by time.AfterFunc
// Callbacks are routed through the dispatcher so they run on the event loop
type Real struct {
	dispatch Dispatcher
}

// NewReal creates a real clock, nil dispatch runs callbacks on the timer goroutine
func NewReal(dispatch Dispatcher) *Real {
	return &Real{dispatch: dispatch}
}

// Now returns the current time with monotonic clock reading
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f after d
func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	if c.dispatch == nil {
		return time.AfterFunc(d, f)
	}
	dispatch := c.dispatch
	return time.AfterFunc(d, func() { dispatch(f) })
}
