package domain

import (
	"sync"
	"time"
)

// Clock supplies the current instant for aggregate timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// monotonicClock never hands out the same instant twice.
type monotonicClock struct {
	mu     sync.Mutex
	source Clock
	last   time.Time
}

// NewMonotonicClock wraps source so that readings are UTC, truncated to
// microseconds and strictly increasing.
func NewMonotonicClock(source Clock) Clock {
	return &monotonicClock{source: source}
}

func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.source.Now().UTC().Truncate(time.Microsecond)
	if !now.After(c.last) {
		now = c.last.Add(time.Microsecond)
	}
	c.last = now
	return now
}

var (
	clockMu sync.RWMutex
	clock   = NewMonotonicClock(ClockFunc(time.Now))
)

// Now returns the current instant from the process clock.
func Now() time.Time {
	clockMu.RLock()
	defer clockMu.RUnlock()
	return clock.Now()
}

// Touch returns a timestamp strictly later than prev.
func Touch(prev time.Time) time.Time {
	now := Now()
	if floor := prev.Add(time.Microsecond); now.Before(floor) {
		return floor
	}
	return now
}

// SetClock replaces the process clock and returns a function restoring the previous one.
func SetClock(c Clock) (restore func()) {
	clockMu.Lock()
	defer clockMu.Unlock()

	previous := clock
	clock = NewMonotonicClock(c)
	return func() {
		clockMu.Lock()
		defer clockMu.Unlock()
		clock = previous
	}
}
