// internal/timer/monotonic.go
package timer

import "time"

// MonotonicCounter emulates the hardware counter on hosts where no timer
// register is reachable. It advances at TickPeriod from the injected clock and
// saturates at MaxTicks instead of wrapping.
type MonotonicCounter struct {
	now   func() time.Time
	start time.Time
}

// NewMonotonic creates a counter driven by now. A nil now uses time.Now.
// The counter starts at zero.
func NewMonotonic(now func() time.Time) *MonotonicCounter {
	if now == nil {
		now = time.Now
	}
	return &MonotonicCounter{now: now, start: now()}
}

// Reset restarts the count at 0.
func (c *MonotonicCounter) Reset() {
	c.start = c.now()
}

// Read returns the ticks elapsed since the last Reset.
func (c *MonotonicCounter) Read() uint16 {
	elapsed := c.now().Sub(c.start)
	if elapsed <= 0 {
		return 0
	}
	n := elapsed / TickPeriod
	if n > MaxTicks {
		return MaxTicks
	}
	return uint16(n)
}

// Spin busy-waits for d on the monotonic clock.
// It never yields; it is meant for microsecond pulses only.
func Spin(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}
