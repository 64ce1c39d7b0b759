// internal/timer/timer.go
package timer

import (
	"math"
	"time"
)

// Counter configuration. The tick period is fixed at build time and MUST NOT
// be configurable: ranging timeouts and conversions are expressed in ticks.
const (
	// ClockHz is the reference counter input clock.
	ClockHz = 16_000_000

	// Prescale is the fixed counter prescaler.
	Prescale = 64

	// TickPeriod is the real-time duration of one tick (4µs).
	TickPeriod = time.Second * Prescale / ClockHz

	// MaxTicks is the largest representable tick count.
	MaxTicks = math.MaxUint16
)

// Counter is a free-running tick counter.
// Reset sets the count to exactly 0. Read has no side effects and never blocks.
type Counter interface {
	Reset()
	Read() uint16
}

// Ticks converts a duration into whole ticks, rounding up.
// Durations beyond the counter range saturate at MaxTicks.
func Ticks(d time.Duration) uint16 {
	if d <= 0 {
		return 0
	}
	n := (d + TickPeriod - 1) / TickPeriod
	if n > MaxTicks {
		return MaxTicks
	}
	return uint16(n)
}
