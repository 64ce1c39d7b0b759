// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/ultrasonic-ranger/internal/ranging"
)

// PollResult is a snapshot produced by one ranging cycle.
type PollResult struct {
	SensorID string
	Seq      uint64
	At       time.Time

	// Distance is exactly what ranging.Measure returns: ticks × 4,
	// with 0 for any failed cycle.
	Distance uint16
	Ticks    uint16
	Outcome  ranging.Outcome

	Err error // non-nil means the cycle produced no usable echo
}
