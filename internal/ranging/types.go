// internal/ranging/types.go
package ranging

import (
	"errors"
	"time"
)

// Protocol constants. They are only valid for timer.TickPeriod (4µs).
const (
	// PulseWidth is the trigger pulse width (sensor minimum is 10µs).
	PulseWidth = 10 * time.Microsecond

	// RiseTimeout is the echo-rise window in ticks (200ms at 4µs).
	RiseTimeout = 50_000

	// TickScale converts ticks into round-trip microseconds.
	TickScale = 4
)

// Trigger is the write-only trigger line.
type Trigger interface {
	High()
	Low()
}

// Echo is the read-only echo line.
type Echo interface {
	IsHigh() bool
}

// Outcome tags how a ranging cycle ended.
type Outcome uint8

const (
	OutcomeOK       Outcome = 0
	OutcomeNoEcho   Outcome = 1
	OutcomeOverlong Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNoEcho:
		return "no_echo"
	case OutcomeOverlong:
		return "overlong_echo"
	default:
		return "unknown"
	}
}

// Result is the tagged result of one cycle.
// Value is exactly what Measure returns for the same cycle.
type Result struct {
	Value   uint16
	Ticks   uint16 // echo-high ticks; 0 on timeout
	Outcome Outcome
}

// Err returns the sentinel error for a failed outcome, or nil.
func (r Result) Err() error {
	switch r.Outcome {
	case OutcomeNoEcho:
		return ErrNoEcho
	case OutcomeOverlong:
		return ErrOverlongEcho
	default:
		return nil
	}
}

// outcomeError carries a stable numeric code for status reporting.
type outcomeError struct {
	code uint16
	msg  string
}

func (e *outcomeError) Error() string { return e.msg }

// Code returns the status code of the failure.
func (e *outcomeError) Code() uint16 { return e.code }

var (
	// ErrNoEcho means the echo line did not rise within RiseTimeout.
	ErrNoEcho error = &outcomeError{code: 2, msg: "ranging: no echo within rise window"}

	// ErrOverlongEcho means the echo pulse saturated the conversion.
	ErrOverlongEcho error = &outcomeError{code: 3, msg: "ranging: echo pulse too long"}
)

// ErrNilCollaborator is returned by New when a line, counter or delay is missing.
var ErrNilCollaborator = errors.New("ranging: counter, trigger, echo and delay are required")
