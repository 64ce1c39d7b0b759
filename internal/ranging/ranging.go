// internal/ranging/ranging.go
package ranging

import (
	"math"
	"sync"
	"time"

	"github.com/tamzrod/ultrasonic-ranger/internal/timer"
)

// Ranger drives one trigger/echo channel against a free-running counter.
// It owns the counter and both lines for the full duration of a cycle.
type Ranger struct {
	mu      sync.Mutex
	counter timer.Counter
	trigger Trigger
	echo    Echo
	delay   func(time.Duration)
}

// New creates a Ranger. delay must busy-wait for microsecond durations.
func New(counter timer.Counter, trigger Trigger, echo Echo, delay func(time.Duration)) (*Ranger, error) {
	if counter == nil || trigger == nil || echo == nil || delay == nil {
		return nil, ErrNilCollaborator
	}
	return &Ranger{
		counter: counter,
		trigger: trigger,
		echo:    echo,
		delay:   delay,
	}, nil
}

// Measure runs one ranging cycle and returns ticks × TickScale.
// 0 means no echo, an overlong echo, or a genuine zero.
// Blocks until the echo falls; that wait is not bounded.
func (r *Ranger) Measure() uint16 {
	return r.Sample().Value
}

// Sample runs one ranging cycle and reports how it ended.
func (r *Ranger) Sample() Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	// arm
	r.counter.Reset()

	// trigger
	r.trigger.High()
	r.delay(PulseWidth)
	r.trigger.Low()

	// rise wait (bounded)
	for !r.echo.IsHigh() {
		if r.counter.Read() >= RiseTimeout {
			return Result{Outcome: OutcomeNoEcho}
		}
	}

	// fall wait (unbounded); phase 3 time is discarded
	r.counter.Reset()
	for r.echo.IsHigh() {
	}
	ticks := r.counter.Read()

	v := saturatingMul(ticks, TickScale)
	if v == math.MaxUint16 {
		return Result{Ticks: ticks, Outcome: OutcomeOverlong}
	}
	return Result{Value: v, Ticks: ticks, Outcome: OutcomeOK}
}

func saturatingMul(a, b uint16) uint16 {
	p := uint32(a) * uint32(b)
	if p > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(p)
}

// ToCentimeters converts a round-trip value in microseconds to centimeters
// using the datasheet divisor.
func ToCentimeters(v uint16) uint16 {
	return v / 58
}
