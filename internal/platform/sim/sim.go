// internal/platform/sim/sim.go
package sim

import (
	"time"

	"github.com/tamzrod/ultrasonic-ranger/internal/timer"
)

// MinTriggerPulse is the shortest trigger pulse the sensor responds to.
const MinTriggerPulse = 10 * time.Microsecond

// historyLimit bounds the recorded pulses and delays.
const historyLimit = 64

// Config scripts the simulated echo.
type Config struct {
	// Rise is the number of ticks between the trigger falling and the echo
	// rising. Values below 1 are treated as 1.
	Rise uint32

	// Width is the number of ticks the echo stays high.
	Width uint32

	// NoEcho suppresses the echo entirely.
	NoEcho bool
}

// Pulse is one observed trigger pulse, in virtual ticks.
type Pulse struct {
	Start uint64
	End   uint64
}

// Sensor is a deterministic HC-SR04 model on a virtual tick clock.
// Time advances one tick per echo sample and by the rounded-up tick count of
// every delay. Counter reads do not advance time.
//
// Sensor implements timer.Counter, ranging.Trigger and ranging.Echo.
type Sensor struct {
	cfg Config

	now  uint64
	base uint64

	triggerHigh bool
	triggerRose uint64

	armed  bool
	riseAt uint64
	fallAt uint64

	// observation
	Resets   int
	Samples  int
	LastRead uint16
	Pulses   []Pulse
	Delays   []time.Duration
}

// New creates a simulated sensor with the trigger line low.
func New(cfg Config) *Sensor {
	return &Sensor{cfg: cfg}
}

// Configure replaces the echo script for subsequent triggers.
func (s *Sensor) Configure(cfg Config) {
	s.cfg = cfg
}

// Now returns the virtual clock in ticks.
func (s *Sensor) Now() uint64 { return s.now }

// TriggerHigh reports the current trigger line level.
func (s *Sensor) TriggerHigh() bool { return s.triggerHigh }

// ---- timer.Counter ----

func (s *Sensor) Reset() {
	s.base = s.now
	s.Resets++
}

func (s *Sensor) Read() uint16 {
	elapsed := s.now - s.base
	if elapsed > timer.MaxTicks {
		elapsed = timer.MaxTicks
	}
	s.LastRead = uint16(elapsed)
	return s.LastRead
}

// ---- ranging.Trigger ----

func (s *Sensor) High() {
	if s.triggerHigh {
		return
	}
	s.triggerHigh = true
	s.triggerRose = s.now
	s.armed = false
}

func (s *Sensor) Low() {
	if !s.triggerHigh {
		return
	}
	s.triggerHigh = false
	s.Pulses = appendBounded(s.Pulses, Pulse{Start: s.triggerRose, End: s.now})

	width := time.Duration(s.now-s.triggerRose) * timer.TickPeriod
	if s.cfg.NoEcho || width < MinTriggerPulse {
		s.armed = false
		return
	}

	rise := uint64(s.cfg.Rise)
	if rise < 1 {
		rise = 1
	}
	s.armed = true
	s.riseAt = s.now + rise
	s.fallAt = s.riseAt + uint64(s.cfg.Width)
}

// ---- ranging.Echo ----

func (s *Sensor) IsHigh() bool {
	s.now++
	s.Samples++
	return s.armed && s.now >= s.riseAt && s.now < s.fallAt
}

// Delay advances the virtual clock by d, rounded up to whole ticks.
func (s *Sensor) Delay(d time.Duration) {
	s.Delays = appendBounded(s.Delays, d)
	s.now += uint64(timer.Ticks(d))
}

func appendBounded[T any](h []T, v T) []T {
	if len(h) >= historyLimit {
		h = append(h[:0], h[1:]...)
	}
	return append(h, v)
}
