// internal/platform/periph/periph.go
package periph

import (
	"fmt"
	"log/slog"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"

	"github.com/tamzrod/ultrasonic-ranger/internal/logging"
)

// Sensor binds the trigger and echo lines to periph GPIO pins.
// Pin names are whatever gpioreg.ByName accepts (e.g. "GPIO9" or "9").
type Sensor struct {
	trigger gpio.PinIO
	echo    gpio.PinIO
	log     *slog.Logger
}

// Open initializes the host drivers and configures both pins.
// The trigger is driven low; the echo is an input with pull-down.
func Open(trigger, echo string) (*Sensor, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph: host init: %w", err)
	}

	s := &Sensor{log: logging.For(logging.ComponentHAL)}

	s.trigger = gpioreg.ByName(trigger)
	if s.trigger == nil {
		return nil, fmt.Errorf("periph: no GPIO trigger pin named %q", trigger)
	}
	s.echo = gpioreg.ByName(echo)
	if s.echo == nil {
		return nil, fmt.Errorf("periph: no GPIO echo pin named %q", echo)
	}

	if err := s.trigger.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("periph: trigger %s: %w", trigger, err)
	}
	if err := s.echo.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("periph: echo %s: %w", echo, err)
	}

	return s, nil
}

// High drives the trigger line high.
func (s *Sensor) High() { s.out(gpio.High) }

// Low drives the trigger line low.
func (s *Sensor) Low() { s.out(gpio.Low) }

// IsHigh samples the echo line.
func (s *Sensor) IsHigh() bool {
	return s.echo.Read() == gpio.High
}

// Close leaves the trigger low.
func (s *Sensor) Close() error {
	return s.trigger.Out(gpio.Low)
}

// The ranging protocol has no error path for line writes, so a failed write
// is logged and the cycle continues; a missed trigger surfaces as no echo.
func (s *Sensor) out(l gpio.Level) {
	if err := s.trigger.Out(l); err != nil {
		s.log.Warn("trigger write failed", "pin", s.trigger.Name(), "level", l.String(), "err", err)
	}
}
