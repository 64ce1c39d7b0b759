// internal/platform/rpio/rpio.go
package rpio

import (
	"fmt"
	"strconv"

	"github.com/stianeikeland/go-rpio/v4"
)

// Sensor binds the trigger and echo lines to memory-mapped Raspberry Pi GPIO.
// Pins are BCM numbers.
type Sensor struct {
	trigger rpio.Pin
	echo    rpio.Pin
}

// ParsePin parses a BCM pin number.
func ParsePin(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 53 {
		return 0, fmt.Errorf("rpio: invalid BCM pin %q", s)
	}
	return n, nil
}

// Open maps GPIO memory and configures both pins.
func Open(trigger, echo string) (*Sensor, error) {
	tp, err := ParsePin(trigger)
	if err != nil {
		return nil, err
	}
	ep, err := ParsePin(echo)
	if err != nil {
		return nil, err
	}

	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("rpio: open: %w", err)
	}

	s := &Sensor{
		trigger: rpio.Pin(tp),
		echo:    rpio.Pin(ep),
	}

	s.trigger.Output()
	s.trigger.Low()

	s.echo.Input()
	s.echo.PullDown()

	return s, nil
}

func (s *Sensor) High() { s.trigger.High() }

func (s *Sensor) Low() { s.trigger.Low() }

func (s *Sensor) IsHigh() bool {
	return s.echo.Read() == rpio.High
}

// Close leaves the trigger low and unmaps GPIO memory.
func (s *Sensor) Close() error {
	s.trigger.Low()
	return rpio.Close()
}
