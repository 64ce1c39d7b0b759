// internal/poller/builder.go
package poller

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/ultrasonic-ranger/internal/config"
	"github.com/tamzrod/ultrasonic-ranger/internal/platform/periph"
	"github.com/tamzrod/ultrasonic-ranger/internal/platform/rpio"
	"github.com/tamzrod/ultrasonic-ranger/internal/platform/sim"
	"github.com/tamzrod/ultrasonic-ranger/internal/ranging"
	"github.com/tamzrod/ultrasonic-ranger/internal/timer"
)

// backend is everything the ranging protocol needs from the platform.
type backend struct {
	counter timer.Counter
	trigger ranging.Trigger
	echo    ranging.Echo
	delay   func(time.Duration)
	close   func() error
}

// Build constructs a Poller and wires the platform backend.
// Hardware is opened once here (fail fast at startup).
// The returned closer releases the GPIO lines.
func Build(r cfg.RangerConfig) (*Poller, func() error, error) {
	hw, err := openBackend(r)
	if err != nil {
		return nil, nil, err
	}

	rg, err := ranging.New(hw.counter, hw.trigger, hw.echo, hw.delay)
	if err != nil {
		_ = hw.close()
		return nil, nil, err
	}

	p, err := New(
		Config{
			SensorID: r.Sensor.ID,
			Interval: time.Duration(r.Poll.IntervalMs) * time.Millisecond,
		},
		rg,
	)
	if err != nil {
		_ = hw.close()
		return nil, nil, err
	}

	return p, hw.close, nil
}

func openBackend(r cfg.RangerConfig) (backend, error) {
	switch r.Sensor.Backend {
	case cfg.BackendSim:
		s := sim.New(sim.Config{
			Rise:   r.Sim.RiseTicks,
			Width:  r.Sim.WidthTicks,
			NoEcho: r.Sim.NoEcho,
		})
		return backend{
			counter: s,
			trigger: s,
			echo:    s,
			delay:   s.Delay,
			close:   func() error { return nil },
		}, nil

	case cfg.BackendPeriph:
		s, err := periph.Open(r.Sensor.TriggerPin, r.Sensor.EchoPin)
		if err != nil {
			return backend{}, err
		}
		return backend{
			counter: timer.NewMonotonic(nil),
			trigger: s,
			echo:    s,
			delay:   timer.Spin,
			close:   s.Close,
		}, nil

	case cfg.BackendRpio:
		s, err := rpio.Open(r.Sensor.TriggerPin, r.Sensor.EchoPin)
		if err != nil {
			return backend{}, err
		}
		return backend{
			counter: timer.NewMonotonic(nil),
			trigger: s,
			echo:    s,
			delay:   timer.Spin,
			close:   s.Close,
		}, nil

	default:
		return backend{}, fmt.Errorf("poller: unsupported backend %q", r.Sensor.Backend)
	}
}
