// internal/writer/builder.go
package writer

import (
	"errors"
	"io"
	"time"

	cfg "github.com/tamzrod/ultrasonic-ranger/internal/config"
	"github.com/tamzrod/ultrasonic-ranger/internal/writer/ingest"
	wmodbus "github.com/tamzrod/ultrasonic-ranger/internal/writer/modbus"
	"github.com/tamzrod/ultrasonic-ranger/internal/writer/mqtt"
	"github.com/tamzrod/ultrasonic-ranger/internal/writer/serialport"
)

// Streams are the process streams used when no device is configured.
type Streams struct {
	Display io.Writer
	Debug   io.Writer
}

// Outputs is everything the orchestrator delivers to.
type Outputs struct {
	Data          *MultiWriter
	Status        StatusWriter
	StatusEnabled bool
	Close         func() error
}

// BuildPlan converts the modbus section into a register Plan.
// Assumes config has already passed validation.
func BuildPlan(r cfg.RangerConfig) (Plan, error) {
	if r.Sensor.ID == "" {
		return Plan{}, errors.New("writer: sensor.id required")
	}

	plan := Plan{SensorID: r.Sensor.ID}
	if !r.Modbus.Enabled {
		return plan, nil
	}

	plan.Register = &RegisterPlan{
		UnitID:  r.Modbus.UnitID,
		Address: r.Modbus.Register,
	}
	if r.Modbus.StatusSlot != nil {
		plan.Status = &StatusPlan{
			UnitID:     r.Modbus.UnitID,
			BaseSlot:   *r.Modbus.StatusSlot,
			DeviceName: r.Modbus.DeviceName,
		}
	}
	return plan, nil
}

type registerClient interface {
	endpointClient
	Close() error
}

// BuildEndpointClient creates the register client for the configured mode.
func BuildEndpointClient(m cfg.ModbusConfig) (registerClient, error) {
	timeout := time.Duration(m.TimeoutMs) * time.Millisecond

	switch m.Mode {
	case cfg.ModbusIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: m.Endpoint,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Mode:     m.Mode,
			Endpoint: m.Endpoint,
			BaudRate: m.Baud,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// Build opens every enabled output. On failure, anything already opened
// is closed before returning.
func Build(r cfg.RangerConfig, std Streams) (*Outputs, error) {
	out := &Outputs{Data: Multi()}
	var closers []func() error

	closeAll := func() error {
		var last error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				last = err
			}
		}
		return last
	}
	fail := func(err error) (*Outputs, error) {
		_ = closeAll()
		return nil, err
	}

	// ---- display ----
	if r.Display.Enabled {
		d := NewTextDisplay(std.Display, r.Display.Columns, r.Display.Rows)
		out.Data.Add("display", NewDisplayWriter(d, r.Display.Units))
	}

	// ---- debug stream ----
	if r.Debug.Enabled {
		var w io.Writer = std.Debug
		if r.Debug.Device != "" {
			p, err := serialport.Open(r.Debug.Device, r.Debug.Baud)
			if err != nil {
				return fail(err)
			}
			closers = append(closers, p.Close)
			w = p
		}
		out.Data.Add("debug", NewDebugWriter(w, r.Debug.Units))
	}

	// ---- modbus registers + status ----
	plan, err := BuildPlan(r)
	if err != nil {
		return fail(err)
	}
	if plan.Register != nil {
		cli, err := BuildEndpointClient(r.Modbus)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, cli.Close)

		out.Data.Add("modbus", NewRegisterWriter(*plan.Register, cli))
		out.Status, out.StatusEnabled = NewDeviceStatusWriter(plan, cli)
	}

	// ---- mqtt ----
	if r.MQTT.Enabled {
		c, err := mqtt.Dial(mqtt.Config{
			Broker:   r.MQTT.Broker,
			ClientID: r.MQTT.ClientID,
			Timeout:  time.Duration(r.MQTT.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return fail(err)
		}
		closers = append(closers, c.Close)
		out.Data.Add("mqtt", NewMQTTWriter(c, r.MQTT.Topic, r.MQTT.QoS))
	}

	out.Close = closeAll
	return out, nil
}
