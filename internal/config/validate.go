// internal/config/validate.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Register geometry shared with the writer. Kept here so validation can
// reason about overlaps without importing the writer.
const (
	ReadingRegisters = 4  // value, ticks, outcome, sequence
	StatusRegisters  = 20 // one device status block
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	r := cfg.Ranger

	// ------------------------------------------------------------
	// SENSOR
	// ------------------------------------------------------------

	switch r.Sensor.Backend {
	case BackendSim:
	case BackendPeriph, BackendRpio:
		if r.Sensor.TriggerPin == "" || r.Sensor.EchoPin == "" {
			return fmt.Errorf(
				"sensor %q: backend %s requires trigger_pin and echo_pin",
				r.Sensor.ID,
				r.Sensor.Backend,
			)
		}
		if r.Sensor.TriggerPin == r.Sensor.EchoPin {
			return fmt.Errorf(
				"sensor %q: trigger_pin and echo_pin must differ (both %s)",
				r.Sensor.ID,
				r.Sensor.TriggerPin,
			)
		}
		if r.Sensor.Backend == BackendRpio {
			for _, pin := range []string{r.Sensor.TriggerPin, r.Sensor.EchoPin} {
				if _, err := strconv.Atoi(pin); err != nil {
					return fmt.Errorf("sensor %q: rpio pins must be BCM numbers, got %q", r.Sensor.ID, pin)
				}
			}
		}
	case "":
		return fmt.Errorf("sensor %q: backend is required (periph, rpio or sim)", r.Sensor.ID)
	default:
		return fmt.Errorf("sensor %q: unknown backend %q", r.Sensor.ID, r.Sensor.Backend)
	}

	if r.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0, got %d", r.Poll.IntervalMs)
	}

	// ------------------------------------------------------------
	// DISPLAY / DEBUG
	// ------------------------------------------------------------

	if err := validateUnits("display", r.Display.Units); err != nil {
		return err
	}
	if r.Display.Columns < 0 || r.Display.Rows < 0 {
		return fmt.Errorf("display: columns and rows must be >= 0")
	}
	// widest rendering is "65535 mm"
	if r.Display.Columns != 0 && r.Display.Columns < 8 {
		return fmt.Errorf("display: columns must be >= 8, got %d", r.Display.Columns)
	}

	if err := validateUnits("debug", r.Debug.Units); err != nil {
		return err
	}
	if r.Debug.Baud < 0 {
		return fmt.Errorf("debug: baud must be >= 0, got %d", r.Debug.Baud)
	}

	// ------------------------------------------------------------
	// MODBUS (READING REGISTERS + DEVICE STATUS BLOCK)
	// ------------------------------------------------------------

	m := r.Modbus

	if m.DeviceName != "" {
		for i := 0; i < len(m.DeviceName); i++ {
			if m.DeviceName[i] > 0x7F {
				return fmt.Errorf("modbus: device_name must contain ASCII characters only")
			}
		}
	}

	if m.StatusSlot != nil && !m.Enabled {
		return fmt.Errorf("modbus: status_slot is set but modbus output is disabled")
	}

	if m.Enabled {
		switch m.Mode {
		case "", ModbusTCP, ModbusRTU, ModbusIngest:
		default:
			return fmt.Errorf("modbus: unknown mode %q", m.Mode)
		}
		if m.Endpoint == "" {
			return fmt.Errorf("modbus: endpoint is required")
		}
		if m.TimeoutMs < 0 || m.Baud < 0 {
			return fmt.Errorf("modbus: timeout_ms and baud must be >= 0")
		}

		start := uint32(m.Register)
		end := start + ReadingRegisters - 1
		if end > 0xFFFF {
			return fmt.Errorf("modbus: register block %d-%d exceeds address space", start, end)
		}

		if m.StatusSlot != nil {
			sStart := uint32(*m.StatusSlot) * StatusRegisters
			sEnd := sStart + StatusRegisters - 1
			if sEnd > 0xFFFF {
				return fmt.Errorf("modbus: status_slot %d exceeds address space", *m.StatusSlot)
			}
			// overlap check (inclusive)
			if !(end < sStart || start > sEnd) {
				return fmt.Errorf(
					"modbus: register overlap: reading=%d-%d status_slot=%d range=%d-%d",
					start,
					end,
					*m.StatusSlot,
					sStart,
					sEnd,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// MQTT
	// ------------------------------------------------------------

	if r.MQTT.Enabled {
		if r.MQTT.Broker == "" {
			return fmt.Errorf("mqtt: broker is required")
		}
		if r.MQTT.Topic == "" || strings.ContainsAny(r.MQTT.Topic, "+#") {
			return fmt.Errorf("mqtt: topic must be set and must not contain wildcards")
		}
		if r.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt: qos must be 0, 1 or 2, got %d", r.MQTT.QoS)
		}
		if r.MQTT.TimeoutMs < 0 {
			return fmt.Errorf("mqtt: timeout_ms must be >= 0")
		}
	}

	// ------------------------------------------------------------
	// LOG
	// ------------------------------------------------------------

	switch strings.ToLower(r.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log: unknown level %q", r.Log.Level)
	}
	switch strings.ToLower(r.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log: unknown format %q", r.Log.Format)
	}

	return nil
}

func validateUnits(section, units string) error {
	switch units {
	case "", UnitsRaw, UnitsCm:
		return nil
	default:
		return fmt.Errorf("%s: unknown units %q (raw or cm)", section, units)
	}
}
