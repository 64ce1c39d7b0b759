// internal/writer/serialport/port.go
package serialport

import (
	"errors"
	"fmt"

	serial "go.bug.st/serial"
)

// Open opens a write-side serial port for the debug stream (8N1).
func Open(dev string, baud int) (serial.Port, error) {
	if dev == "" {
		return nil, errors.New("serialport: device required")
	}
	p, err := serial.Open(dev, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", dev, err)
	}
	return p, nil
}
