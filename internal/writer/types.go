// internal/writer/types.go
package writer

import "github.com/tamzrod/ultrasonic-ranger/internal/poller"

// Writer delivers one ranging result to an output.
type Writer interface {
	Write(res poller.PollResult) error
}

// endpointClient is the exact register contract the register and status
// writers use. Modbus TCP, Modbus RTU and Raw Ingest all implement it.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}

// RegisterPlan places the reading block in holding registers.
type RegisterPlan struct {
	UnitID  uint8
	Address uint16
}

// StatusPlan places the device status block in holding registers.
type StatusPlan struct {
	UnitID     uint8
	BaseSlot   uint16
	DeviceName string
}

// Plan is the fully-built register plan for one sensor.
type Plan struct {
	SensorID string
	Register *RegisterPlan
	Status   *StatusPlan
}

// Register block layout written by the register writer.
const (
	RegDistance = 0
	RegTicks    = 1
	RegOutcome  = 2
	RegSequence = 3

	ReadingRegisters = 4
)
