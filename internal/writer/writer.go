// internal/writer/writer.go
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/ultrasonic-ranger/internal/poller"
)

type named struct {
	name string
	w    Writer
}

// MultiWriter fans one result out to every sink.
// A failing sink never prevents delivery to the others.
type MultiWriter struct {
	sinks []named
}

// Multi returns a Writer that delivers to every non-nil sink in order.
func Multi() *MultiWriter {
	return &MultiWriter{}
}

// Add appends a named sink.
func (m *MultiWriter) Add(name string, w Writer) *MultiWriter {
	if w != nil {
		m.sinks = append(m.sinks, named{name: name, w: w})
	}
	return m
}

// Len returns the number of sinks.
func (m *MultiWriter) Len() int { return len(m.sinks) }

func (m *MultiWriter) Write(res poller.PollResult) error {
	var errs []string

	for _, s := range m.sinks {
		if err := s.w.Write(res); err != nil {
			errs = append(errs, fmt.Sprintf("writer: sink=%s seq=%d err=%v", s.name, res.Seq, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, " | "))
	}
	return nil
}

// registerWriter writes the reading block into holding registers.
type registerWriter struct {
	plan RegisterPlan
	cli  endpointClient
}

// NewRegisterWriter builds the reading block writer.
func NewRegisterWriter(plan RegisterPlan, cli endpointClient) Writer {
	return &registerWriter{plan: plan, cli: cli}
}

// Write delivers every cycle, failed ones included: the distance register
// then reads 0 exactly as Measure reports it.
func (w *registerWriter) Write(res poller.PollResult) error {
	if w.cli == nil {
		return errors.New("writer: missing register client")
	}

	regs := make([]uint16, ReadingRegisters)
	regs[RegDistance] = res.Distance
	regs[RegTicks] = res.Ticks
	regs[RegOutcome] = uint16(res.Outcome)
	regs[RegSequence] = uint16(res.Seq)

	if err := w.cli.WriteRegisters(w.plan.UnitID, w.plan.Address, regs); err != nil {
		return fmt.Errorf(
			"writer: unit=%d addr=%d err=%w",
			w.plan.UnitID, w.plan.Address, err,
		)
	}
	return nil
}
