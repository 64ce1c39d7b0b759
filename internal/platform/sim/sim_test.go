// internal/platform/sim/sim_test.go
package sim

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func pulse(s *Sensor, d time.Duration) {
	s.High()
	s.Delay(d)
	s.Low()
}

func TestEchoFollowsTrigger(t *testing.T) {
	c := qt.New(t)
	s := New(Config{Rise: 5, Width: 3})

	c.Assert(s.IsHigh(), qt.IsFalse)
	pulse(s, 10*time.Microsecond)
	end := s.Now()

	var high []uint64
	for i := 0; i < 12; i++ {
		if s.IsHigh() {
			high = append(high, s.Now()-end)
		}
	}
	c.Assert(high, qt.DeepEquals, []uint64{5, 6, 7})
}

func TestShortTriggerIgnored(t *testing.T) {
	c := qt.New(t)
	s := New(Config{Rise: 1, Width: 10})

	pulse(s, 8*time.Microsecond)
	for i := 0; i < 20; i++ {
		c.Assert(s.IsHigh(), qt.IsFalse)
	}
}

func TestNoEcho(t *testing.T) {
	c := qt.New(t)
	s := New(Config{Rise: 1, Width: 10, NoEcho: true})

	pulse(s, 10*time.Microsecond)
	for i := 0; i < 20; i++ {
		c.Assert(s.IsHigh(), qt.IsFalse)
	}
}

func TestCounter(t *testing.T) {
	c := qt.New(t)
	s := New(Config{})

	s.Reset()
	c.Assert(s.Read(), qt.Equals, uint16(0))
	s.Delay(40 * time.Microsecond)
	c.Assert(s.Read(), qt.Equals, uint16(10))
	c.Assert(s.Read(), qt.Equals, uint16(10))
	c.Assert(s.LastRead, qt.Equals, uint16(10))

	for i := 0; i < 70_000; i++ {
		s.IsHigh()
	}
	c.Assert(s.Read(), qt.Equals, uint16(65535))

	s.Reset()
	c.Assert(s.Read(), qt.Equals, uint16(0))
	c.Assert(s.Resets, qt.Equals, 2)
}

func TestHistoryBounded(t *testing.T) {
	c := qt.New(t)
	s := New(Config{Rise: 1, Width: 1})
	for i := 0; i < historyLimit+10; i++ {
		pulse(s, 10*time.Microsecond)
	}
	c.Assert(s.Pulses, qt.HasLen, historyLimit)
	c.Assert(s.Delays, qt.HasLen, historyLimit)
}
