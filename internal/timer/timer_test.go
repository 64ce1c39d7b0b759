// internal/timer/timer_test.go
package timer

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestTickPeriod(t *testing.T) {
	c := qt.New(t)
	c.Assert(TickPeriod, qt.Equals, 4*time.Microsecond)
}

func TestTicks(t *testing.T) {
	c := qt.New(t)
	c.Assert(Ticks(0), qt.Equals, uint16(0))
	c.Assert(Ticks(-time.Second), qt.Equals, uint16(0))
	c.Assert(Ticks(4*time.Microsecond), qt.Equals, uint16(1))
	c.Assert(Ticks(10*time.Microsecond), qt.Equals, uint16(3))
	c.Assert(Ticks(200*time.Millisecond), qt.Equals, uint16(50_000))
	c.Assert(Ticks(time.Hour), qt.Equals, uint16(MaxTicks))
}

func TestMonotonicCounter_ResetAndRead(t *testing.T) {
	c := qt.New(t)
	clk := &fakeClock{t: time.Unix(1000, 0)}
	cnt := NewMonotonic(clk.now)

	c.Assert(cnt.Read(), qt.Equals, uint16(0))

	clk.advance(400 * time.Microsecond)
	c.Assert(cnt.Read(), qt.Equals, uint16(100))
	// reads have no side effects
	c.Assert(cnt.Read(), qt.Equals, uint16(100))

	clk.advance(3 * time.Microsecond)
	c.Assert(cnt.Read(), qt.Equals, uint16(100))

	cnt.Reset()
	c.Assert(cnt.Read(), qt.Equals, uint16(0))

	clk.advance(8 * time.Microsecond)
	c.Assert(cnt.Read(), qt.Equals, uint16(2))
}

func TestMonotonicCounter_Saturates(t *testing.T) {
	c := qt.New(t)
	clk := &fakeClock{t: time.Unix(1000, 0)}
	cnt := NewMonotonic(clk.now)

	clk.advance(time.Duration(MaxTicks)*TickPeriod - time.Nanosecond)
	c.Assert(cnt.Read(), qt.Equals, uint16(MaxTicks-1))

	clk.advance(time.Second)
	c.Assert(cnt.Read(), qt.Equals, uint16(MaxTicks))

	cnt.Reset()
	c.Assert(cnt.Read(), qt.Equals, uint16(0))
}

func TestSpin(t *testing.T) {
	start := time.Now()
	Spin(50 * time.Microsecond)
	if got := time.Since(start); got < 50*time.Microsecond {
		t.Fatalf("spin returned early after %v", got)
	}
}
