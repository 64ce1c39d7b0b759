// internal/ranging/ranging_test.go
package ranging

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/tamzrod/ultrasonic-ranger/internal/platform/sim"
	"github.com/tamzrod/ultrasonic-ranger/internal/timer"
)

func newSimRanger(c *qt.C, cfg sim.Config) (*Ranger, *sim.Sensor) {
	s := sim.New(cfg)
	r, err := New(s, s, s, s.Delay)
	c.Assert(err, qt.IsNil)
	return r, s
}

// pulseTicks is the arm-to-trigger-fall time on the simulated clock.
var pulseTicks = uint32(timer.Ticks(PulseWidth))

func TestNew_RequiresCollaborators(t *testing.T) {
	c := qt.New(t)
	s := sim.New(sim.Config{})

	_, err := New(nil, s, s, s.Delay)
	c.Assert(err, qt.Equals, ErrNilCollaborator)
	_, err = New(s, nil, s, s.Delay)
	c.Assert(err, qt.Equals, ErrNilCollaborator)
	_, err = New(s, s, nil, s.Delay)
	c.Assert(err, qt.Equals, ErrNilCollaborator)
	_, err = New(s, s, s, nil)
	c.Assert(err, qt.Equals, ErrNilCollaborator)
}

func TestMeasure_NoEchoTimesOut(t *testing.T) {
	c := qt.New(t)
	r, s := newSimRanger(c, sim.Config{NoEcho: true})

	c.Assert(r.Measure(), qt.Equals, uint16(0))
	// timeout fires on the first read that reaches the threshold
	c.Assert(s.LastRead, qt.Equals, uint16(RiseTimeout))
	// fall path never entered: only the arming reset happened
	c.Assert(s.Resets, qt.Equals, 1)
}

func TestSample_NoEchoOutcome(t *testing.T) {
	c := qt.New(t)
	r, _ := newSimRanger(c, sim.Config{NoEcho: true})

	res := r.Sample()
	c.Assert(res, qt.Equals, Result{Outcome: OutcomeNoEcho})
	c.Assert(res.Err(), qt.Equals, ErrNoEcho)
}

func TestMeasure_EchoAfterWindowTimesOut(t *testing.T) {
	c := qt.New(t)
	// echo would rise at tick 50,001 after arming
	r, s := newSimRanger(c, sim.Config{Rise: RiseTimeout + 1 - pulseTicks, Width: 100})

	c.Assert(r.Measure(), qt.Equals, uint16(0))
	c.Assert(s.Resets, qt.Equals, 1)
}

func TestMeasure_ImmediateEcho(t *testing.T) {
	c := qt.New(t)
	r, _ := newSimRanger(c, sim.Config{Rise: 1, Width: 100})

	c.Assert(r.Measure(), qt.Equals, uint16(400))
}

func TestMeasure_RiseJustBeforeThreshold(t *testing.T) {
	c := qt.New(t)
	// echo rises at tick 49,999 after arming
	r, s := newSimRanger(c, sim.Config{Rise: RiseTimeout - 1 - pulseTicks, Width: 100})

	res := r.Sample()
	c.Assert(res.Outcome, qt.Equals, OutcomeOK)
	c.Assert(res.Value, qt.Equals, uint16(400))
	c.Assert(s.Resets, qt.Equals, 2)
}

func TestMeasure_ExactTicks(t *testing.T) {
	c := qt.New(t)
	for _, d := range []uint32{0, 1, 2, 58, 100, 1000, 12_345, 16_383} {
		r, _ := newSimRanger(c, sim.Config{Rise: 7, Width: d})
		res := r.Sample()
		if d == 0 {
			// a zero-width echo is never observed high
			c.Assert(res.Outcome, qt.Equals, OutcomeNoEcho)
			continue
		}
		c.Assert(res.Outcome, qt.Equals, OutcomeOK, qt.Commentf("d=%d", d))
		c.Assert(res.Ticks, qt.Equals, uint16(d), qt.Commentf("d=%d", d))
		c.Assert(res.Value, qt.Equals, uint16(d*TickScale), qt.Commentf("d=%d", d))
	}
}

func TestMeasure_SaturationIsBadReading(t *testing.T) {
	c := qt.New(t)
	for _, d := range []uint32{16_384, 20_000, 65_535, 80_000} {
		r, _ := newSimRanger(c, sim.Config{Rise: 1, Width: d})
		res := r.Sample()
		c.Assert(res.Value, qt.Equals, uint16(0), qt.Commentf("d=%d", d))
		c.Assert(res.Outcome, qt.Equals, OutcomeOverlong, qt.Commentf("d=%d", d))
		c.Assert(res.Err(), qt.Equals, ErrOverlongEcho)
	}
}

func TestMeasure_Scenario20000Ticks(t *testing.T) {
	c := qt.New(t)
	r, _ := newSimRanger(c, sim.Config{Rise: 1, Width: 20_000})
	c.Assert(r.Measure(), qt.Equals, uint16(0))
}

func TestMeasure_Independent(t *testing.T) {
	c := qt.New(t)
	r, _ := newSimRanger(c, sim.Config{Rise: 300, Width: 1500})

	first := r.Sample()
	second := r.Sample()
	c.Assert(first, qt.Equals, second)
	c.Assert(first.Value, qt.Equals, uint16(6000))
}

func TestMeasure_NoStateLeaksAfterTimeout(t *testing.T) {
	c := qt.New(t)
	r, s := newSimRanger(c, sim.Config{NoEcho: true})

	c.Assert(r.Measure(), qt.Equals, uint16(0))
	s.Configure(sim.Config{Rise: 3, Width: 250})
	c.Assert(r.Measure(), qt.Equals, uint16(1000))
}

func TestMeasure_TriggerPulseShape(t *testing.T) {
	c := qt.New(t)
	for _, cfg := range []sim.Config{
		{NoEcho: true},
		{Rise: 1, Width: 10},
		{Rise: 1, Width: 30_000},
	} {
		r, s := newSimRanger(c, cfg)
		c.Assert(s.TriggerHigh(), qt.IsFalse)

		r.Measure()

		c.Assert(s.TriggerHigh(), qt.IsFalse)
		c.Assert(s.Pulses, qt.HasLen, 1)
		p := s.Pulses[0]
		width := time.Duration(p.End-p.Start) * timer.TickPeriod
		c.Assert(width >= PulseWidth, qt.IsTrue, qt.Commentf("width=%v", width))
		c.Assert(s.Delays, qt.DeepEquals, []time.Duration{PulseWidth})
	}
}

func TestSaturatingMul(t *testing.T) {
	c := qt.New(t)
	c.Assert(saturatingMul(0, 4), qt.Equals, uint16(0))
	c.Assert(saturatingMul(16_383, 4), qt.Equals, uint16(65_532))
	c.Assert(saturatingMul(16_384, 4), qt.Equals, uint16(65_535))
	c.Assert(saturatingMul(65_535, 4), qt.Equals, uint16(65_535))
}

func TestToCentimeters(t *testing.T) {
	c := qt.New(t)
	c.Assert(ToCentimeters(0), qt.Equals, uint16(0))
	c.Assert(ToCentimeters(580), qt.Equals, uint16(10))
	c.Assert(ToCentimeters(600), qt.Equals, uint16(10))
}

func TestOutcomeCodes(t *testing.T) {
	c := qt.New(t)
	type coder interface{ Code() uint16 }
	c.Assert(ErrNoEcho.(coder).Code(), qt.Equals, uint16(2))
	c.Assert(ErrOverlongEcho.(coder).Code(), qt.Equals, uint16(3))
	c.Assert(Result{Value: 4}.Err(), qt.IsNil)
	c.Assert(OutcomeOverlong.String(), qt.Equals, "overlong_echo")
}
