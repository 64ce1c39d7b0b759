// internal/poller/poller.go
package poller

import (
	"errors"
	"log/slog"
	"time"

	"github.com/tamzrod/ultrasonic-ranger/internal/logging"
	"github.com/tamzrod/ultrasonic-ranger/internal/ranging"
)

// Sampler abstracts the ranging operation the poller needs.
type Sampler interface {
	Sample() ranging.Result
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	SensorID string
	Interval time.Duration
}

// Poller is a dumb, clock-driven ranger. One cycle per tick.
type Poller struct {
	cfg     Config
	sampler Sampler
	now     func() time.Time
	seq     uint64
	log     *slog.Logger
}

// New creates a poller with immutable config.
func New(cfg Config, sampler Sampler) (*Poller, error) {
	if cfg.SensorID == "" {
		return nil, errors.New("poller: sensor id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if sampler == nil {
		return nil, errors.New("poller: sampler required")
	}
	return &Poller{
		cfg:     cfg,
		sampler: sampler,
		now:     time.Now,
		log:     logging.For(logging.ComponentPoller).With("sensor", cfg.SensorID),
	}, nil
}

// PollOnce performs exactly one ranging cycle.
// It blocks for as long as the ranging cycle does.
func (p *Poller) PollOnce() PollResult {
	p.seq++
	res := PollResult{
		SensorID: p.cfg.SensorID,
		Seq:      p.seq,
		At:       p.now(),
	}

	r := p.sampler.Sample()
	res.Distance = r.Value
	res.Ticks = r.Ticks
	res.Outcome = r.Outcome
	res.Err = r.Err()

	if res.Err != nil {
		p.log.Debug("cycle failed", "seq", res.Seq, "outcome", r.Outcome.String(), "ticks", r.Ticks)
	} else {
		p.log.Debug("cycle", "seq", res.Seq, "distance", r.Value, "ticks", r.Ticks)
	}
	return res
}
