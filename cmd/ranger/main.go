// cmd/ranger/main.go
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tamzrod/ultrasonic-ranger/internal/config"
	"github.com/tamzrod/ultrasonic-ranger/internal/logging"
	"github.com/tamzrod/ultrasonic-ranger/internal/poller"
	"github.com/tamzrod/ultrasonic-ranger/internal/status"
	"github.com/tamzrod/ultrasonic-ranger/internal/writer"
)

func main() {
	log := logging.For(logging.ComponentMain)

	if len(os.Args) < 2 {
		log.Error("usage: ranger <config.yaml>")
		os.Exit(2)
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fatal("config load failed", err)
	}

	if err := config.Validate(cfg); err != nil {
		fatal("config validation failed", err)
	}
	config.Normalize(cfg)

	r := cfg.Ranger

	lvl, err := logging.ParseLevel(r.Log.Level)
	if err != nil {
		fatal("log level", err)
	}
	format, err := logging.ParseFormat(r.Log.Format)
	if err != nil {
		fatal("log format", err)
	}
	logging.Setup(os.Stderr, lvl, format)
	log = logging.For(logging.ComponentMain).With("sensor", r.Sensor.ID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build pipeline
	// --------------------

	p, closePoller, err := poller.Build(r)
	if err != nil {
		fatal("poller build failed", err)
	}
	defer closePoller()

	outputs, err := writer.Build(r, writer.Streams{Display: os.Stdout, Debug: os.Stderr})
	if err != nil {
		_ = closePoller()
		fatal("writer build failed", err)
	}
	defer outputs.Close()

	log.Info("ranger started",
		"backend", r.Sensor.Backend,
		"interval_ms", r.Poll.IntervalMs,
		"sinks", outputs.Data.Len(),
		"status", outputs.StatusEnabled,
	)

	out := make(chan poller.PollResult)
	done := make(chan struct{})

	go func() {
		defer close(done)
		orchestrate(ctx, out, outputs)
	}()

	// poller producer
	polled := make(chan struct{})
	go func() {
		defer close(polled)
		p.Run(ctx, out)
	}()

	<-ctx.Done()
	// GPIO lines are released only after the last cycle returns.
	<-polled
	<-done
	log.Info("ranger stopped")
}

// orchestrate owns the status snapshot: it delivers data, folds each
// result into the tracker and ticks seconds_in_error at 1 Hz.
func orchestrate(ctx context.Context, out <-chan poller.PollResult, o *writer.Outputs) {
	wlog := logging.For(logging.ComponentWriter)
	stlog := logging.For(logging.ComponentStatus)

	var tracker status.Tracker

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	writeStatus := func(what string) {
		if err := o.Status.WriteStatus(tracker.Snapshot()); err != nil {
			stlog.Warn("status write failed", "on", what, "err", err)
		}
	}

	// Full block write on start (identity re-assert) if enabled.
	if o.StatusEnabled {
		writeStatus("start")
	}

	for {
		select {
		case <-ctx.Done():
			return

		case res := <-out:
			// --- data delivery ---
			if err := o.Data.Write(res); err != nil {
				wlog.Warn("writer error", "err", err)
			}

			if !o.StatusEnabled {
				continue
			}

			var changed bool
			if res.Err == nil {
				changed = tracker.OK(res.Distance)
			} else {
				changed = tracker.Fail(errorCode(res.Err))
			}
			if changed {
				writeStatus("result")
			}

		case <-secTicker.C:
			if !o.StatusEnabled {
				continue
			}
			if tracker.Tick() {
				writeStatus("tick")
			}
		}
	}
}

func fatal(msg string, err error) {
	logging.For(logging.ComponentMain).Error(msg, "err", err)
	os.Exit(1)
}

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns 1 (generic error).
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return 1
}
