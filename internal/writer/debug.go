// internal/writer/debug.go
package writer

import (
	"fmt"
	"io"

	"github.com/tamzrod/ultrasonic-ranger/internal/poller"
)

// debugWriter writes one "<value> mm" line per reading.
type debugWriter struct {
	out   io.Writer
	units string
}

// NewDebugWriter streams readings to out (a serial port or stderr).
func NewDebugWriter(out io.Writer, units string) Writer {
	return &debugWriter{out: out, units: units}
}

func (w *debugWriter) Write(res poller.PollResult) error {
	if _, err := io.WriteString(w.out, Render(res.Distance, w.units)+"\n"); err != nil {
		return fmt.Errorf("debug: write: %w", err)
	}
	return nil
}
