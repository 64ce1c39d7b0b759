// internal/writer/display.go
package writer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	cfg "github.com/tamzrod/ultrasonic-ranger/internal/config"
	"github.com/tamzrod/ultrasonic-ranger/internal/poller"
	"github.com/tamzrod/ultrasonic-ranger/internal/ranging"
)

// CharDisplay is a character display: clear, then print text at the cursor.
type CharDisplay interface {
	Clear() error
	Print(s string) error
}

// TextDisplay is a fixed-geometry character screen rendered onto a stream.
// Text past the last column wraps to the next row; text past the last row
// is dropped. The whole screen is rendered after every Print.
type TextDisplay struct {
	mu   sync.Mutex
	out  io.Writer
	cols int
	rows int
	buf  [][]byte
	row  int
	col  int
}

// NewTextDisplay creates a cleared cols x rows screen.
func NewTextDisplay(out io.Writer, cols, rows int) *TextDisplay {
	d := &TextDisplay{out: out, cols: cols, rows: rows}
	d.buf = make([][]byte, rows)
	for i := range d.buf {
		d.buf[i] = make([]byte, cols)
	}
	d.blank()
	return d
}

func (d *TextDisplay) blank() {
	for _, line := range d.buf {
		for i := range line {
			line[i] = ' '
		}
	}
	d.row, d.col = 0, 0
}

// Clear blanks the screen and homes the cursor.
func (d *TextDisplay) Clear() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blank()
	return nil
}

// Print writes s at the cursor and renders the screen.
func (d *TextDisplay) Print(s string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := 0; i < len(s) && d.row < d.rows; i++ {
		c := s[i]
		if c < 0x20 || c > 0x7E {
			c = '?'
		}
		d.buf[d.row][d.col] = c
		d.col++
		if d.col == d.cols {
			d.col = 0
			d.row++
		}
	}
	return d.render()
}

// Lines returns the current screen contents, one string per row.
func (d *TextDisplay) Lines() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, d.rows)
	for i, line := range d.buf {
		out[i] = string(line)
	}
	return out
}

func (d *TextDisplay) render() error {
	var b bytes.Buffer
	border := "+" + string(bytes.Repeat([]byte{'-'}, d.cols)) + "+\n"
	b.WriteString(border)
	for _, line := range d.buf {
		b.WriteByte('|')
		b.Write(line)
		b.WriteString("|\n")
	}
	b.WriteString(border)
	_, err := d.out.Write(b.Bytes())
	return err
}

// displayWriter shows each reading as "<value> mm".
type displayWriter struct {
	d     CharDisplay
	units string
}

// NewDisplayWriter shows readings on d in the given units (raw or cm).
func NewDisplayWriter(d CharDisplay, units string) Writer {
	return &displayWriter{d: d, units: units}
}

func (w *displayWriter) Write(res poller.PollResult) error {
	if err := w.d.Clear(); err != nil {
		return fmt.Errorf("display: clear: %w", err)
	}
	if err := w.d.Print(Render(res.Distance, w.units)); err != nil {
		return fmt.Errorf("display: print: %w", err)
	}
	return nil
}

// Render formats a distance for a text sink. Raw values keep the "mm"
// label the display has always carried; cm values are divided by 58.
func Render(distance uint16, units string) string {
	if units == cfg.UnitsCm {
		return strconv.FormatUint(uint64(ranging.ToCentimeters(distance)), 10) + " cm"
	}
	return strconv.FormatUint(uint64(distance), 10) + " mm"
}
