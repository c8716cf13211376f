// SPDX-License-Identifier: MIT
// Package: pqdijkstra/report
//
// writer.go - benchmark table output.

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/pqdijkstra/bench"
	"github.com/katalvlaran/pqdijkstra/pq"
)

// ErrUnknownMode indicates an output mode outside the enumeration.
var ErrUnknownMode = errors.New("report: unknown output mode")

// Mode selects the row layout.
type Mode int

const (
	// ModeConsole renders a boxed table.
	ModeConsole Mode = iota
	// ModeFile renders tab-separated lines.
	ModeFile
)

// String returns the flag name of m.
func (m Mode) String() string {
	switch m {
	case ModeConsole:
		return "console"
	case ModeFile:
		return "file"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "console" or "file" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "console":
		return ModeConsole, nil
	case "file":
		return ModeFile, nil
	default:
		return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
	}
}

const (
	sizeTitle  = "Number of vertices"
	sizeWidth  = 18
	valueWidth = 19
)

// Writer formats bench rows for one column per backend.
type Writer struct {
	w     *bufio.Writer
	mode  Mode
	kinds []pq.Kind
	err   error
}

// NewWriter returns a Writer emitting columns for kinds in order.
func NewWriter(w io.Writer, mode Mode, kinds []pq.Kind) *Writer {
	return &Writer{w: bufio.NewWriter(w), mode: mode, kinds: kinds}
}

// WriteHeader writes the table header. It writes nothing in ModeFile.
func (w *Writer) WriteHeader() {
	if w.mode != ModeConsole {
		return
	}
	w.rule()
	var b strings.Builder
	fmt.Fprintf(&b, "| %-*s |", sizeWidth, sizeTitle)
	for _, k := range w.kinds {
		fmt.Fprintf(&b, " %-*s |", valueWidth, k.String())
	}
	w.printf("%s\n", b.String())
	w.rule()
}

// WriteRow writes one size line.
func (w *Writer) WriteRow(r bench.Row) {
	var b strings.Builder
	switch w.mode {
	case ModeConsole:
		fmt.Fprintf(&b, "| %*d |", sizeWidth, r.Vertices)
		for _, k := range w.kinds {
			fmt.Fprintf(&b, " %*f |", valueWidth, micros(r.Mean[k]))
		}
	default:
		fmt.Fprintf(&b, "%d ", r.Vertices)
		for _, k := range w.kinds {
			fmt.Fprintf(&b, "\t%f ", micros(r.Mean[k]))
		}
	}
	w.printf("%s\n", b.String())
}

// WriteFooter closes the table. It writes nothing in ModeFile.
func (w *Writer) WriteFooter() {
	if w.mode == ModeConsole {
		w.rule()
	}
}

// Flush writes buffered output and returns the first error seen.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()

	return w.err
}

func (w *Writer) rule() {
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", sizeWidth+2) + "+")
	for range w.kinds {
		b.WriteString(strings.Repeat("-", valueWidth+2) + "+")
	}
	w.printf("%s\n", b.String())
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}

// micros converts d to fractional microseconds.
func micros(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
