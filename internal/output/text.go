package output

import (
	"fmt"
	"io"

	"github.com/dshills/scrubby/internal/detect"
)

// TextWriter outputs a human-readable text summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}

	ew.printf("Scrubby cleaned %s:\n", sourceLabel(report.Source))
	if report.Withheld {
		ew.println("- Content withheld by path policy")
	}
	for _, c := range detect.Ordered() {
		ew.printf("- %s: %d\n", c.Plural(), report.Counts.Of(c))
	}
	ew.println("Safe to paste.")

	return ew.err
}

func sourceLabel(source string) string {
	switch source {
	case "", "clipboard":
		return "your clipboard"
	default:
		return source
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
