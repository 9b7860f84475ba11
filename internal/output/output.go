package output

import (
	"fmt"
	"io"

	"github.com/dshills/scrubby/internal/redact"
)

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "markdown"}

// Report summarizes one redaction run.
type Report struct {
	// Source names where the text came from: "clipboard", "stdin" or a path.
	Source   string
	Counts   redact.Counts
	Withheld bool
}

// NewReport builds a Report from a redaction result.
func NewReport(source string, res redact.Result) *Report {
	return &Report{Source: source, Counts: res.Counts, Withheld: res.Withheld}
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text", "":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "markdown", "md":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// ValidFormat reports whether GetWriter accepts format.
func ValidFormat(format string) bool {
	_, err := GetWriter(format)
	return err == nil
}

// WriteReport writes the report to w in the given format.
func WriteReport(w io.Writer, report *Report, format string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}
	return writer.Write(w, report)
}
