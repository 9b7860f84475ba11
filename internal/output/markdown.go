package output

import (
	"io"

	"github.com/dshills/scrubby/internal/detect"
)

// MarkdownWriter outputs a count table suitable for issue and PR comments.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}

	ew.printf("## Scrubby: %s\n\n", sourceLabel(report.Source))
	if report.Withheld {
		ew.println("Content withheld by path policy.\n")
	}

	ew.println("| Category | Redacted |")
	ew.println("|----------|----------|")
	for _, c := range detect.Ordered() {
		ew.printf("| %s | %d |\n", c.Plural(), report.Counts.Of(c))
	}
	ew.printf("| **Total** | **%d** |\n\n", report.Counts.Total())

	if report.Counts.Total() == 0 && !report.Withheld {
		ew.println("Nothing sensitive found. :white_check_mark:")
	} else {
		ew.println("Safe to paste. :lock:")
	}
	return ew.err
}
