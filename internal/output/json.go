package output

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/dshills/scrubby/internal/redact"
)

// JSONWriter outputs the report as a single-line JSON object.
type JSONWriter struct{}

type jsonReport struct {
	Source string `json:"source,omitempty"`
	redact.Counts
	Total       int  `json:"total"`
	Withheld    bool `json:"withheld,omitempty"`
	SafeToPaste bool `json:"safe_to_paste"`
}

func (j *JSONWriter) Write(w io.Writer, report *Report) error {
	data, err := json.Marshal(jsonReport{
		Source:      report.Source,
		Counts:      report.Counts,
		Total:       report.Counts.Total(),
		Withheld:    report.Withheld,
		SafeToPaste: true,
	})
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
