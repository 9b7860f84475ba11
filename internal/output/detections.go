package output

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/dshills/scrubby/internal/detect"
)

// WriteDetections renders the raw classification of text. Matched content
// is never printed, only its position: line and column are 1-based, column
// counted in bytes.
func WriteDetections(w io.Writer, text string, d detect.Detections, format string) error {
	switch format {
	case "json":
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshaling detections: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text", "":
		ew := &errWriter{w: w}
		all := d.All()
		if len(all) == 0 {
			ew.println("No sensitive content found.")
			return ew.err
		}
		for _, det := range all {
			line, col := position(text, det.Start)
			ew.printf("%-6s %d:%d  bytes %d-%d (%d)\n",
				det.Category, line, col, det.Start, det.End, det.Len())
		}
		ew.printf("%d detections\n", len(all))
		return ew.err
	default:
		return fmt.Errorf("unsupported scan format: %s", format)
	}
}

func position(text string, offset int) (line, col int) {
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndexByte(before, '\n')
	return line, col
}
