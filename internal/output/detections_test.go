package output

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/dshills/scrubby/internal/detect"
)

func TestWriteDetections_Text(t *testing.T) {
	text := "first line\nmail a@b.com"
	var buf bytes.Buffer
	if err := WriteDetections(&buf, text, detect.Scan(text), "text"); err != nil {
		t.Fatalf("WriteDetections error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "email  2:6") {
		t.Errorf("Output should locate the email at 2:6:\n%s", out)
	}
	if strings.Contains(out, "a@b.com") {
		t.Error("Output must not echo matched content")
	}
	if !strings.Contains(out, "1 detections") {
		t.Errorf("Output should count detections:\n%s", out)
	}
}

func TestWriteDetections_None(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDetections(&buf, "hello", detect.Scan("hello"), ""); err != nil {
		t.Fatalf("WriteDetections error: %v", err)
	}
	if !strings.Contains(buf.String(), "No sensitive content found.") {
		t.Errorf("Output = %q", buf.String())
	}
}

func TestWriteDetections_JSON(t *testing.T) {
	text := "10.0.0.1"
	var buf bytes.Buffer
	if err := WriteDetections(&buf, text, detect.Scan(text), "json"); err != nil {
		t.Fatalf("WriteDetections error: %v", err)
	}
	var parsed detect.Detections
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if len(parsed.IPs) != 1 || parsed.IPs[0] != (detect.Span{Start: 0, End: 8}) {
		t.Errorf("IPs = %v, want [{0 8}]", parsed.IPs)
	}
}

func TestWriteDetections_BadFormat(t *testing.T) {
	if err := WriteDetections(&bytes.Buffer{}, "", detect.Detections{}, "markdown"); err == nil {
		t.Error("Expected error for unsupported scan format")
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		text      string
		offset    int
		line, col int
	}{
		{"abc", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"ab\ncd", 3, 2, 1},
		{"ab\ncd\nef", 7, 3, 2},
	}
	for _, tt := range tests {
		line, col := position(tt.text, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("position(%q, %d) = %d:%d, want %d:%d", tt.text, tt.offset, line, col, tt.line, tt.col)
		}
	}
}
