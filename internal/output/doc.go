// Package output formats redaction summaries for display or machine consumption.
//
// Three formats are supported:
//   - text: the human-readable per-category summary (default)
//   - json: a single-line JSON object per report, suitable for logs
//   - markdown: a count table for pasting into issues and pull requests
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*Report]. [WriteDetections]
// renders the raw classification produced by the scan command.
package output
