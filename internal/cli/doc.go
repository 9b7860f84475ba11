// Package cli wires together the Cobra command tree for the scrubby binary.
//
// It defines the root command and all subcommands (clipboard, watch, stdin,
// file, scan, config, version), binds flags, reads configuration, runs the
// redaction pipeline, and maps failures to deterministic exit codes.
package cli
