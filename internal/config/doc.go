// Package config loads and merges scrubby configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (SCRUBBY_STABLE_PLACEHOLDERS, SCRUBBY_FORMAT,
//     SCRUBBY_INTERVAL_MS, SCRUBBY_ENTROPY_THRESHOLD, SCRUBBY_LOG_LEVEL)
//  3. Config file ($XDG_CONFIG_HOME/scrubby/config.toml, or --config)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config], [Save] to write a config file,
// [SetField] to update a single key, and [Watch] to follow edits to the
// file while the clipboard watcher runs.
package config
