package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dshills/scrubby/internal/detect"
	"github.com/dshills/scrubby/internal/output"
	"github.com/dshills/scrubby/internal/redact"
)

// MinIntervalMs is the shortest clipboard polling interval accepted.
const MinIntervalMs = 100

// Config represents the scrubby configuration.
type Config struct {
	StablePlaceholders bool     `mapstructure:"stable_placeholders" toml:"stable_placeholders"`
	JSONReport         bool     `mapstructure:"json_report" toml:"json_report"`
	Format             string   `mapstructure:"format" toml:"format"`
	IntervalMs         int      `mapstructure:"interval_ms" toml:"interval_ms"`
	EntropyThreshold   float64  `mapstructure:"entropy_threshold" toml:"entropy_threshold"`
	RedactPaths        []string `mapstructure:"redact_paths" toml:"redact_paths"`
	LogLevel           string   `mapstructure:"log_level" toml:"log_level"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:           "text",
		IntervalMs:       750,
		EntropyThreshold: detect.DefaultEntropyThreshold,
		RedactPaths:      append([]string(nil), redact.DefaultRedactPaths...),
		LogLevel:         "warn",
	}
}

// Options returns the redaction options the config selects.
func (c Config) Options() redact.Options {
	return redact.Options{
		StablePlaceholders: c.StablePlaceholders,
		EntropyThreshold:   c.EntropyThreshold,
	}
}

// ReportFormat returns the report format to use. json_report forces JSON.
func (c Config) ReportFormat() string {
	if c.JSONReport {
		return "json"
	}
	return c.Format
}

// Validate checks value ranges. Errors name the offending key.
func Validate(c Config) error {
	if !output.ValidFormat(c.Format) {
		return fmt.Errorf("format: unsupported value %q (want %s)", c.Format, strings.Join(output.Formats, ", "))
	}
	if c.IntervalMs < MinIntervalMs {
		return fmt.Errorf("interval_ms: must be at least %d, got %d", MinIntervalMs, c.IntervalMs)
	}
	if c.EntropyThreshold <= 0 || c.EntropyThreshold > 8 {
		return fmt.Errorf("entropy_threshold: must be in (0, 8], got %v", c.EntropyThreshold)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: unsupported value %q", c.LogLevel)
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for scrubby.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scrubby"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "scrubby"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "scrubby"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "scrubby"), nil
	default:
		return filepath.Join(home, ".config", "scrubby"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ResolvePath returns override when set, otherwise the default ConfigPath.
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return ConfigPath()
}

// Encode renders cfg as TOML.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the config to path, creating parent directories.
func Save(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is
// unknown or the value does not parse.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "stable_placeholders":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("stable_placeholders must be a boolean: %w", err)
		}
		cfg.StablePlaceholders = b
	case "json_report":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("json_report must be a boolean: %w", err)
		}
		cfg.JSONReport = b
	case "format":
		cfg.Format = value
	case "interval_ms":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("interval_ms must be an integer: %w", err)
		}
		cfg.IntervalMs = n
	case "entropy_threshold":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("entropy_threshold must be a number: %w", err)
		}
		cfg.EntropyThreshold = f
	case "redact_paths":
		cfg.RedactPaths = splitComma(value)
	case "log_level":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func splitComma(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
