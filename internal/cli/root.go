package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dshills/scrubby/internal/clipboard"
	"github.com/dshills/scrubby/internal/config"
	"github.com/dshills/scrubby/internal/logging"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess    = 0
	ExitUsageError = 1
	ExitReadError  = 2
	ExitWriteError = 3
)

// Persistent flags
var (
	flagStable           bool
	flagJSON             bool
	flagFormat           string
	flagConfig           string
	flagEntropyThreshold float64
	flagLogLevel         string
)

// newClipboard is swapped out in tests.
var newClipboard = clipboard.System

var rootCmd = &cobra.Command{
	Use:   "scrubby",
	Short: "Scrub secrets and personal data from text before you paste it",
	Long: "Scrubby replaces emails, IPv4 addresses, UUIDv4s, JWTs and high-entropy tokens " +
		"with placeholders. With no subcommand it cleans the clipboard once.",
	Run: runClipboard,
}

// Run executes the root command and returns an exit code.
func Run() int {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	exitCode = ExitSuccess
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}
	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print scrubby version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scrubby version %s\n", version)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagStable, "stable", false, "Number placeholders per category (<EMAIL_1>, <EMAIL_2>, ...)")
	pf.BoolVar(&flagJSON, "json", false, "Print the report as JSON")
	pf.StringVar(&flagFormat, "format", "", "Report format (text, json, markdown)")
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: $XDG_CONFIG_HOME/scrubby/config.toml)")
	pf.Float64Var(&flagEntropyThreshold, "entropy-threshold", 0, "Minimum Shannon entropy for token candidates (default 3.5)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(clipboardCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(stdinCmd)
	rootCmd.AddCommand(fileCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildOverrides collects flag values that were set. Only non-zero values
// take part so config and env settings survive absent flags.
func buildOverrides() map[string]any {
	m := make(map[string]any)
	if flagStable {
		m["stable_placeholders"] = true
	}
	if flagJSON {
		m["json_report"] = true
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagEntropyThreshold > 0 {
		m["entropy_threshold"] = flagEntropyThreshold
	}
	if flagLogLevel != "" {
		m["log_level"] = flagLogLevel
	}
	if flagIntervalMs > 0 {
		m["interval_ms"] = flagIntervalMs
	}
	return m
}

func loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigPath: flagConfig, Overrides: buildOverrides()}
}

// loadConfig returns the effective config and a logger writing to the
// command's stderr. On failure it reports the error and sets exitCode.
func loadConfig(cmd *cobra.Command) (config.Config, *log.Logger, bool) {
	cfg, err := config.Load(loadOptions())
	if err != nil {
		fail(cmd, ExitUsageError, err)
		return config.Config{}, nil, false
	}
	logger := logging.New(logging.Options{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})
	return cfg, logger, true
}

// codedError carries the exit code for a failure raised deep in a command.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func readError(err error) error  { return &codedError{code: ExitReadError, err: err} }
func writeError(err error) error { return &codedError{code: ExitWriteError, err: err} }

// exitFor maps an error to its exit code.
func exitFor(err error) int {
	var ce *codedError
	switch {
	case errors.As(err, &ce):
		return ce.code
	case errors.Is(err, clipboard.ErrWrite):
		return ExitWriteError
	case errors.Is(err, clipboard.ErrRead), errors.Is(err, clipboard.ErrUnavailable):
		return ExitReadError
	default:
		return ExitUsageError
	}
}

func fail(cmd *cobra.Command, code int, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = code
}
