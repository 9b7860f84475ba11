package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/scrubby/internal/config"
	"github.com/dshills/scrubby/internal/detect"
	"github.com/dshills/scrubby/internal/output"
	"github.com/dshills/scrubby/internal/redact"
)

var flagWrite bool

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Clean the clipboard once and print a report",
	Args:  cobra.NoArgs,
	Run:   runClipboard,
}

var stdinCmd = &cobra.Command{
	Use:   "stdin",
	Short: "Clean text from stdin and print it to stdout",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, ok := loadConfig(cmd)
		if !ok {
			return
		}

		in := cmd.InOrStdin()
		if f, isFile := in.(*os.File); isFile && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			logger.Warn("reading from terminal, press Ctrl-D to finish")
		}

		data, err := io.ReadAll(in)
		if err != nil {
			fail(cmd, ExitReadError, fmt.Errorf("reading stdin: %w", err))
			return
		}

		res := redact.Redact(string(data), cfg.Options())
		if _, err := io.WriteString(cmd.OutOrStdout(), res.Text); err != nil {
			fail(cmd, ExitWriteError, fmt.Errorf("writing stdout: %w", err))
			return
		}
		if reportRequested(cfg) {
			if err := output.WriteReport(cmd.ErrOrStderr(), output.NewReport("stdin", res), cfg.ReportFormat()); err != nil {
				fail(cmd, ExitWriteError, err)
			}
		}
	},
}

var fileCmd = &cobra.Command{
	Use:   "file <path>...",
	Short: "Clean files, printing them or rewriting them in place",
	Long: "Clean one or more files concurrently. Files matching redact_paths are withheld " +
		"entirely. With --write, changed files are rewritten in place and withheld files are left alone.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, ok := loadConfig(cmd)
		if !ok {
			return
		}

		results, err := scrubFiles(args, cfg)
		if err != nil {
			fail(cmd, exitFor(err), err)
			return
		}

		for i, res := range results {
			path := args[i]
			if flagWrite {
				if err := rewriteFile(path, res); err != nil {
					fail(cmd, ExitWriteError, err)
					return
				}
				logger.Debug("file scrubbed", "path", path, "total", res.Counts.Total(), "withheld", res.Withheld)
			} else if _, err := io.WriteString(cmd.OutOrStdout(), res.Text); err != nil {
				fail(cmd, ExitWriteError, fmt.Errorf("writing stdout: %w", err))
				return
			}
			if reportRequested(cfg) {
				if err := output.WriteReport(cmd.ErrOrStderr(), output.NewReport(path, res), cfg.ReportFormat()); err != nil {
					fail(cmd, ExitWriteError, err)
					return
				}
			}
		}
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List sensitive spans found in stdin without changing anything",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _, ok := loadConfig(cmd)
		if !ok {
			return
		}

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			fail(cmd, ExitReadError, fmt.Errorf("reading stdin: %w", err))
			return
		}

		format := "text"
		if cfg.ReportFormat() == "json" {
			format = "json"
		}
		text := string(data)
		d := detect.ScanWithThreshold(text, cfg.EntropyThreshold)
		if err := output.WriteDetections(cmd.OutOrStdout(), text, d, format); err != nil {
			fail(cmd, ExitWriteError, err)
		}
	},
}

func runClipboard(cmd *cobra.Command, args []string) {
	cfg, logger, ok := loadConfig(cmd)
	if !ok {
		return
	}

	clip := newClipboard()
	input, err := clip.Read()
	if err != nil {
		fail(cmd, exitFor(err), err)
		return
	}

	res := redact.Redact(input, cfg.Options())
	if err := clip.Write(res.Text); err != nil {
		fail(cmd, exitFor(err), err)
		return
	}
	logger.Debug("clipboard scrubbed", "total", res.Counts.Total())

	if err := output.WriteReport(cmd.OutOrStdout(), output.NewReport("clipboard", res), cfg.ReportFormat()); err != nil {
		fail(cmd, ExitWriteError, err)
	}
}

// reportRequested reports whether stdin and file modes should print a
// report to stderr alongside the cleaned text.
func reportRequested(cfg config.Config) bool {
	return cfg.JSONReport || cfg.Format != "text" || flagFormat != ""
}

// scrubFiles reads and cleans paths concurrently, returning results in
// argument order.
func scrubFiles(paths []string, cfg config.Config) ([]redact.Result, error) {
	results := make([]redact.Result, len(paths))
	opts := cfg.Options()

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return readError(fmt.Errorf("reading %s: %w", path, err))
			}
			results[i] = redact.Content(string(data), path, cfg.RedactPaths, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// rewriteFile writes res back to path when it changed. Withheld files are
// never overwritten.
func rewriteFile(path string, res redact.Result) error {
	if res.Withheld || res.Counts.Total() == 0 {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(res.Text), info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	fileCmd.Flags().BoolVar(&flagWrite, "write", false, "Rewrite files in place instead of printing them")
}
