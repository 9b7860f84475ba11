package cli

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/scrubby/internal/config"
	"github.com/dshills/scrubby/internal/output"
	"github.com/dshills/scrubby/internal/redact"
	"github.com/dshills/scrubby/internal/watch"
)

var flagIntervalMs int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and clean it whenever it changes",
	Long: "Poll the clipboard and rewrite it when new sensitive content appears. " +
		"Edits to the config file apply without restarting. Stop with Ctrl-C.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, ok := loadConfig(cmd)
		if !ok {
			return
		}

		var current atomic.Pointer[redact.Options]
		opts := cfg.Options()
		current.Store(&opts)
		format := cfg.ReportFormat()

		watching, err := config.Watch(loadOptions(), func(next config.Config, err error) {
			if err != nil {
				logger.Warn("config reload failed, keeping previous settings", "err", err)
				return
			}
			o := next.Options()
			current.Store(&o)
			logger.Info("config reloaded", "stable", o.StablePlaceholders, "entropy_threshold", o.EntropyThreshold)
		})
		if err != nil {
			logger.Warn("config watch unavailable", "err", err)
		} else if !watching {
			logger.Debug("no config file to watch")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := watch.New(newClipboard(), watch.Config{
			Interval: time.Duration(cfg.IntervalMs) * time.Millisecond,
			Options:  func() redact.Options { return *current.Load() },
			OnScrub: func(res redact.Result) error {
				if err := output.WriteReport(cmd.OutOrStdout(), output.NewReport("clipboard", res), format); err != nil {
					return writeError(err)
				}
				return nil
			},
			Logger: logger.WithPrefix("watch"),
		})
		if err := w.Run(ctx); err != nil {
			fail(cmd, exitFor(err), err)
		}
	},
}

func init() {
	watchCmd.Flags().IntVar(&flagIntervalMs, "interval-ms", 0, "Poll interval in milliseconds (minimum 100, default 750)")
}
