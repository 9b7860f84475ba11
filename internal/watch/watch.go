// Package watch polls a clipboard and rewrites it whenever new sensitive
// content appears.
package watch

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dshills/scrubby/internal/clipboard"
	"github.com/dshills/scrubby/internal/logging"
	"github.com/dshills/scrubby/internal/redact"
)

const (
	// DefaultInterval is used when Config.Interval is zero.
	DefaultInterval = 750 * time.Millisecond
	// MinInterval is the shortest accepted polling interval.
	MinInterval = 100 * time.Millisecond
)

// Config controls a Watcher.
type Config struct {
	Interval time.Duration
	// Options is consulted on every scrub so option changes apply without
	// restarting. Nil means redact.DefaultOptions.
	Options func() redact.Options
	// OnScrub is called after each write-back. A non-nil error stops Run.
	OnScrub func(redact.Result) error
	Logger  *log.Logger
}

// Watcher scrubs a clipboard each time its contents change.
type Watcher struct {
	clip        clipboard.Clipboard
	cfg         Config
	lastSeen    string
	lastWritten string
}

// New returns a Watcher for clip. Intervals below MinInterval are raised to it.
func New(clip clipboard.Clipboard, cfg Config) *Watcher {
	switch {
	case cfg.Interval == 0:
		cfg.Interval = DefaultInterval
	case cfg.Interval < MinInterval:
		cfg.Interval = MinInterval
	}
	if cfg.Options == nil {
		cfg.Options = redact.DefaultOptions
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return &Watcher{clip: clip, cfg: cfg}
}

// Interval returns the effective polling interval.
func (w *Watcher) Interval() time.Duration {
	return w.cfg.Interval
}

// Run polls until ctx is done or a clipboard or callback error occurs.
// Cancellation is not an error.
func (w *Watcher) Run(ctx context.Context) error {
	w.cfg.Logger.Info("watching clipboard", "interval", w.cfg.Interval)

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		if err := w.poll(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			w.cfg.Logger.Debug("watch stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// poll performs one read, scrub and conditional write-back.
func (w *Watcher) poll() error {
	input, err := w.clip.Read()
	if err != nil {
		return err
	}
	if input == w.lastSeen {
		return nil
	}
	w.lastSeen = input

	res := redact.Redact(input, w.cfg.Options())
	if res.Text == input || res.Text == w.lastWritten {
		return nil
	}
	if err := w.clip.Write(res.Text); err != nil {
		return err
	}
	w.lastWritten = res.Text
	w.cfg.Logger.Debug("clipboard rewritten", "total", res.Counts.Total())

	if w.cfg.OnScrub != nil {
		return w.cfg.OnScrub(res)
	}
	return nil
}
