package watch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dshills/scrubby/internal/clipboard"
	"github.com/dshills/scrubby/internal/redact"
)

func TestNew_Interval(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{0, DefaultInterval},
		{10 * time.Millisecond, MinInterval},
		{time.Second, time.Second},
	}
	for _, tt := range tests {
		w := New(clipboard.NewMemory(""), Config{Interval: tt.in})
		if got := w.Interval(); got != tt.want {
			t.Errorf("Interval(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPoll_RewritesOnce(t *testing.T) {
	clip := clipboard.NewMemory("mail me at a@b.com")
	var scrubs []redact.Result
	w := New(clip, Config{OnScrub: func(r redact.Result) error {
		scrubs = append(scrubs, r)
		return nil
	}})

	for i := 0; i < 3; i++ {
		if err := w.poll(); err != nil {
			t.Fatalf("poll error: %v", err)
		}
	}

	got, _ := clip.Read()
	if got != "mail me at <EMAIL>" {
		t.Errorf("clipboard = %q, want %q", got, "mail me at <EMAIL>")
	}
	if clip.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", clip.Writes())
	}
	if len(scrubs) != 1 || scrubs[0].Counts.Emails != 1 {
		t.Errorf("OnScrub calls = %+v, want one with 1 email", scrubs)
	}
}

func TestPoll_CleanTextNotWritten(t *testing.T) {
	clip := clipboard.NewMemory("nothing to see")
	w := New(clip, Config{})
	if err := w.poll(); err != nil {
		t.Fatalf("poll error: %v", err)
	}
	if clip.Writes() != 0 {
		t.Errorf("Writes() = %d, want 0", clip.Writes())
	}
}

func TestPoll_NewContentScrubbed(t *testing.T) {
	clip := clipboard.NewMemory("a@b.com")
	w := New(clip, Config{})
	if err := w.poll(); err != nil {
		t.Fatal(err)
	}

	clip.Set("host 10.0.0.1")
	if err := w.poll(); err != nil {
		t.Fatal(err)
	}
	got, _ := clip.Read()
	if got != "host <IP>" {
		t.Errorf("clipboard = %q, want %q", got, "host <IP>")
	}
	if clip.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", clip.Writes())
	}
}

func TestPoll_SameResultNotRewritten(t *testing.T) {
	clip := clipboard.NewMemory("a@b.com")
	w := New(clip, Config{})
	if err := w.poll(); err != nil {
		t.Fatal(err)
	}
	// A different address scrubs to the same text already written.
	clip.Set("c@d.com")
	if err := w.poll(); err != nil {
		t.Fatal(err)
	}
	if clip.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", clip.Writes())
	}
}

func TestPoll_OptionsReadEachTime(t *testing.T) {
	clip := clipboard.NewMemory("a@b.com")
	stable := false
	w := New(clip, Config{Options: func() redact.Options {
		return redact.Options{StablePlaceholders: stable}
	}})
	if err := w.poll(); err != nil {
		t.Fatal(err)
	}

	stable = true
	clip.Set("x@y.com")
	if err := w.poll(); err != nil {
		t.Fatal(err)
	}
	got, _ := clip.Read()
	if got != "<EMAIL_1>" {
		t.Errorf("clipboard = %q, want <EMAIL_1>", got)
	}
}

func TestRun_ReadErrorStops(t *testing.T) {
	clip := clipboard.NewMemory("")
	clip.ReadErr = errors.New("no display")
	err := New(clip, Config{}).Run(context.Background())
	if !errors.Is(err, clipboard.ErrRead) {
		t.Errorf("Run error = %v, want ErrRead", err)
	}
}

func TestRun_WriteErrorStops(t *testing.T) {
	clip := clipboard.NewMemory("a@b.com")
	clip.WriteErr = errors.New("read-only")
	err := New(clip, Config{}).Run(context.Background())
	if !errors.Is(err, clipboard.ErrWrite) {
		t.Errorf("Run error = %v, want ErrWrite", err)
	}
}

func TestRun_CallbackErrorStops(t *testing.T) {
	stop := errors.New("stop")
	clip := clipboard.NewMemory("a@b.com")
	err := New(clip, Config{OnScrub: func(redact.Result) error { return stop }}).Run(context.Background())
	if !errors.Is(err, stop) {
		t.Errorf("Run error = %v, want %v", err, stop)
	}
}

func TestRun_CancelReturnsNil(t *testing.T) {
	clip := clipboard.NewMemory("token-free text")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- New(clip, Config{Interval: MinInterval}).Run(ctx) }()

	clip.Set("ping 192.168.1.1")
	time.Sleep(3 * MinInterval)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if got, _ := clip.Read(); got != "ping <IP>" {
		t.Errorf("clipboard = %q, want %q", got, "ping <IP>")
	}
}
