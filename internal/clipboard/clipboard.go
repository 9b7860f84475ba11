// Package clipboard reads and writes the system clipboard. The system
// backend is github.com/atotto/clipboard, which shells out to pbpaste/pbcopy,
// wl-paste/wl-copy, xclip or xsel, and uses the Windows API directly.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// Sentinel errors. Backend failures wrap ErrRead or ErrWrite together with
// the underlying cause.
var (
	ErrUnavailable = errors.New("no clipboard backend available")
	ErrRead        = errors.New("clipboard read failed")
	ErrWrite       = errors.New("clipboard write failed")
)

// Clipboard is a text clipboard.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Available reports whether the system clipboard has a usable backend.
func Available() bool {
	return !clipboard.Unsupported
}

// System returns the host clipboard.
func System() Clipboard {
	return systemClipboard{}
}

type systemClipboard struct{}

func (systemClipboard) Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, err)
	}
	return text, nil
}

func (systemClipboard) Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Memory is an in-process Clipboard. ReadErr and WriteErr, when set, are
// returned wrapped in ErrRead and ErrWrite.
type Memory struct {
	mu       sync.Mutex
	text     string
	writes   int
	ReadErr  error
	WriteErr error
}

// NewMemory returns a Memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return "", fmt.Errorf("%w: %w", ErrRead, m.ReadErr)
	}
	return m.text, nil
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return fmt.Errorf("%w: %w", ErrWrite, m.WriteErr)
	}
	m.text = text
	m.writes++
	return nil
}

// Set replaces the contents as another application would, without counting
// as a write.
func (m *Memory) Set(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}

// Writes returns how many times Write succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
