package clipboard

import (
	"errors"
	"testing"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := NewMemory("hello")
	got, err := m.Read()
	if err != nil || got != "hello" {
		t.Fatalf("Read() = %q, %v, want hello", got, err)
	}

	if err := m.Write("bye"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	m.Set("external")
	got, _ = m.Read()
	if got != "external" {
		t.Errorf("Read() = %q, want external", got)
	}
	if m.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", m.Writes())
	}
}

func TestMemory_ErrorsWrapSentinels(t *testing.T) {
	cause := errors.New("xclip exited 1")
	m := NewMemory("")
	m.ReadErr = cause
	m.WriteErr = cause

	_, err := m.Read()
	if !errors.Is(err, ErrRead) || !errors.Is(err, cause) {
		t.Errorf("Read error %v should wrap ErrRead and the cause", err)
	}
	err = m.Write("x")
	if !errors.Is(err, ErrWrite) || !errors.Is(err, cause) {
		t.Errorf("Write error %v should wrap ErrWrite and the cause", err)
	}
	if m.Writes() != 0 {
		t.Error("failed write should not count")
	}
}

func TestSystem_Unavailable(t *testing.T) {
	if Available() {
		t.Skip("clipboard backend present")
	}
	if _, err := System().Read(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Read error = %v, want ErrUnavailable", err)
	}
	if err := System().Write("x"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Write error = %v, want ErrUnavailable", err)
	}
}

var _ Clipboard = (*Memory)(nil)
