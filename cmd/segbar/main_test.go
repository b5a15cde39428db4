package main

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/segbar/style"
)

func TestSetColor(t *testing.T) {
	old := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })

	for _, mode := range []string{"auto", "always", "never"} {
		if err := setColor(mode); err != nil {
			t.Errorf("setColor(%q): %v", mode, err)
		}
	}
	if err := setColor("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestDetectWidthFallbacks(t *testing.T) {
	// Point the size lookup at a pipe so a terminal running the tests is ignored.
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	old := stdoutFd
	stdoutFd = w.Fd
	t.Cleanup(func() { stdoutFd = old })

	t.Setenv("COLUMNS", "132")
	if got := detectWidth(); got != 132 {
		t.Errorf("got %d, want 132", got)
	}

	t.Setenv("COLUMNS", "wide")
	if got := detectWidth(); got != 80 {
		t.Errorf("got %d, want 80", got)
	}
}

func TestDefaultBarRenders(t *testing.T) {
	b := defaultBar(style.DefaultStyles(), nil)
	if b.Line(100) == "" {
		t.Error("expected a non-empty line")
	}
}
