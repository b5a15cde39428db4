package text

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// withProfile forces a lipgloss color profile for the duration of a test.
func withProfile(t *testing.T, p termenv.Profile) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(p)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

func TestZeroColoredIsEmpty(t *testing.T) {
	var c Colored
	if c.Plain() != "" || c.Decorated() != "" || c.Width() != 0 || !c.IsEmpty() {
		t.Errorf("zero Colored not empty: %+v", c)
	}
}

func TestColoredDecoratedKeepsPlainWidth(t *testing.T) {
	withProfile(t, termenv.TrueColor)

	st := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true)
	c := New("CPU 12%", st)

	if c.Plain() != "CPU 12%" {
		t.Errorf("plain = %q", c.Plain())
	}
	if !strings.Contains(c.Decorated(), "\x1b[") {
		t.Errorf("expected escape codes in %q", c.Decorated())
	}
	if StripANSI(c.Decorated()) != c.Plain() {
		t.Errorf("stripped decorated %q != plain %q", StripANSI(c.Decorated()), c.Plain())
	}
	if c.Width() != 7 || Width(c.Decorated()) != 7 {
		t.Errorf("width = %d / %d, want 7", c.Width(), Width(c.Decorated()))
	}
}

func TestColoredAsciiProfileIsPlain(t *testing.T) {
	withProfile(t, termenv.Ascii)

	c := New("[", lipgloss.NewStyle().Foreground(lipgloss.Color("62")))
	if c.Decorated() != "[" {
		t.Errorf("got %q, want %q", c.Decorated(), "[")
	}
}

func TestNewDropsEmbeddedEscapes(t *testing.T) {
	c := Plain("\x1b[31mred\x1b[0m")
	if c.Plain() != "red" || c.Decorated() != "red" {
		t.Errorf("got plain %q decorated %q", c.Plain(), c.Decorated())
	}
}

func TestEmptyStyledRendersNothing(t *testing.T) {
	withProfile(t, termenv.TrueColor)

	c := New("", lipgloss.NewStyle().Background(lipgloss.Color("1")))
	if c.Decorated() != "" {
		t.Errorf("got %q, want empty", c.Decorated())
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"\x1b[1;32mok\x1b[0m", 2},
		{"日本", 4},
		{"\x1b[38;5;240m | \x1b[0m", 3},
	}
	for _, tt := range tests {
		if got := Width(tt.in); got != tt.want {
			t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSingleLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"42%\n", "42%"},
		{"up\ndown\tx", "up down x"},
		{"a\r\nb\n\n", "a  b"},
		{"bell\a", "bell "},
	}
	for _, tt := range tests {
		if got := SingleLine(tt.in); got != tt.want {
			t.Errorf("SingleLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	c := New("up\ndown\tx", lipgloss.NewStyle())
	if c.Plain() != "up down x" || c.Width() != 9 {
		t.Errorf("New kept control characters: %q width %d", c.Plain(), c.Width())
	}
}
