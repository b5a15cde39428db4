package text

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Width returns the visible display width of a string (excluding ANSI codes).
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// SingleLine trims trailing line breaks and turns any other control
// characters (newlines, tabs, carriage returns) into spaces, so the result
// occupies one row and every rune is counted by Width.
func SingleLine(s string) string {
	s = strings.TrimRight(s, "\r\n")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}
