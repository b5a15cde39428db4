package text

import "github.com/charmbracelet/lipgloss"

// Colored is a piece of bar text with both plain and styled forms.
// The zero value is the empty string with no formatting.
type Colored struct {
	plain  string
	style  lipgloss.Style
	styled bool
}

// Plain creates an unformatted Colored.
// ANSI codes are dropped and the text is folded onto one line (see SingleLine).
func Plain(s string) Colored {
	return Colored{plain: SingleLine(StripANSI(s))}
}

// New creates a Colored that renders s through the given style.
// Any ANSI codes already present in s are dropped; formatting comes from style only.
// The text is folded onto one line (see SingleLine).
func New(s string, style lipgloss.Style) Colored {
	return Colored{plain: SingleLine(StripANSI(s)), style: style, styled: true}
}

// Plain returns the text with all formatting removed. Used for width math.
func (c Colored) Plain() string { return c.plain }

// Decorated returns the text with its style applied. Used for output.
func (c Colored) Decorated() string {
	if c.plain == "" || !c.styled {
		return c.plain
	}
	return c.style.Render(c.plain)
}

// Width returns the display width of the plain text.
func (c Colored) Width() int {
	return Width(c.plain)
}

// IsEmpty reports whether the plain text is empty.
func (c Colored) IsEmpty() bool { return c.plain == "" }
