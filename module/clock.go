package module

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/segbar/text"
)

// DefaultClockLayout is the time layout used when Clock.Layout is empty.
const DefaultClockLayout = "Mon 02 Jan 15:04"

// Clock renders the current time.
type Clock struct {
	Layout string
	Style  lipgloss.Style
	Now    func() time.Time // Defaults to time.Now
}

// NewClock creates a clock module with the given layout and style.
func NewClock(layout string, style lipgloss.Style) *Clock {
	return &Clock{Layout: layout, Style: style}
}

// Render implements Module.
func (c *Clock) Render(left, right text.Colored) (Result, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	layout := c.Layout
	if layout == "" {
		layout = DefaultClockLayout
	}
	return Wrap(left, right, text.New(now().Format(layout), c.Style)), nil
}
