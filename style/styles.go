package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the built-in modules and separators.
// Styles only set colors and attributes; padding, margins or borders would make
// the rendered width disagree with the plain width.
type Styles struct {
	// Separators
	Separator lipgloss.Style
	Bracket   lipgloss.Style

	// Modules
	Clock       lipgloss.Style
	Battery     lipgloss.Style
	BatteryLow  lipgloss.Style
	Charging    lipgloss.Style
	Network     lipgloss.Style
	NetworkDown lipgloss.Style
	Load        lipgloss.Style
	LoadHigh    lipgloss.Style

	// Misc
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Bracket: lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true),

		Clock: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Battery: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")), // Muted green
		BatteryLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Charging: lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")), // Muted yellow
		Network: lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")),
		NetworkDown: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray (subtle)
		Load: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		LoadHigh: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")),
	}
}

// Named returns a style for a color name or ANSI/hex code, as accepted by
// lipgloss.Color. Used by scripted modules that pick colors at runtime.
func Named(fg, bg string, bold bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		s = s.Background(lipgloss.Color(bg))
	}
	if bold {
		s = s.Bold(true)
	}
	return s
}
