// Package ui provides terminal presentation helpers shared by the CLI:
// TTY detection, a color theme, and progress reporting that degrades to
// plain log lines when no terminal is attached.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors holds the hex colors used by interactive components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme configures component styling.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme. NO_COLOR in the environment disables
// color output.
func NewTheme() *Theme {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Theme{
		Colors: Colors{
			Primary:   "#2496ED",
			Secondary: "#0DB7ED",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
		},
		NoColor: noColor,
	}
}

// Style returns a foreground style for hex, or a plain style when color is
// disabled.
func (t *Theme) Style(hex string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
