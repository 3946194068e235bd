// Package tui provides the terminal history viewer for fitjournal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the history viewer.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the viewer title.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for counts and timestamps next to the title.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleIndex is used for the entry numbers.
	StyleIndex = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleType is used for workout type names in the summary.
	StyleType = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleCount is used for per-type counts.
	StyleCount = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StyleWarning is used for status messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// StyleBox frames the entry list and the summary.
var StyleBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// ProgressBar renders a bar filled to percentage of width.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(ColorSecondary)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", empty))
}

// HelpBar renders the key bindings line.
func HelpBar() string {
	keys := []struct{ key, desc string }{
		{"↑/k", "up"},
		{"↓/j", "down"},
		{"r", "refresh"},
		{"q", "quit"},
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
	}
	return strings.Join(parts, "  ")
}
