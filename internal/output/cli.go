package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleWidth is the width of the "=" rules framing screen titles.
const RuleWidth = 40

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleRule = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleOptionKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	styleIndex = lipgloss.NewStyle().
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Rule prints a full-width "=" rule.
func (c *CLIFormatter) Rule() {
	c.Println(c.render(styleRule, strings.Repeat("=", RuleWidth)))
}

// Banner prints a title framed by rules, centered within RuleWidth.
func (c *CLIFormatter) Banner(title string) {
	c.Rule()
	c.Println(c.render(styleTitle, Center(title, RuleWidth)))
	c.Rule()
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Option prints a numbered menu option as "[key] label".
func (c *CLIFormatter) Option(key, label string) {
	c.Printf("%s %s\n", c.render(styleOptionKey, "["+key+"]"), label)
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// PrintHistory prints history lines numbered from 1 as "<i>. <line>".
func (c *CLIFormatter) PrintHistory(lines []string) {
	for i, line := range lines {
		c.Printf("%s %s\n", c.render(styleIndex, strconv.Itoa(i+1)+"."), line)
	}
}

// Center left-pads text so it sits in the middle of width columns.
// Text wider than width is returned unchanged.
func Center(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + text
}
