package parser

import (
	"fmt"
	"strings"

	"github.com/fitjournal/fitjournal/internal/errors"
)

// DateParseError represents a date parsing error with helpful examples.
type DateParseError struct {
	Input      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date '%s': %s", e.Input, e.Message)
}

// Unwrap ties every date parse failure to errors.ErrInvalidDate.
func (e *DateParseError) Unwrap() error {
	return errors.ErrInvalidDate
}

// FormatWithExamples returns the error message with example suggestions.
func (e *DateParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// DateExamples provides example calendar date formats.
var DateExamples = []string{
	"2024-01-28",
	"2024-1-5",
}

// NaturalDateExamples provides example natural language dates.
var NaturalDateExamples = []string{
	"2024-01-28",
	"today",
	"yesterday",
	"3 days ago",
	"last monday",
}

// NewDateError creates a calendar date parse error with standard examples.
func NewDateError(input, message string) *DateParseError {
	return &DateParseError{
		Input:      input,
		Message:    message,
		Examples:   DateExamples,
		Suggestion: "Enter the date in YYYY-MM-DD format.",
	}
}

// NewNaturalDateError creates a natural language date parse error.
func NewNaturalDateError(input string) *DateParseError {
	return &DateParseError{
		Input:      input,
		Message:    "could not parse date",
		Examples:   NaturalDateExamples,
		Suggestion: "Use YYYY-MM-DD or a phrase like 'yesterday'.",
	}
}

// ToUserError converts a DateParseError to a UserError for consistent handling.
func (e *DateParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if suggestion == "" && len(e.Examples) > 0 {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples, ", "))
	}

	ue := errors.NewUserErrorWithField("date", e.Input, e.Message, suggestion)
	ue.Cause = errors.ErrInvalidDate
	return ue
}
