// Package validate provides input validation helpers for the fitjournal CLI.
package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/fitjournal/fitjournal/internal/errors"
)

const (
	// MaxFieldLength is the maximum length of a free-text entry field.
	MaxFieldLength = 4096
)

// SingleLine validates that a free-text field fits on one history line.
// Newlines, carriage returns and NUL bytes would split or corrupt the record.
func SingleLine(field, value string) error {
	if strings.ContainsAny(value, "\n\r\x00") {
		return fieldError(field, value, "must be a single line",
			"Remove line breaks and control characters")
	}
	if utf8.RuneCountInString(value) > MaxFieldLength {
		return fieldError(field, value, "too long",
			"Fields must be 4096 characters or fewer")
	}
	return nil
}

// Required validates that a field is present and fits on one line.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		ue := errors.NewUserError(field+" cannot be empty", "Provide a value for --"+field)
		ue.Field = field
		ue.Cause = errors.ErrInvalidField
		return ue
	}
	return SingleLine(field, value)
}

// Entry validates the fields of a workout supplied outside the menus.
func Entry(workoutType, duration, notes string) error {
	if err := Required("type", workoutType); err != nil {
		return err
	}
	if err := Required("duration", duration); err != nil {
		return err
	}
	return SingleLine("notes", notes)
}

func fieldError(field, value, message, suggestion string) error {
	ue := errors.NewUserErrorWithField(field, value, field+" "+message, suggestion)
	ue.Cause = errors.ErrInvalidField
	return ue
}
