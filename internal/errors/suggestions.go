package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidOption:    "Enter one of the numbers shown in the menu.",
	ErrInvalidDate:      "Use the YYYY-MM-DD format, e.g. 2024-01-28.",
	ErrInvalidField:     "Keep values on a single line without control characters.",
	ErrNoHistory:        "Log a workout first with option [1] from the home screen.",
	ErrUnknownStore:     "Use --store file or --store badger.",
	ErrDiskFull:         "Free up disk space and try logging the workout again.",
	ErrPermissionDenied: "Check that the history file and its directory are writable.",
	ErrInputClosed:      "Run fitjournal from an interactive terminal, or use 'fitjournal log'.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}
