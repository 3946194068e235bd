package output

import (
	"github.com/fitjournal/fitjournal/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// HistoryResponse represents the history output in JSON.
// Entries are the stored lines verbatim, in the order they were logged.
type HistoryResponse struct {
	Count   int      `json:"count"`
	Entries []string `json:"entries"`
}

// EntryOutput represents a logged workout in JSON output.
type EntryOutput struct {
	Date     string `json:"date"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Notes    string `json:"notes,omitempty"`
	Line     string `json:"line"`
}

// NewEntryOutput creates an EntryOutput from an Entry.
func NewEntryOutput(e *model.Entry) *EntryOutput {
	return &EntryOutput{
		Date:     e.Date.Format(model.DateLayout),
		Type:     e.Type,
		Duration: e.Duration,
		Notes:    e.Notes,
		Line:     e.String(),
	}
}

// LogResponse represents the log command output in JSON.
type LogResponse struct {
	Status string       `json:"status"`
	Entry  *EntryOutput `json:"entry"`
}

// ErrorResponse represents an error in JSON output.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintHistory outputs the history lines in JSON format.
func (j *JSONFormatter) PrintHistory(lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	return j.JSON(HistoryResponse{Count: len(lines), Entries: lines})
}

// PrintLogged outputs a freshly logged entry in JSON format.
func (j *JSONFormatter) PrintLogged(e *model.Entry) error {
	return j.JSON(LogResponse{Status: "logged", Entry: NewEntryOutput(e)})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
