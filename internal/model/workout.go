package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date layout used for entries at rest.
const DateLayout = "2006-01-02"

// NotesSeparator introduces the optional notes field of a serialized entry.
const NotesSeparator = " - Notes: "

// Fixed workout types offered by the log workout menu.
const (
	TypeRunning  = "Running"
	TypeYoga     = "Yoga"
	TypeCycling  = "Cycling"
	TypeSwimming = "Swimming"
)

// ChoiceOther is the menu choice that asks for a free-text workout type.
const ChoiceOther = "5"

// WorkoutTypes lists the fixed types in menu order; choice "1" is index 0.
var WorkoutTypes = []string{TypeRunning, TypeYoga, TypeCycling, TypeSwimming}

// TypeForChoice maps a fixed menu choice ("1".."4") to its workout type label.
func TypeForChoice(choice string) (string, bool) {
	switch choice {
	case "1":
		return TypeRunning, true
	case "2":
		return TypeYoga, true
	case "3":
		return TypeCycling, true
	case "4":
		return TypeSwimming, true
	}
	return "", false
}

// Entry is one recorded workout.
// Duration is kept as the raw text the user typed; it is not validated as a number.
type Entry struct {
	Key      string    `json:"key,omitempty"`
	Date     time.Time `json:"date"`
	Type     string    `json:"type"`
	Duration string    `json:"duration"`
	Notes    string    `json:"notes,omitempty"`
}

// SetKey sets the database key for this entry.
func (e *Entry) SetKey(key string) {
	e.Key = key
}

// GetKey returns the database key for this entry.
func (e *Entry) GetKey() string {
	return e.Key
}

// HasNotes reports whether the entry carries notes.
func (e *Entry) HasNotes() bool {
	return e.Notes != ""
}

// String serializes the entry as a single history line:
// "<date> - <type> - <duration> minutes[ - Notes: <notes>]".
// Delimiters inside free-text fields are not escaped.
func (e *Entry) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s - %s minutes", e.Date.Format(DateLayout), e.Type, e.Duration)
	if e.HasNotes() {
		sb.WriteString(NotesSeparator)
		sb.WriteString(e.Notes)
	}
	return sb.String()
}

// GenerateWorkoutKey generates a database key for an entry from a UUID v7.
func GenerateWorkoutKey(uuid string) string {
	return fmt.Sprintf("%s:%s", PrefixWorkout, uuid)
}

// NewEntry creates a new entry with the given fields.
func NewEntry(date time.Time, workoutType, duration, notes string) *Entry {
	return &Entry{
		Date:     date,
		Type:     workoutType,
		Duration: duration,
		Notes:    notes,
	}
}
