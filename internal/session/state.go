package session

// State is a screen or prompt of the interactive session.
type State int

const (
	StateHome State = iota
	StateLogType
	StateLogCustomType
	StateLogDate
	StateLogDuration
	StateLogNotes
	StateHistory
	StateTips
	StateMoreTips
	StateConfirmExit
	StateDone
)

var stateNames = map[State]string{
	StateHome:          "home",
	StateLogType:       "log_type",
	StateLogCustomType: "log_custom_type",
	StateLogDate:       "log_date",
	StateLogDuration:   "log_duration",
	StateLogNotes:      "log_notes",
	StateHistory:       "history",
	StateTips:          "tips",
	StateMoreTips:      "more_tips",
	StateConfirmExit:   "confirm_exit",
	StateDone:          "done",
}

// String returns the state name used in logs.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// NeedsInput reports whether the state reads a line before transitioning.
// The history screen is display-only and Done is terminal.
func (s State) NeedsInput() bool {
	return s != StateHistory && s != StateDone
}

// IsLogging reports whether the state is part of the log workout interaction.
func (s State) IsLogging() bool {
	switch s {
	case StateLogType, StateLogCustomType, StateLogDate, StateLogDuration, StateLogNotes:
		return true
	}
	return false
}
