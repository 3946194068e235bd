// Package session implements the interactive menu loop.
//
// The loop is an explicit state machine: Run renders the current State,
// reads one line when the state needs input, and applies step to get the
// next State. Navigating between screens never grows the call stack, and a
// confirmed exit is returned to the caller instead of ending the process.
package session

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/logging"
	"github.com/fitjournal/fitjournal/internal/model"
	"github.com/fitjournal/fitjournal/internal/output"
	"github.com/fitjournal/fitjournal/internal/parser"
	"github.com/fitjournal/fitjournal/internal/storage"
)

// Session is one interactive run over an input stream.
type Session struct {
	in      *bufio.Reader
	out     *output.CLIFormatter
	history storage.History

	state State
	draft model.Entry
}

// New creates a session that reads lines from in, writes screens to out and
// stores workouts in history.
func New(in io.Reader, out *output.CLIFormatter, history storage.History) *Session {
	return &Session{
		in:      bufio.NewReader(in),
		out:     out,
		history: history,
		state:   StateHome,
	}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Run drives the session until the user confirms exit, in which case it
// returns nil. It returns errors.ErrInputClosed if the input ends first, and
// ctx.Err() if ctx is cancelled between prompts.
func (s *Session) Run(ctx context.Context) error {
	ctx = logging.NewSessionContext(ctx)
	logging.DebugContext(ctx, "session started", logging.KeyStore, s.history.Name())

	for s.state != StateDone {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.render(s.state)

		var input string
		if s.state.NeedsInput() {
			line, err := s.readLine()
			if err != nil {
				logging.DebugContext(ctx, "input ended",
					logging.KeyState, s.state.String(), logging.KeyError, err)
				return err
			}
			input = line
		}

		next := s.step(ctx, s.state, input)
		logging.DebugContext(ctx, "transition",
			logging.KeyState, s.state.String(), logging.KeyNext, next.String())
		s.state = next
	}

	return nil
}

// readLine returns the next line without its line terminator. A final line
// without a newline is still returned; after that, io.EOF becomes
// errors.ErrInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		if line == "" {
			return "", errors.ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// step applies one line of input to state and returns the next state.
// Everything the user sees as a reaction to input is printed here.
func (s *Session) step(ctx context.Context, state State, input string) State {
	switch state {
	case StateHome:
		switch input {
		case "1":
			s.draft = model.Entry{}
			return StateLogType
		case "2":
			return StateHistory
		case "5":
			return StateTips
		case "6":
			return StateConfirmExit
		}
		s.out.Warning(MsgInvalidHome)
		return StateHome

	case StateLogType:
		if label, ok := model.TypeForChoice(input); ok {
			s.draft.Type = label
			return StateLogDate
		}
		if input == model.ChoiceOther {
			return StateLogCustomType
		}
		s.out.Warning(MsgReturningHome)
		return StateHome

	case StateLogCustomType:
		s.draft.Type = input
		return StateLogDate

	case StateLogDate:
		date, err := parser.ParseDate(input)
		if err != nil {
			s.out.Error(MsgInvalidDate)
			return StateLogDate
		}
		s.draft.Date = date
		return StateLogDuration

	case StateLogDuration:
		s.draft.Duration = input
		return StateLogNotes

	case StateLogNotes:
		s.draft.Notes = input
		s.save(ctx)
		return StateHome

	case StateHistory:
		s.showHistory(ctx)
		return StateHome

	case StateTips:
		switch input {
		case "1":
			return StateMoreTips
		case "2":
			return StateHome
		}
		s.out.Warning(MsgInvalidTips)
		return StateTips

	case StateMoreTips:
		switch input {
		case "1":
			return StateTips
		case "2":
			return StateHome
		}
		s.out.Warning(MsgReturningHome)
		return StateHome

	case StateConfirmExit:
		switch input {
		case "1":
			s.out.Println()
			s.out.Success(MsgFarewell)
			return StateDone
		case "2":
			s.out.Muted(MsgRedirectingHome)
			return StateHome
		}
		s.out.Warning(MsgReturningHome)
		return StateHome
	}

	return StateDone
}

// save appends the draft. Failures are reported and the session goes on.
func (s *Session) save(ctx context.Context) {
	entry := s.draft
	s.draft = model.Entry{}

	start := time.Now()
	if err := s.history.Append(ctx, &entry); err != nil {
		logging.DebugContext(ctx, "append failed",
			logging.KeyStore, s.history.Name(), logging.KeyError, err)
		s.out.Error(MsgSaveErrorPrefix + s.history.Name() + ": " + err.Error())
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			s.out.Muted("Try: " + suggestion)
		}
		return
	}
	logging.DebugContext(ctx, "workout saved",
		logging.KeyStore, s.history.Name(), "duration_ms", time.Since(start).Milliseconds())

	s.out.Success("Workout saved to " + s.history.Name() + ".")
	s.out.Println()
	s.out.Println(MsgLoggedPrefix + entry.String())
}

// showHistory prints the stored lines numbered from 1. Read failures are
// reported and swallowed.
func (s *Session) showHistory(ctx context.Context) {
	lines, err := s.history.ReadAll(ctx)
	switch {
	case errors.Is(err, errors.ErrNoHistory):
		s.out.Muted(MsgNoHistory)
	case err != nil:
		logging.DebugContext(ctx, "read failed",
			logging.KeyStore, s.history.Name(), logging.KeyError, err)
		s.out.Error(MsgReadErrorPrefix + err.Error())
		if suggestion := errors.GetSuggestion(err); suggestion != "" {
			s.out.Muted("Try: " + suggestion)
		}
	case len(lines) == 0:
		s.out.Muted(MsgNoWorkouts)
	default:
		display := make([]string, len(lines))
		for i, line := range lines {
			display[i] = strings.TrimSpace(line)
		}
		s.out.PrintHistory(display)
	}
	s.out.Println()
}
