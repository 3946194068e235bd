package session

import (
	"strings"

	"github.com/fitjournal/fitjournal/internal/model"
	"github.com/fitjournal/fitjournal/internal/output"
)

// render prints the screen or prompt for state.
func (s *Session) render(state State) {
	switch state {
	case StateHome:
		s.renderHome()
	case StateLogType:
		s.out.Println()
		s.out.Banner("LOG YOUR WORKOUT")
		s.out.Println(MsgWorkoutTypeIntro)
		for i, label := range model.WorkoutTypes {
			s.out.Option(choiceKey(i), label)
		}
		s.out.Option(model.ChoiceOther, "Other")
		s.out.Print(PromptChoice)
	case StateLogCustomType:
		s.out.Print(PromptCustomType)
	case StateLogDate:
		s.out.Print(PromptDate)
	case StateLogDuration:
		s.out.Print(PromptDuration)
	case StateLogNotes:
		s.out.Print(PromptNotes)
	case StateHistory:
		s.out.Println()
		s.out.Banner("WORKOUT HISTORY")
	case StateTips:
		s.renderTips()
	case StateMoreTips:
		s.renderMoreTips()
	case StateConfirmExit:
		s.out.Println()
		s.out.Banner("EXIT PROGRAM")
		s.out.Println(MsgExitConfirm)
		s.out.Option("1", "Yes")
		s.out.Option("2", "No")
		s.out.Println(strings.Repeat("-", output.RuleWidth))
		s.out.Warning(MsgExitCaution)
		s.out.Print(PromptChoice)
	}
}

func (s *Session) renderHome() {
	s.out.Println()
	s.out.Banner("Welcome to " + AppTitle + "!")
	s.out.Println("Features:")
	for _, feature := range homeFeatures {
		s.out.Println("- " + feature)
	}
	s.out.Println()
	s.out.Title("Choose an option:")
	for i, label := range homeOptions {
		s.out.Option(choiceKey(i), label)
	}
	s.out.Print(PromptChoice)
}

func (s *Session) renderTips() {
	s.out.Println()
	s.out.Banner("FITNESS TIPS")
	for i, tip := range Tips {
		s.out.Printf("Tip #%d: %s\n", i+1, tip)
	}
	s.out.Println()
	s.out.Option("1", "More Tips")
	s.out.Option("2", "Return to Home Screen")
	s.out.Print(PromptChoice)
}

func (s *Session) renderMoreTips() {
	s.out.Println()
	s.out.Banner("ADDITIONAL TIPS")
	for _, category := range MoreTips {
		s.out.Title(category.Name + ":")
		for _, tip := range category.Tips {
			s.out.Println("- " + tip)
		}
		s.out.Println()
	}
	s.out.Option("1", "Back to Fitness Tips")
	s.out.Option("2", "Return to Home Screen")
	s.out.Print(PromptChoice)
}

// choiceKey is the menu key for the option at index i.
func choiceKey(i int) string {
	return string(rune('1' + i))
}
