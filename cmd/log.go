package cmd

import (
	stderrors "errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/fitjournal/fitjournal/internal/model"
	"github.com/fitjournal/fitjournal/internal/parser"
	"github.com/fitjournal/fitjournal/internal/validate"
)

// Log command flags.
var (
	logFlagType     string
	logFlagDuration string
	logFlagDate     string
	logFlagNotes    string
)

// logCmd appends one workout without going through the menus.
var logCmd = &cobra.Command{
	Use:     "log --type TYPE --duration MINUTES [--date DATE] [--notes NOTES]",
	Aliases: []string{"l", "add"},
	Short:   "Log a workout without the menus",
	Long: `Log a single workout non-interactively. The entry is written in exactly
the same format as one logged from the menus.

--type takes a workout name, or a menu number (1 Running, 2 Yoga,
3 Cycling, 4 Swimming). --date accepts YYYY-MM-DD or phrases like
"yesterday" and "3 days ago"; it defaults to today.

Examples:
  fitjournal log --type Running --duration 30
  fitjournal log --type 2 --duration 45 --date 2024-01-28
  fitjournal log --type "Rock Climbing" --duration 90 --date yesterday --notes "felt great"`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVarP(&logFlagType, "type", "t", "", "Workout type or menu number")
	logCmd.Flags().StringVarP(&logFlagDuration, "duration", "d", "", "Duration in minutes")
	logCmd.Flags().StringVar(&logFlagDate, "date", "today", "Workout date")
	logCmd.Flags().StringVarP(&logFlagNotes, "notes", "n", "", "Optional notes")

	logCmd.RegisterFlagCompletionFunc("type", completeWorkoutTypes)

	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	workoutType := logFlagType
	if label, ok := model.TypeForChoice(workoutType); ok {
		workoutType = label
	}

	if err := validate.Entry(workoutType, logFlagDuration, logFlagNotes); err != nil {
		return err
	}

	date, err := parser.ParseNaturalDate(logFlagDate, time.Now())
	if err != nil {
		var dateErr *parser.DateParseError
		if stderrors.As(err, &dateErr) {
			return dateErr.ToUserError()
		}
		return err
	}

	entry := model.NewEntry(date, workoutType, logFlagDuration, logFlagNotes)
	if err := ctx.History.Append(cmd.Context(), entry); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintLogged(entry)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Workout saved to " + ctx.History.Name() + ".")
	cli.Println("You logged: " + entry.String())
	return nil
}

// completeWorkoutTypes offers the fixed workout types.
func completeWorkoutTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return model.WorkoutTypes, cobra.ShellCompDirectiveNoFileComp
}
