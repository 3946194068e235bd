package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/session"
)

// historyCmd prints the workout history once.
var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h", "ls"},
	Short:   "Print the workout history",
	Long: `Print every logged workout, numbered from 1 in the order it was logged.

Examples:
  fitjournal history
  fitjournal history --format json
  fitjournal --file ~/gym.txt history`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	lines, err := ctx.History.ReadAll(cmd.Context())
	if err != nil && !errors.Is(err, errors.ErrNoHistory) {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHistory(lines)
	}

	cli := ctx.CLIFormatter()
	switch {
	case err != nil:
		cli.Muted(session.MsgNoHistory)
	case len(lines) == 0:
		cli.Muted(session.MsgNoWorkouts)
	default:
		display := make([]string, len(lines))
		for i, line := range lines {
			display[i] = strings.TrimSpace(line)
		}
		cli.PrintHistory(display)
	}
	return nil
}
