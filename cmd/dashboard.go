package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fitjournal/fitjournal/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "tui"},
	Short:   "Browse the workout history in a terminal viewer",
	Long: `Open a read-only terminal viewer for the workout history.

The viewer shows every logged workout and how often each workout type was
logged. It reloads the history every few seconds, so workouts logged from
another terminal show up on their own.

Keyboard Controls:
  up/k   - Scroll up
  down/j - Scroll down
  r      - Refresh now
  q      - Quit

Examples:
  fitjournal dashboard
  fitjournal --store badger tui`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		Context: cmd.Context(),
		History: ctx.History,
	})
}
