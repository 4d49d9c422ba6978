package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/adapters/tui"
)

var noAutostart bool

// focusCmd opens the interactive focus view, the only place besides the
// MCP server where time is tracked.
var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Open the focus view and track time",
	Long: `Open the full-screen focus view. The current task starts tracking
unless autostart is disabled; leaving the view stops every tracker and
saves the tracked time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocus(cmd)
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().BoolVar(&noAutostart, "no-autostart", false, "Do not start tracking when the view opens")
}

func runFocus(cmd *cobra.Command) error {
	ctx, cancel := setupSignalHandler(cmd.Context())
	defer cancel()

	return tui.Run(ctx, app.focus, tui.Options{
		TickInterval: time.Duration(app.config.Tracking.TickInterval),
		Autostart:    app.config.Tracking.Autostart && !noAutostart,
		Theme:        &app.config.Theme,
	})
}
