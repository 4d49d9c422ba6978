package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

// viewCmd sets the view the focus screen opens with.
var viewCmd = &cobra.Command{
	Use:       "view <task|project|project_list>",
	Short:     "Set the active view",
	Long:      `Set the view the focus screen shows: the current task, the current project, or the project list.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ViewTask), string(domain.ViewProject), string(domain.ViewProjectList)},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := domain.ValidateView(args[0])
		if err != nil {
			return err
		}
		if err := app.focus.Execute(cmd.Context(), ports.Command{Kind: ports.CmdViewSwitch, Text: string(v)}); err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, map[string]interface{}{"view": string(v)})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "👁️  View: %s\n", v.Label())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
