package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/adapters/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export projects and tracked time",
	Long:  "Export all projects, tasks and tracked time as json, yaml, md or csv.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := export.Write(w, format, app.focus.State()); err != nil {
			return err
		}
		if exportOutput != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "📦 Exported to %s\n", exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, yaml, md or csv")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
}
