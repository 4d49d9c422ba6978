package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server provides tools to inspect projects and tasks, select them and track time.
Every tracker is stopped and the state saved when the server exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if !app.config.MCP.Enabled {
			return fmt.Errorf("the MCP server is disabled in the config (mcp.enabled)")
		}

		// stdout carries the protocol
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "🚀 Starting MCP server...")
		fmt.Fprintln(errOut, "   The server will communicate via stdio")
		fmt.Fprintln(errOut, "   Press Ctrl+C to stop")

		ctx, cancel := setupSignalHandler(cmd.Context())
		defer cancel()

		defer func() {
			if serr := app.focus.Shutdown(context.WithoutCancel(ctx)); serr != nil && err == nil {
				err = fmt.Errorf("failed to save on exit: %w", serr)
			}
		}()

		server := mcp.NewServer(app.state, Version)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
