package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/domain"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current status",
	Long:  `Display the current project and task with their tracked time and today's commitment.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := app.state.GetCurrentState(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get current state: %w", err)
		}

		if jsonOutput {
			return outputStatusJSON(cmd, state)
		}
		return outputStatusText(cmd, state)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func outputStatusText(cmd *cobra.Command, state *domain.CurrentState) error {
	out := cmd.OutOrStdout()

	p := state.ActiveProject()
	if p == nil {
		fmt.Fprintln(out, "No projects yet. Add one with: stayfocused project add <name>")
		return nil
	}

	fmt.Fprintf(out, "📁 Project:    %s\n", p.DisplayName())
	fmt.Fprintf(out, "⏱️  Total:      %s\n", domain.FormatHMS(p.TotalTime))
	if p.HasTimeCommitment() {
		status := "in progress"
		if p.CommitmentMet() {
			status = "met ✅"
		}
		fmt.Fprintf(out, "🎯 Commitment: %s today (%s)\n", domain.FormatHMS(p.CommitmentToday), status)
	}

	t := state.ActiveTask()
	if t == nil {
		fmt.Fprintln(out, "📋 Task:       none")
		return nil
	}
	fmt.Fprintf(out, "📋 Task:       %s (%s)\n", t.DisplayName(), t.ElapsedHMS)
	if t.Note != "" {
		fmt.Fprintf(out, "📝 Note:       %s\n", t.Note)
	}
	fmt.Fprintf(out, "👁️  View:       %s\n", state.View.Label())
	return nil
}

// outputStatusJSON outputs the status in JSON format
func outputStatusJSON(cmd *cobra.Command, state *domain.CurrentState) error {
	result := map[string]interface{}{
		"view":           string(state.View),
		"active_project": nil,
		"active_task":    nil,
	}

	if p := state.ActiveProject(); p != nil {
		result["active_project"] = map[string]interface{}{
			"index":            p.Index,
			"id":               p.ID,
			"name":             p.Name,
			"total":            domain.FormatHMS(p.TotalTime),
			"commitment_today": p.CommitmentToday.String(),
			"commitment_met":   p.CommitmentMet(),
		}
	}

	if t := state.ActiveTask(); t != nil {
		result["active_task"] = map[string]interface{}{
			"index":       t.Index,
			"id":          t.ID,
			"name":        t.Name,
			"description": t.Description,
			"note":        t.Note,
			"elapsed":     t.ElapsedHMS,
		}
	}

	return printJSON(cmd, result)
}
