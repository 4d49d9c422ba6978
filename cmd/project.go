package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/adapters/export"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
)

var projectDescription string

// projectCmd groups the project subcommands.
var projectCmd = &cobra.Command{
	Use:     "project",
	Aliases: []string{"p"},
	Short:   "Manage projects",
	Long:    `Add, edit, select and list projects. Indexes are zero-based, as shown by "project list".`,
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a project",
	RunE: func(cmd *cobra.Command, args []string) error {
		name := joinArgs(args)
		if name == "" && projectDescription == "" {
			if err := app.focus.Execute(cmd.Context(), ports.Command{Kind: ports.CmdProjectAdd}); err != nil {
				return err
			}
			return printProjectAdded(cmd, app.focus.State().Projects)
		}
		if _, err := app.focus.AddNamedProject(cmd.Context(), name, projectDescription); err != nil {
			return err
		}
		return printProjectAdded(cmd, app.focus.State().Projects)
	},
}

func printProjectAdded(cmd *cobra.Command, projects []domain.ProjectState) error {
	p := projects[len(projects)-1]
	if jsonOutput {
		return printJSON(cmd, map[string]interface{}{"index": p.Index, "id": p.ID, "name": p.Name})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Project added: [%d] %s\n", p.Index, p.DisplayName())
	return nil
}

var projectRemoveCmd = &cobra.Command{
	Use:     "rm <index>",
	Aliases: []string{"remove"},
	Short:   "Remove a project and its tasks",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdProjectRemove, args[0], "", "🗑️  Project removed")
	},
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <index> <name>",
	Short: "Rename a project",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdProjectRename, args[0], joinArgs(args[1:]), "✏️  Project renamed")
	},
}

var projectDescribeCmd = &cobra.Command{
	Use:   "describe <index> [description]",
	Short: "Set a project description (empty clears it)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdProjectDescribe, args[0], joinArgs(args[1:]), "✏️  Project description set")
	},
}

var projectNoteCmd = &cobra.Command{
	Use:   "note <index> [note]",
	Short: "Set a project note (empty clears it)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdProjectAnnotate, args[0], joinArgs(args[1:]), "📝 Project note set")
	},
}

var projectSelectCmd = &cobra.Command{
	Use:   "select <index>",
	Short: "Make the project at index current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runIndexed(cmd, ports.CmdProjectSelect, args[0], "", ""); err != nil {
			return err
		}
		return printActive(cmd)
	},
}

var projectUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make the project whose name best matches current",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := app.tasks.UseProject(cmd.Context(), joinArgs(args)); err != nil {
			return err
		}
		return printActive(cmd)
	},
}

var projectRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Make a random other project current",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRandom(cmd, ports.CmdProjectRandom)
	},
}

var projectCommitCmd = &cobra.Command{
	Use:   "commit <index> <weekday> <duration>",
	Short: "Set the time commitment of a project for one weekday",
	Long: `Set how much time you want to spend on a project on a given weekday.

The weekday is a name (sunday, mon, ...) or a number from 1 (Sunday) to 7
(Saturday). The duration uses Go syntax, e.g. 1h30m. A zero duration
removes the commitment for that day.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		weekday, err := parseWeekday(args[1])
		if err != nil {
			return err
		}
		d, err := time.ParseDuration(args[2])
		if err != nil {
			return fmt.Errorf("%w: %q", domain.ErrInvalidDuration, args[2])
		}

		c := ports.Command{Kind: ports.CmdProjectCommit, Index: idx, Weekday: weekday, Duration: d}
		if err := app.focus.Execute(cmd.Context(), c); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Fprintf(cmd.OutOrStdout(), "🎯 Commitment for project %d on %s: %s\n", idx, weekdayNames[weekday-1], d)
			return nil
		}
		return printJSON(cmd, map[string]interface{}{
			"index":    idx,
			"weekday":  weekdayNames[weekday-1],
			"duration": d.String(),
		})
	},
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List projects",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := app.focus.State()
		if jsonOutput {
			return printJSON(cmd, map[string]interface{}{
				"projects": export.NewDocument(state).Projects,
				"count":    len(state.Projects),
			})
		}

		out := cmd.OutOrStdout()
		if len(state.Projects) == 0 {
			fmt.Fprintln(out, "No projects yet. Add one with: stayfocused project add <name>")
			return nil
		}
		for _, p := range state.Projects {
			marker := "  "
			if p.Current {
				marker = "▶ "
			}
			line := fmt.Sprintf("%s[%d] %-24s %s", marker, p.Index, p.DisplayName(), domain.FormatHMS(p.TotalTime))
			if p.HasTimeCommitment() {
				line += fmt.Sprintf(" / %s today", domain.FormatHMS(p.CommitmentToday))
				if p.CommitmentMet() {
					line += " ✅"
				}
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectAddCmd, projectRemoveCmd, projectRenameCmd, projectDescribeCmd,
		projectNoteCmd, projectSelectCmd, projectUseCmd, projectRandomCmd, projectCommitCmd, projectListCmd)

	projectAddCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "Project description")
}

var weekdayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// parseWeekday accepts a weekday number (1 = Sunday) or a name or
// unambiguous prefix of at least three letters.
func parseWeekday(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, n)
		}
		return n, nil
	}
	if len(s) >= 3 {
		for i, name := range weekdayNames {
			if strings.HasPrefix(name, s) {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrInvalidWeekday, s)
}

// runIndexed executes a command addressed by an index argument and prints done.
func runIndexed(cmd *cobra.Command, kind ports.CommandKind, index, text, done string) error {
	idx, err := parseIndex(index)
	if err != nil {
		return err
	}
	if err := app.focus.Execute(cmd.Context(), ports.Command{Kind: kind, Index: idx, Text: text}); err != nil {
		return err
	}
	if done == "" {
		return nil
	}
	if jsonOutput {
		return printJSON(cmd, map[string]interface{}{"command": string(kind), "index": idx})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", done, idx)
	return nil
}

// runRandom executes a random selection and prints the result. A selection
// with a single candidate leaves the current item in place and is only
// reported as a notice.
func runRandom(cmd *cobra.Command, kind ports.CommandKind) error {
	err := app.focus.Execute(cmd.Context(), ports.Command{Kind: kind})
	if errors.Is(err, domain.ErrSelectionNoop) {
		fmt.Fprintf(cmd.ErrOrStderr(), "ℹ️  Nothing else to pick: %v\n", err)
	} else if err != nil {
		return err
	}
	return printActive(cmd)
}

// printActive prints the current project and task.
func printActive(cmd *cobra.Command) error {
	state := app.focus.State()
	p := state.ActiveProject()
	t := state.ActiveTask()

	if jsonOutput {
		result := map[string]interface{}{"project": nil, "task": nil}
		if p != nil {
			result["project"] = map[string]interface{}{"index": p.Index, "name": p.Name}
		}
		if t != nil {
			result["task"] = map[string]interface{}{"index": t.Index, "name": t.Name}
		}
		return printJSON(cmd, result)
	}

	out := cmd.OutOrStdout()
	if p == nil {
		fmt.Fprintln(out, "No current project")
		return nil
	}
	fmt.Fprintf(out, "📁 Project: [%d] %s\n", p.Index, p.DisplayName())
	if t != nil {
		fmt.Fprintf(out, "📋 Task:    [%d] %s\n", t.Index, t.DisplayName())
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
