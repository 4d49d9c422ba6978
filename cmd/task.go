package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/stayfocused/internal/domain"
	"github.com/xvierd/stayfocused/internal/ports"
	"github.com/xvierd/stayfocused/internal/services"
)

var (
	taskDescription string
	taskNote        string
	taskFromBranch  bool
)

// taskCmd groups the task subcommands. Tasks always belong to the current project.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Manage the tasks of the current project",
	Long:    `Add, edit, select and list the tasks of the current project. Indexes are zero-based, as shown by "task list".`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a task to the current project",
	Long: `Add a task to the current project.

With --from-branch and no name, the task is named after the git branch
checked out in the current directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		name := joinArgs(args)

		var idx int
		if name == "" && !taskFromBranch && taskDescription == "" && taskNote == "" {
			if err := app.focus.Execute(ctx, ports.Command{Kind: ports.CmdTaskAdd}); err != nil {
				return err
			}
			idx = len(app.focus.State().ActiveProject().Tasks) - 1
		} else {
			var err error
			idx, err = app.tasks.AddTask(ctx, services.AddTaskRequest{
				Name:        name,
				Description: taskDescription,
				Note:        taskNote,
				FromBranch:  taskFromBranch,
			})
			if err != nil {
				return err
			}
		}

		t := app.focus.State().ActiveProject().Tasks[idx]
		if jsonOutput {
			return printJSON(cmd, map[string]interface{}{"index": t.Index, "id": t.ID, "name": t.Name})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Task added: [%d] %s\n", t.Index, t.DisplayName())
		return nil
	},
}

var taskRemoveCmd = &cobra.Command{
	Use:     "rm <index>",
	Aliases: []string{"remove"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdTaskRemove, args[0], "", "🗑️  Task removed")
	},
}

var taskRenameCmd = &cobra.Command{
	Use:   "rename <index> <name>",
	Short: "Rename a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdTaskRename, args[0], joinArgs(args[1:]), "✏️  Task renamed")
	},
}

var taskDescribeCmd = &cobra.Command{
	Use:   "describe <index> [description]",
	Short: "Set a task description (empty clears it)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdTaskDescribe, args[0], joinArgs(args[1:]), "✏️  Task description set")
	},
}

var taskNoteCmd = &cobra.Command{
	Use:   "note <index> [note]",
	Short: "Set a task note (empty clears it)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIndexed(cmd, ports.CmdTaskAnnotate, args[0], joinArgs(args[1:]), "📝 Task note set")
	},
}

var taskSelectCmd = &cobra.Command{
	Use:   "select <index>",
	Short: "Make the task at index current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runIndexed(cmd, ports.CmdTaskSelect, args[0], "", ""); err != nil {
			return err
		}
		return printActive(cmd)
	},
}

var taskUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Make the task whose name best matches current",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := app.tasks.UseTask(cmd.Context(), joinArgs(args)); err != nil {
			return err
		}
		return printActive(cmd)
	},
}

var taskRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Make a random other task current",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRandom(cmd, ports.CmdTaskRandom)
	},
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the tasks of the current project",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := app.focus.State().ActiveProject()
		if p == nil {
			return fmt.Errorf("task list: %w", domain.ErrNoCurrentItem)
		}

		if jsonOutput {
			var tasks []map[string]interface{}
			for _, t := range p.Tasks {
				tasks = append(tasks, map[string]interface{}{
					"index":       t.Index,
					"id":          t.ID,
					"name":        t.Name,
					"description": t.Description,
					"note":        t.Note,
					"current":     t.Current,
					"elapsed":     t.ElapsedHMS,
				})
			}
			return printJSON(cmd, map[string]interface{}{
				"project": p.Name,
				"tasks":   tasks,
				"count":   len(tasks),
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "📁 %s\n", p.DisplayName())
		if len(p.Tasks) == 0 {
			fmt.Fprintln(out, "  No tasks yet. Add one with: stayfocused task add <name>")
			return nil
		}
		for _, t := range p.Tasks {
			marker := "  "
			if t.Current {
				marker = "▶ "
			}
			fmt.Fprintf(out, "%s[%d] %-32s %s\n", marker, t.Index, t.DisplayName(), t.ElapsedHMS)
			if t.Description != "" {
				fmt.Fprintf(out, "      %s\n", t.Description)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskAddCmd, taskRemoveCmd, taskRenameCmd, taskDescribeCmd,
		taskNoteCmd, taskSelectCmd, taskUseCmd, taskRandomCmd, taskListCmd)

	taskAddCmd.Flags().StringVarP(&taskDescription, "description", "d", "", "Task description")
	taskAddCmd.Flags().StringVarP(&taskNote, "note", "n", "", "Task note")
	taskAddCmd.Flags().BoolVarP(&taskFromBranch, "from-branch", "b", false, "Name the task after the current git branch")
}
