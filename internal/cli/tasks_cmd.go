package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTasksCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"t"},
		Short:   "Manage the saved task list",
	}

	cmd.AddCommand(
		newTasksListCmd(a),
		newTasksDoneCmd(a),
		newTasksUndoCmd(a),
		newTasksRemoveCmd(a),
		newTasksClearCmd(a),
	)

	return cmd
}

func newTasksListCmd(a *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := a.Tasks.List(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")

	return cmd
}

func newTasksDoneCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Tasks.Complete(context.Background(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✓"), res.Task.Title)
			if res.Nudge != nil {
				fmt.Fprintln(out, formatter.FormatNudge(*res.Nudge))
			}
			return nil
		},
	}
}

func newTasksUndoCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id>",
		Short: "Reopen a completed task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.Tasks.Reopen(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reopened %s\n", task.Title)
			return nil
		},
	}
}

func newTasksRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := a.Tasks.Remove(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", task.Title)
			return nil
		},
	}
}

func newTasksClearCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !a.interactive() {
					return errors.New("refusing to clear without --yes")
				}
				if err := confirmForm("Clear every task?", &yes).Run(); err != nil {
					return err
				}
				if !yes {
					return nil
				}
			}
			n, err := a.Tasks.Clear(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d tasks. Fresh start.\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
