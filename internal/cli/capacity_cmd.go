package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/spf13/cobra"
)

func newCapacityCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Show or set how much you can take on today",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCapacity(cmd, a)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show today's capacity",
			RunE: func(cmd *cobra.Command, args []string) error {
				return showCapacity(cmd, a)
			},
		},
		newCapacitySetCmd(a),
	)

	return cmd
}

func showCapacity(cmd *cobra.Command, a *App) error {
	counters, err := a.Day.Counters(context.Background())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if counters.Capacity == nil {
		fmt.Fprintln(out, formatter.Dim("No capacity set. Run `braindump capacity set`."))
		return nil
	}
	c := *counters.Capacity
	fmt.Fprintf(out, "%s day: up to %d tasks\n", formatter.Bold(string(c)), capacity.MaxTasks(c))
	return nil
}

func newCapacitySetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set [light|medium|full]",
		Short:     "Set today's capacity",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "medium", "full"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var c domain.AICapacity
			switch {
			case len(args) == 1:
				parsed, err := capacity.ParseAICapacity(args[0])
				if err != nil {
					return err
				}
				c = parsed
			case a.interactive():
				c = domain.CapacityMedium
				if err := capacityForm(&c).Run(); err != nil {
					return err
				}
			default:
				return fmt.Errorf("capacity required: one of light, medium, full")
			}

			if err := a.Day.SetCapacity(context.Background(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Capacity set to %s (up to %d tasks)\n", c, capacity.MaxTasks(c))
			return nil
		},
	}
}
