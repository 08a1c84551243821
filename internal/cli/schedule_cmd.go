package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(a *App) *cobra.Command {
	var start string
	var breakMin, maxConsecutive int
	var keepOrder, asJSON bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Lay out today's open tasks with breaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tasks, err := a.Tasks.List(ctx, false)
			if err != nil {
				return err
			}

			var prefs domain.Preferences
			flags := cmd.Flags()
			if flags.Changed("start") {
				prefs.PreferredStartTime = &start
			}
			if flags.Changed("break") {
				prefs.BreakDuration = &breakMin
			}
			if flags.Changed("max-consecutive") {
				prefs.MaxConsecutiveTasks = &maxConsecutive
			}
			if keepOrder {
				alternate := false
				prefs.AlternateHardEasy = &alternate
			}

			plan, err := a.Schedule.PlanTasks(a.now(), domain.TasksOf(tasks), &prefs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}
			fmt.Fprint(out, formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start time as HH:MM (default from config)")
	cmd.Flags().IntVar(&breakMin, "break", 0, "Break length in minutes")
	cmd.Flags().IntVar(&maxConsecutive, "max-consecutive", 0, "Tasks before a forced break")
	cmd.Flags().BoolVar(&keepOrder, "keep-order", false, "Do not interleave hard and easy tasks")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")

	return cmd
}
