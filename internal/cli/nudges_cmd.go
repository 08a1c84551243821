package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNudgesCmd(a *App) *cobra.Command {
	var endOfDay bool

	cmd := &cobra.Command{
		Use:   "nudges",
		Short: "Show gentle reminders for where your day stands",
		RunE: func(cmd *cobra.Command, args []string) error {
			nudges, err := a.Nudges.Check(context.Background(), a.now(), endOfDay)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(nudges) == 0 {
				fmt.Fprintln(out, formatter.Dim("Nothing to flag. Keep going."))
				return nil
			}
			fmt.Fprint(out, formatter.FormatNudges(nudges))
			return nil
		},
	}

	cmd.Flags().BoolVar(&endOfDay, "end-of-day", false, "Include the end-of-day wrap-up")

	return cmd
}
