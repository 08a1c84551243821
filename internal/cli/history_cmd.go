package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(a *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your recent brain dumps",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}
			dumps, err := a.Plan.RecentDumps(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDumpHistory(dumps, a.now()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "How many dumps to show")

	return cmd
}
