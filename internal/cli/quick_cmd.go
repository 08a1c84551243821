package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/alexanderramin/braindump/internal/compression"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/spf13/cobra"
)

func newQuickCmd(a *App) *cobra.Command {
	capFlag := sliceCapacityValue{c: domain.SliceMedium}
	var more int
	var emotional []string

	cmd := &cobra.Command{
		Use:   "quick [text]",
		Short: "Trim a list to what fits your energy, no AI involved",
		Long: `Keep only the first few lines of a list, sized by energy level.

One item per line on stdin, or one per argument. Items named with
--emotional stay visible even when they fall outside the window.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var items []domain.Item
			if len(args) > 0 {
				items = compression.ParseItems(strings.Join(args, "\n"))
			} else {
				text, err := readTextInput(cmd, nil)
				if err != nil {
					return err
				}
				items = compression.ParseItems(text)
			}
			markEmotional(items, emotional)

			visible := compression.PinEmotional(items, compression.CompressItems(capFlag.c, items, more))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatItems(visible))
			if hidden := len(items) - len(visible); hidden > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("  +%d more for another day", hidden)))
			}
			return nil
		},
	}

	cmd.Flags().VarP(&capFlag, "capacity", "c", "Energy level: low, medium or high")
	cmd.Flags().IntVar(&more, "more", 0, "Show this many extra items (capped per level)")
	cmd.Flags().StringSliceVarP(&emotional, "emotional", "e", nil, "Labels of items that must stay visible")

	return cmd
}

func markEmotional(items []domain.Item, labels []string) {
	for _, l := range labels {
		for i := range items {
			if strings.EqualFold(items[i].Label, strings.TrimSpace(l)) {
				items[i].Emotional = true
			}
		}
	}
}
