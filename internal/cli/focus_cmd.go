package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/braindump/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newFocusCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Track a focus session; opens a live view in a terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if !a.interactive() {
				return printFocusStatus(ctx, cmd.OutOrStdout(), a)
			}
			counters, err := a.Day.Counters(ctx)
			if err != nil {
				return err
			}
			if counters.FocusStartedAt == nil {
				if err := a.Day.StartFocus(ctx, a.now()); err != nil {
					return err
				}
			}
			_, err = tea.NewProgram(newFocusModel(a), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start (or restart) a focus session",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Day.StartFocus(context.Background(), a.now()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Focus session started. You've got this.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "stop",
			Short: "End the focus session",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Day.StopFocus(context.Background()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Focus session ended.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "break",
			Short: "Log a break",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.Day.TakeBreak(context.Background(), a.now()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Break logged. Stretch, hydrate, look at something far away.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show focus time and nudges",
			RunE: func(cmd *cobra.Command, args []string) error {
				return printFocusStatus(context.Background(), cmd.OutOrStdout(), a)
			},
		},
	)

	return cmd
}

func printFocusStatus(ctx context.Context, out io.Writer, a *App) error {
	now := a.now()
	counters, err := a.Day.Counters(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, focusSummary(counters.FocusMinutes(now), counters.MinutesSinceBreak(now)))

	nudges, err := a.Nudges.Check(ctx, now, false)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatter.FormatNudges(nudges))
	return nil
}

func focusSummary(focus, sinceBreak *int) string {
	if focus == nil {
		return formatter.Dim("No focus session running. Start one with `braindump focus start`.")
	}
	s := fmt.Sprintf("Focused for %s", formatter.Bold(formatter.FormatMinutes(float64(*focus))))
	if sinceBreak != nil && *sinceBreak != *focus {
		s += formatter.Dim(fmt.Sprintf(" · %s since your last break", formatter.FormatMinutes(float64(*sinceBreak))))
	}
	return s
}

// focusPollInterval is how often the live view re-checks nudges.
const focusPollInterval = time.Minute
