package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/braindump/internal/app"
	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/cli/formatter"
	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *App) *cobra.Command {
	var capFlag aiCapacityValue
	var replace, stream bool

	cmd := &cobra.Command{
		Use:   "dump [text...]",
		Short: "Compress a brain dump into a short, doable task list",
		Long: `Compress free-form text into a handful of concrete tasks and save them.

Text comes from the arguments or, when none are given, from stdin:

  braindump dump "email landlord, laundry, call mom, taxes"
  pbpaste | braindump dump --capacity light`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			text, err := readTextInput(cmd, args)
			if err != nil {
				return err
			}

			c, err := resolveDumpCapacity(ctx, a, capFlag.Capacity())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if stream {
				return streamDump(ctx, a, out, text, c)
			}

			stop := func() {}
			if a.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Untangling your thoughts...")
			}
			res, err := a.Plan.BrainDump(ctx, app.BrainDumpRequest{Text: text, Capacity: c, Replace: replace})
			stop()
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatCompressedTasks(domain.TasksOf(res.Tasks)))
			fmt.Fprintln(out)
			if c != nil {
				fmt.Fprintf(out, "%s\n", formatter.Dim(fmt.Sprintf("A %s day fits up to %d tasks.", *c, capacity.MaxTasks(*c))))
			}
			fmt.Fprint(out, formatter.FormatNudges(res.Nudges))
			fmt.Fprintf(out, "Saved %d tasks. Run `braindump schedule` to lay out your day.\n", len(res.Tasks))
			return nil
		},
	}

	addAICapacityFlag(cmd.Flags(), &capFlag)
	cmd.Flags().BoolVar(&replace, "replace", false, "Clear the current task list first")
	cmd.Flags().BoolVar(&stream, "stream", false, "Print the raw AI output as it arrives without saving")

	return cmd
}

// resolveDumpCapacity prefers the flag, then an interactive pick, then the
// capacity stored for today. Nil means no limit.
func resolveDumpCapacity(ctx context.Context, a *App, flag *domain.AICapacity) (*domain.AICapacity, error) {
	if flag != nil {
		return flag, nil
	}
	counters, err := a.Day.Counters(ctx)
	if err != nil {
		return nil, err
	}
	if counters.Capacity != nil || !a.interactive() {
		return counters.Capacity, nil
	}

	picked := domain.CapacityMedium
	if err := capacityForm(&picked).Run(); err != nil {
		return nil, err
	}
	if err := a.Day.SetCapacity(ctx, picked); err != nil {
		return nil, err
	}
	return &picked, nil
}

func streamDump(ctx context.Context, a *App, out io.Writer, text string, c *domain.AICapacity) error {
	rc, err := a.Plan.StreamCompress(ctx, text, c)
	if err != nil {
		return err
	}
	defer rc.Close()
	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("reading stream: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}
