package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/braindump/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan     service.PlanService
	Tasks    service.TaskService
	Schedule service.ScheduleService
	Day      service.DayService
	Nudges   service.NudgeService

	// Serve runs the HTTP API until ctx is cancelled. Nil disables `serve`.
	Serve func(ctx context.Context) error

	// Logs receives service and backend telemetry; --verbose enables it.
	Logs *LogSwitch

	// IsInteractive reports whether prompts and the TUI may be shown.
	IsInteractive func() bool

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "braindump" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "braindump",
		Short:         "Turn a messy brain dump into a day you can actually finish",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && app.Logs != nil {
				app.Logs.Enable()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log use cases and AI calls to stderr")

	root.AddCommand(
		newDumpCmd(app),
		newTasksCmd(app),
		newScheduleCmd(app),
		newQuickCmd(app),
		newCapacityCmd(app),
		newFocusCmd(app),
		newNudgesCmd(app),
		newHistoryCmd(app),
		newServeCmd(app),
	)

	return root
}
