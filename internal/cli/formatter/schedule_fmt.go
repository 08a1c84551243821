package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/braindump/internal/scheduler"
)

// FormatPlan renders a day plan as a clock timeline.
func FormatPlan(plan *scheduler.Plan) string {
	if plan == nil || len(plan.Tasks) == 0 {
		return Dim("Nothing to schedule.") + "\n"
	}

	var b strings.Builder
	b.WriteString(Header("Today"))
	b.WriteString("\n")
	for _, s := range plan.Timeline {
		clock := Dim(fmt.Sprintf("%s-%s", s.Start.Format("15:04"), s.End.Format("15:04")))
		switch s.Kind {
		case scheduler.SlotBreak:
			fmt.Fprintf(&b, "%s  %s %s\n", clock, StyleGreen.Render("☕ break"), Dim("· "+s.Reason))
		default:
			fmt.Fprintf(&b, "%s  %s %s %s\n", clock, ColorDot(s.Color), s.Title, Dim(FormatMinutes(float64(s.Minutes()))))
		}
	}
	fmt.Fprintf(&b, "\n%s %s %s\n",
		Dim("Estimated:"),
		Bold(FormatMinutes(plan.EstimatedMinutes)),
		Dim(fmt.Sprintf("(%d tasks, %d breaks)", len(plan.Tasks), len(plan.Breaks))))
	return b.String()
}
