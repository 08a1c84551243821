package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/alexanderramin/braindump/internal/scheduler"
)

// FormatTaskList renders stored tasks with progress.
func FormatTaskList(tasks []*domain.PlannedTask) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Run `braindump dump` to get started.") + "\n"
	}

	done := 0
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		check := "[ ]"
		title := t.Title
		if t.Completed {
			done++
			check = StyleGreen.Render("[x]")
			title = Dim(title)
		}
		rows = append(rows, []string{
			check,
			Dim(t.DisplayID()),
			ColorDot(t.Color) + " " + title,
			FormatMinutes(t.DurationMinutes),
			EnergyLabel(scheduler.Classify(t.Task)),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"", "ID", "TASK", "TIME", "ENERGY"}, rows))
	b.WriteString("\n")
	b.WriteString(RenderProgress(done, len(tasks), 20))
	b.WriteString("\n")
	return b.String()
}

// FormatCompressedTasks renders a freshly compressed list with the AI's
// reasoning under each task.
func FormatCompressedTasks(tasks []domain.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s %s %s\n", i+1, ColorDot(t.Color), Bold(t.Title), Dim("("+FormatMinutes(t.DurationMinutes)+")"))
		if t.Reasoning != "" {
			fmt.Fprintf(&b, "   %s\n", Dim(t.Reasoning))
		}
	}
	return b.String()
}

// FormatItems renders the visible slice of a manual list.
func FormatItems(items []domain.Item) string {
	var b strings.Builder
	for _, it := range items {
		marker := "•"
		if it.Emotional {
			marker = StylePurple.Render("♥")
		}
		fmt.Fprintf(&b, "  %s %s\n", marker, it.Label)
	}
	return b.String()
}
