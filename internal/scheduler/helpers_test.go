package scheduler

import (
	"fmt"

	"github.com/alexanderramin/braindump/internal/domain"
)

func mk(title string, color domain.Color, minutes float64) domain.Task {
	return domain.Task{Title: title, Color: color, DurationMinutes: minutes, Reasoning: "r"}
}

func titles(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func uniform(n int, color domain.Color, minutes float64) []domain.Task {
	out := make([]domain.Task, n)
	for i := range out {
		out[i] = mk(fmt.Sprintf("t%d", i), color, minutes)
	}
	return out
}

func intPtr(v int) *int { return &v }
