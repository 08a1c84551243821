package scheduler

import "github.com/alexanderramin/braindump/internal/domain"

// TransitionMinutes is the fixed overhead between two consecutive tasks.
const TransitionMinutes = 10

// EstimateCompletionTime returns the minutes needed for tasks in the given
// order: task durations, every recommended break, and a transition between
// each pair of tasks.
func EstimateCompletionTime(tasks []domain.Task, prefs domain.Preferences) float64 {
	if len(tasks) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range tasks {
		total += t.DurationMinutes
	}
	for _, b := range RecommendBreaks(tasks, prefs) {
		total += float64(b.Duration)
	}
	total += float64((len(tasks) - 1) * TransitionMinutes)
	return total
}
