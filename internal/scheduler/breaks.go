package scheduler

import (
	"fmt"

	"github.com/alexanderramin/braindump/internal/domain"
)

// LongStretchMinutes is the rolling focus time after which a break is due.
const LongStretchMinutes = 90

// RecommendBreaks walks the tasks in order and returns a break for every
// trigger that fires after a task:
//  1. maxConsecutive tasks in a row (resets both counters)
//  2. LongStretchMinutes of rolling focus (resets the duration only)
//  3. this task and the next are both draining
//
// Triggers are independent, so one index can carry several breaks. No
// break is placed after the last task.
func RecommendBreaks(tasks []domain.Task, prefs domain.Preferences) []domain.Break {
	breakMin := prefs.BreakMinutes()
	maxConsecutive := prefs.MaxConsecutive()

	var breaks []domain.Break
	consecutive := 0
	rolling := 0.0
	for i, t := range tasks {
		last := i == len(tasks)-1
		consecutive++
		rolling += t.DurationMinutes

		if consecutive >= maxConsecutive && !last {
			breaks = append(breaks, domain.Break{
				AfterTaskIndex: i,
				Duration:       breakMin,
				Reason:         fmt.Sprintf("Prevent burnout after %d consecutive tasks", consecutive),
			})
			consecutive = 0
			rolling = 0
		}

		if rolling >= LongStretchMinutes && !last {
			breaks = append(breaks, domain.Break{
				AfterTaskIndex: i,
				Duration:       breakMin,
				Reason:         "Long focus stretch - time to recharge",
			})
			rolling = 0
		}

		if !last && isDraining(t) && isDraining(tasks[i+1]) {
			breaks = append(breaks, domain.Break{
				AfterTaskIndex: i,
				Duration:       breakMin,
				Reason:         "Recovery time between two draining tasks",
			})
		}
	}
	return breaks
}
