// Package nudge produces short contextual messages that encourage breaks,
// celebrate progress and warn gently about overload. Every generator is a
// pure function of its inputs; callers poll them with fresh counters.
package nudge

import (
	"fmt"

	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/domain"
)

// Focus and break windows are half-open five-minute ranges. A caller that
// checks less often than every five minutes can miss them.
const (
	focusSupportiveFrom = 90
	focusWarningFrom    = 120
	breakReminderFrom   = 60
	windowMinutes       = 5
)

func newNudge(t domain.NudgeType, tone domain.NudgeTone, msg string) *domain.Nudge {
	return &domain.Nudge{Type: t, Message: msg, Tone: tone, ShowInApp: true, Dismissible: true}
}

func inWindow(minutes, from int) bool {
	return minutes >= from && minutes < from+windowMinutes
}

// TimelineFull warns when the task list reaches the capacity limit.
func TimelineFull(currentTaskCount int, c domain.AICapacity) *domain.Nudge {
	max := capacity.MaxTasks(c)
	switch {
	case currentTaskCount < max-1:
		return nil
	case currentTaskCount == max-1:
		return newNudge(domain.NudgeTimelineFull, domain.ToneGentleWarning,
			fmt.Sprintf("You're almost at capacity. One more task fits your %s day.", c))
	default:
		return newNudge(domain.NudgeTimelineFull, domain.ToneGentleWarning,
			fmt.Sprintf("Your timeline is full for a %s day. Finish something before adding more.", c))
	}
}

// FocusDuration fires at 90 and 120 minutes of continuous focus.
func FocusDuration(elapsedMinutes int) *domain.Nudge {
	switch {
	case inWindow(elapsedMinutes, focusSupportiveFrom):
		return newNudge(domain.NudgeFocusDuration, domain.ToneSupportive,
			"You've been focused for 90 minutes. Great work! A short break will help you keep going.")
	case inWindow(elapsedMinutes, focusWarningFrom):
		n := newNudge(domain.NudgeFocusDuration, domain.ToneGentleWarning,
			"Two hours of focus. Your brain needs a rest now, so step away for a few minutes.")
		n.Dismissible = false
		return n
	default:
		return nil
	}
}

// TaskCompletion celebrates progress. Conditions are checked in a fixed
// order and the first match wins: first task, halfway, all done, then
// every third task.
func TaskCompletion(completedCount, totalTasks int) *domain.Nudge {
	switch {
	case completedCount == 1:
		return newNudge(domain.NudgeTaskCompletion, domain.ToneCelebratory,
			"First task done! Starting is the hardest part.")
	case completedCount == totalTasks/2 && totalTasks > 2:
		return newNudge(domain.NudgeTaskCompletion, domain.ToneCelebratory,
			fmt.Sprintf("Halfway there! %d of %d tasks done.", completedCount, totalTasks))
	case completedCount == totalTasks && totalTasks > 0:
		return newNudge(domain.NudgeTaskCompletion, domain.ToneCelebratory,
			"Everything on today's list is done. Amazing!")
	case completedCount > 0 && completedCount%3 == 0:
		return newNudge(domain.NudgeTaskCompletion, domain.ToneCelebratory,
			fmt.Sprintf("%d tasks done. You're on a roll!", completedCount))
	default:
		return nil
	}
}

// CapacityWarning fires when more tasks were attempted than the capacity
// allows.
func CapacityWarning(attemptedCount int, c domain.AICapacity) *domain.Nudge {
	max := capacity.MaxTasks(c)
	if attemptedCount <= max {
		return nil
	}
	excess := attemptedCount - max
	return newNudge(domain.NudgeCapacityWarning, domain.ToneGentleWarning,
		fmt.Sprintf("That's %d more than fits a %s day. Pick the %d that matter most and park the rest.",
			excess, c, max))
}

// BreakReminder fires an hour after the last break.
func BreakReminder(minutesSinceBreak int) *domain.Nudge {
	if !inWindow(minutesSinceBreak, breakReminderFrom) {
		return nil
	}
	return newNudge(domain.NudgeBreakReminder, domain.ToneSupportive,
		"It's been an hour since your last break. Stretch, drink some water, look away from the screen.")
}

// TaskStatus is the minimal view of a task the end-of-day summary needs.
type TaskStatus struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// EndOfDay always returns a summary of the day.
func EndOfDay(tasks []TaskStatus) *domain.Nudge {
	total := len(tasks)
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}

	var msg string
	switch {
	case total == 0:
		msg = "The day is over. Rest well and start fresh tomorrow."
	case done == 0:
		msg = "Today didn't go to plan, and that's okay. Tomorrow is a new start."
	case done == total:
		msg = fmt.Sprintf("You finished all %d tasks today. Be proud of that!", total)
	default:
		msg = fmt.Sprintf("You completed %d of %d tasks today. Every one of them counts.", done, total)
	}
	return newNudge(domain.NudgeEndOfDay, domain.ToneSupportive, msg)
}
