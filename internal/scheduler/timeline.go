package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
)

type SlotKind string

const (
	SlotTask  SlotKind = "task"
	SlotBreak SlotKind = "break"
)

// Slot is one block of clock time in a day plan.
type Slot struct {
	Kind      SlotKind     `json:"kind"`
	TaskIndex int          `json:"taskIndex"`
	Title     string       `json:"title"`
	Color     domain.Color `json:"color,omitempty"`
	Reason    string       `json:"reason,omitempty"`
	Start     time.Time    `json:"start"`
	End       time.Time    `json:"end"`
}

func (s Slot) Minutes() int {
	return int(s.End.Sub(s.Start).Round(time.Minute) / time.Minute)
}

// Plan is an ordered day with its breaks laid out on the clock.
type Plan struct {
	Tasks            []domain.Task  `json:"tasks"`
	Breaks           []domain.Break `json:"breaks"`
	EstimatedMinutes float64        `json:"estimatedMinutes"`
	Timeline         []Slot         `json:"timeline"`
}

// ParseStartTime combines an "HH:MM" clock time with the date of day.
func ParseStartTime(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q (want HH:MM): %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

// BuildTimeline places tasks, in the given order, on the clock starting at
// the preferred start time on day. Breaks follow their task and every task
// after the first is preceded by a transition gap, so the span of the
// timeline equals EstimateCompletionTime.
func BuildTimeline(day time.Time, tasks []domain.Task, prefs domain.Preferences) ([]Slot, error) {
	cursor, err := ParseStartTime(day, prefs.StartTime())
	if err != nil {
		return nil, err
	}

	byIndex := make(map[int][]domain.Break)
	for _, b := range RecommendBreaks(tasks, prefs) {
		byIndex[b.AfterTaskIndex] = append(byIndex[b.AfterTaskIndex], b)
	}

	slots := make([]Slot, 0, len(tasks))
	for i, t := range tasks {
		if i > 0 {
			cursor = cursor.Add(TransitionMinutes * time.Minute)
		}
		end := cursor.Add(minutes(t.DurationMinutes))
		slots = append(slots, Slot{
			Kind: SlotTask, TaskIndex: i, Title: t.Title, Color: t.Color,
			Start: cursor, End: end,
		})
		cursor = end

		for _, b := range byIndex[i] {
			end := cursor.Add(time.Duration(b.Duration) * time.Minute)
			slots = append(slots, Slot{
				Kind: SlotBreak, TaskIndex: i, Title: "Break", Reason: b.Reason,
				Start: cursor, End: end,
			})
			cursor = end
		}
	}
	return slots, nil
}

// BuildPlan optionally reorders tasks for energy, then computes breaks,
// the estimate and the timeline for the final order.
func BuildPlan(day time.Time, tasks []domain.Task, prefs domain.Preferences) (*Plan, error) {
	ordered := tasks
	if prefs.Alternate() {
		ordered = OptimizeTaskOrder(tasks)
	}
	timeline, err := BuildTimeline(day, ordered, prefs)
	if err != nil {
		return nil, err
	}
	breaks := RecommendBreaks(ordered, prefs)
	if breaks == nil {
		breaks = []domain.Break{}
	}
	return &Plan{
		Tasks:            ordered,
		Breaks:           breaks,
		EstimatedMinutes: EstimateCompletionTime(ordered, prefs),
		Timeline:         timeline,
	}, nil
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
