package domain

import (
	"fmt"
	"math"
	"time"
)

// Task is a single task as produced by the AI and accepted by the
// response validator.
type Task struct {
	Title           string  `json:"title" validate:"required"`
	DurationMinutes float64 `json:"duration_minutes" validate:"gt=0"`
	Color           Color   `json:"color" validate:"oneof=blue coral green orange purple"`
	Reasoning       string  `json:"reasoning"`
}

// Minutes returns the task duration rounded to whole minutes.
func (t Task) Minutes() int {
	return int(math.Round(t.DurationMinutes))
}

// PlannedTask is a Task that has been accepted into the task store.
type PlannedTask struct {
	Task
	ID          string
	DumpID      string
	Position    int
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Complete marks the task done. Completing a done task is an error so the
// caller does not double-count celebrations.
func (p *PlannedTask) Complete(now time.Time) error {
	if p.Completed {
		return fmt.Errorf("task %q is already completed", p.Title)
	}
	p.Completed = true
	p.CompletedAt = &now
	p.UpdatedAt = now
	return nil
}

// Reopen reverts a completed task.
func (p *PlannedTask) Reopen(now time.Time) error {
	if !p.Completed {
		return fmt.Errorf("task %q is not completed", p.Title)
	}
	p.Completed = false
	p.CompletedAt = nil
	p.UpdatedAt = now
	return nil
}

// DisplayID returns the first 8 characters of the ID.
func (p *PlannedTask) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// BrainDump records one submission of free text.
type BrainDump struct {
	ID        string
	RawText   string
	Capacity  *AICapacity
	TaskCount int
	// Provider names the AI backend that compressed the dump, empty for
	// dumps added before it was recorded.
	Provider  string
	CreatedAt time.Time
}

// TasksOf strips store metadata from planned tasks.
func TasksOf(planned []*PlannedTask) []Task {
	out := make([]Task, len(planned))
	for i, p := range planned {
		out[i] = p.Task
	}
	return out
}
