package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/google/uuid"
)

var testPositionCounter atomic.Int64

// Task options
type TaskOption func(*domain.PlannedTask)

func WithColor(c domain.Color) TaskOption {
	return func(t *domain.PlannedTask) {
		t.Color = c
	}
}

func WithDuration(minutes float64) TaskOption {
	return func(t *domain.PlannedTask) {
		t.DurationMinutes = minutes
	}
}

func WithPosition(pos int) TaskOption {
	return func(t *domain.PlannedTask) {
		t.Position = pos
	}
}

func WithDumpID(id string) TaskOption {
	return func(t *domain.PlannedTask) {
		t.DumpID = id
	}
}

func WithCompleted(at time.Time) TaskOption {
	return func(t *domain.PlannedTask) {
		t.Completed = true
		t.CompletedAt = &at
	}
}

func WithTaskID(id string) TaskOption {
	return func(t *domain.PlannedTask) {
		t.ID = id
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.PlannedTask {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.PlannedTask{
		Task: domain.Task{
			Title:           title,
			DurationMinutes: 25,
			Color:           domain.ColorBlue,
			Reasoning:       "test task",
		},
		ID:        uuid.New().String(),
		Position:  int(testPositionCounter.Add(1)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Dump options
type DumpOption func(*domain.BrainDump)

func WithCapacity(c domain.AICapacity) DumpOption {
	return func(d *domain.BrainDump) {
		d.Capacity = &c
	}
}

func WithCreatedAt(at time.Time) DumpOption {
	return func(d *domain.BrainDump) {
		d.CreatedAt = at
	}
}

func NewTestDump(text string, opts ...DumpOption) *domain.BrainDump {
	d := &domain.BrainDump{
		ID:        uuid.New().String(),
		RawText:   text,
		Provider:  "mock",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// AITasksJSON renders n valid tasks the way an AI backend would return them.
func AITasksJSON(n int, color domain.Color) string {
	out := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"title":"Task %d","duration_minutes":%d,"color":"%s","reasoning":"r"}`,
			i+1, 15+i*5, color)
	}
	return out + "]"
}
