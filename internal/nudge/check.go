package nudge

import "github.com/alexanderramin/braindump/internal/domain"

// Context carries whatever counters the caller currently knows. Nil fields
// skip the generators that need them.
type Context struct {
	TaskCount          *int               `json:"taskCount,omitempty"`
	Capacity           *domain.AICapacity `json:"capacity,omitempty" validate:"omitempty,oneof=light medium full"`
	FocusMinutes       *int               `json:"focusDuration,omitempty"`
	CompletedCount     *int               `json:"completedCount,omitempty"`
	TotalTasks         *int               `json:"totalTasks,omitempty"`
	AttemptedTaskCount *int               `json:"attemptedTaskCount,omitempty"`
	MinutesSinceBreak  *int               `json:"timeSinceBreak,omitempty"`
	IsEndOfDay         bool               `json:"isEndOfDay,omitempty"`
	Tasks              []TaskStatus       `json:"tasks,omitempty"`
}

// Check runs every generator whose inputs are present, in a fixed order,
// and returns the nudges that fired.
func Check(ctx Context) []domain.Nudge {
	var out []domain.Nudge
	add := func(n *domain.Nudge) {
		if n != nil {
			out = append(out, *n)
		}
	}

	if ctx.TaskCount != nil && ctx.Capacity != nil {
		add(TimelineFull(*ctx.TaskCount, *ctx.Capacity))
	}
	if ctx.FocusMinutes != nil {
		add(FocusDuration(*ctx.FocusMinutes))
	}
	if ctx.CompletedCount != nil && ctx.TotalTasks != nil {
		add(TaskCompletion(*ctx.CompletedCount, *ctx.TotalTasks))
	}
	if ctx.AttemptedTaskCount != nil && ctx.Capacity != nil {
		add(CapacityWarning(*ctx.AttemptedTaskCount, *ctx.Capacity))
	}
	if ctx.MinutesSinceBreak != nil {
		add(BreakReminder(*ctx.MinutesSinceBreak))
	}
	if ctx.IsEndOfDay && ctx.Tasks != nil {
		add(EndOfDay(ctx.Tasks))
	}
	return out
}
