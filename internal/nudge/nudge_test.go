package nudge

import (
	"testing"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func capPtr(c domain.AICapacity) *domain.AICapacity { return &c }

func TestTimelineFull(t *testing.T) {
	assert.Nil(t, TimelineFull(1, domain.CapacityLight))

	almost := TimelineFull(2, domain.CapacityLight)
	require.NotNil(t, almost)
	assert.Equal(t, domain.ToneGentleWarning, almost.Tone)
	assert.Contains(t, almost.Message, "almost at capacity")

	for _, n := range []int{3, 4, 10} {
		full := TimelineFull(n, domain.CapacityLight)
		require.NotNil(t, full, "count %d", n)
		assert.Contains(t, full.Message, "timeline is full")
		assert.Equal(t, domain.NudgeTimelineFull, full.Type)
	}

	assert.Nil(t, TimelineFull(5, domain.CapacityFull))
	assert.NotNil(t, TimelineFull(6, domain.CapacityFull))
}

func TestFocusDuration_Windows(t *testing.T) {
	for _, m := range []int{0, 89, 95, 100, 119, 125, 240} {
		assert.Nil(t, FocusDuration(m), "minute %d", m)
	}
	for _, m := range []int{90, 94} {
		n := FocusDuration(m)
		require.NotNil(t, n, "minute %d", m)
		assert.Equal(t, domain.ToneSupportive, n.Tone)
		assert.True(t, n.Dismissible)
	}
	for _, m := range []int{120, 124} {
		n := FocusDuration(m)
		require.NotNil(t, n, "minute %d", m)
		assert.Equal(t, domain.ToneGentleWarning, n.Tone)
		assert.False(t, n.Dismissible)
	}
}

func TestTaskCompletion_PriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		contains  string
	}{
		{"first wins over all done", 1, 1, "First task"},
		{"first wins over halfway", 1, 3, "First task"},
		{"halfway", 2, 5, "Halfway"},
		{"halfway wins over multiple of three", 3, 6, "Halfway"},
		{"all done", 4, 4, "Everything"},
		{"all done wins over multiple of three", 6, 6, "Everything"},
		{"multiple of three", 6, 10, "6 tasks done"},
		{"halfway needs more than two tasks", 1, 2, "First task"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := TaskCompletion(tt.completed, tt.total)
			require.NotNil(t, n)
			assert.Equal(t, domain.ToneCelebratory, n.Tone)
			assert.Contains(t, n.Message, tt.contains)
		})
	}
}

func TestTaskCompletion_Silent(t *testing.T) {
	assert.Nil(t, TaskCompletion(0, 0))
	assert.Nil(t, TaskCompletion(0, 5))
	assert.Nil(t, TaskCompletion(2, 10))
	assert.Nil(t, TaskCompletion(4, 10))
}

func TestCapacityWarning(t *testing.T) {
	assert.Nil(t, CapacityWarning(5, domain.CapacityMedium))

	n := CapacityWarning(8, domain.CapacityMedium)
	require.NotNil(t, n)
	assert.Equal(t, domain.NudgeCapacityWarning, n.Type)
	assert.Equal(t, domain.ToneGentleWarning, n.Tone)
	assert.Contains(t, n.Message, "3 more")
	assert.Contains(t, n.Message, "medium")
}

func TestBreakReminder(t *testing.T) {
	assert.Nil(t, BreakReminder(59))
	assert.NotNil(t, BreakReminder(60))
	assert.NotNil(t, BreakReminder(64))
	assert.Nil(t, BreakReminder(65))
}

func TestEndOfDay_Branches(t *testing.T) {
	none := EndOfDay(nil)
	require.NotNil(t, none)
	assert.Contains(t, none.Message, "Rest well")

	zero := EndOfDay([]TaskStatus{{Title: "a"}, {Title: "b"}})
	assert.Contains(t, zero.Message, "didn't go to plan")

	all := EndOfDay([]TaskStatus{{Title: "a", Completed: true}, {Title: "b", Completed: true}})
	assert.Contains(t, all.Message, "all 2 tasks")

	partial := EndOfDay([]TaskStatus{{Title: "a", Completed: true}, {Title: "b"}, {Title: "c"}})
	assert.Contains(t, partial.Message, "1 of 3")
	assert.Equal(t, domain.NudgeEndOfDay, partial.Type)
}

func TestCheck_TimelineFullForLightDay(t *testing.T) {
	got := Check(Context{TaskCount: intPtr(4), Capacity: capPtr(domain.CapacityLight)})

	require.Len(t, got, 1)
	assert.Equal(t, domain.NudgeTimelineFull, got[0].Type)
	assert.Equal(t, domain.ToneGentleWarning, got[0].Tone)
	assert.Contains(t, got[0].Message, "timeline is full")
}

func TestCheck_SkipsMissingFields(t *testing.T) {
	assert.Empty(t, Check(Context{}))
	assert.Empty(t, Check(Context{TaskCount: intPtr(10)}))
	assert.Empty(t, Check(Context{CompletedCount: intPtr(1)}))
	assert.Empty(t, Check(Context{IsEndOfDay: true}))
}

func TestCheck_FixedOrder(t *testing.T) {
	got := Check(Context{
		TaskCount:          intPtr(3),
		Capacity:           capPtr(domain.CapacityLight),
		FocusMinutes:       intPtr(92),
		CompletedCount:     intPtr(1),
		TotalTasks:         intPtr(3),
		AttemptedTaskCount: intPtr(5),
		MinutesSinceBreak:  intPtr(61),
		IsEndOfDay:         true,
		Tasks:              []TaskStatus{{Title: "a", Completed: true}},
	})

	types := make([]domain.NudgeType, len(got))
	for i, n := range got {
		types[i] = n.Type
	}
	assert.Equal(t, []domain.NudgeType{
		domain.NudgeTimelineFull,
		domain.NudgeFocusDuration,
		domain.NudgeTaskCompletion,
		domain.NudgeCapacityWarning,
		domain.NudgeBreakReminder,
		domain.NudgeEndOfDay,
	}, types)
}
