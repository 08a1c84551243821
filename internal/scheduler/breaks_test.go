package scheduler

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendBreaks_FourHalfHourTasks(t *testing.T) {
	tasks := uniform(4, domain.ColorCoral, 30)

	breaks := RecommendBreaks(tasks, domain.Preferences{})

	require.Len(t, breaks, 1)
	assert.Equal(t, 2, breaks[0].AfterTaskIndex)
	assert.Equal(t, 15, breaks[0].Duration)
	assert.Contains(t, breaks[0].Reason, "Prevent burnout")
	assert.InDelta(t, 165.0, EstimateCompletionTime(tasks, domain.Preferences{}), 1e-9)
}

func TestRecommendBreaks_LongStretchKeepsConsecutiveCount(t *testing.T) {
	tasks := []domain.Task{
		mk("a", domain.ColorCoral, 100),
		mk("b", domain.ColorCoral, 10),
		mk("c", domain.ColorCoral, 10),
		mk("d", domain.ColorCoral, 10),
	}

	breaks := RecommendBreaks(tasks, domain.Preferences{})

	require.Len(t, breaks, 2)
	assert.Equal(t, 0, breaks[0].AfterTaskIndex)
	assert.Contains(t, breaks[0].Reason, "Long focus")
	// Consecutive counter was not reset by the long-stretch break.
	assert.Equal(t, 2, breaks[1].AfterTaskIndex)
	assert.Contains(t, breaks[1].Reason, "Prevent burnout")
}

func TestRecommendBreaks_DrainingPairs(t *testing.T) {
	tasks := []domain.Task{
		mk("a", domain.ColorBlue, 10),
		mk("b", domain.ColorOrange, 10),
		mk("c", domain.ColorGreen, 10),
	}

	breaks := RecommendBreaks(tasks, domain.Preferences{})

	require.Len(t, breaks, 1)
	assert.Equal(t, 0, breaks[0].AfterTaskIndex)
	assert.Contains(t, breaks[0].Reason, "draining")
}

func TestRecommendBreaks_TriggersAreNotDeduplicated(t *testing.T) {
	tasks := uniform(4, domain.ColorBlue, 10)

	breaks := RecommendBreaks(tasks, domain.Preferences{})

	var atTwo int
	for _, b := range breaks {
		if b.AfterTaskIndex == 2 {
			atTwo++
		}
	}
	// Index 2 carries both the consecutive and the draining-pair break.
	assert.Equal(t, 2, atTwo)
	assert.Len(t, breaks, 4)
}

func TestRecommendBreaks_Preferences(t *testing.T) {
	tasks := uniform(5, domain.ColorCoral, 10)
	prefs := domain.Preferences{BreakDuration: intPtr(5), MaxConsecutiveTasks: intPtr(2)}

	breaks := RecommendBreaks(tasks, prefs)

	require.Len(t, breaks, 2)
	assert.Equal(t, 1, breaks[0].AfterTaskIndex)
	assert.Equal(t, 3, breaks[1].AfterTaskIndex)
	for _, b := range breaks {
		assert.Equal(t, 5, b.Duration)
	}
}

func TestRecommendBreaks_NeverAfterLastTask(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(10) + 1
		tasks := make([]domain.Task, n)
		for i := range tasks {
			tasks[i] = mk(fmt.Sprintf("t%d", i), allColors[rng.Intn(len(allColors))], float64(rng.Intn(120)+1))
		}
		prefs := domain.Preferences{MaxConsecutiveTasks: intPtr(rng.Intn(4) + 1)}

		for _, b := range RecommendBreaks(tasks, prefs) {
			assert.Less(t, b.AfterTaskIndex, n-1, "trial %d", trial)
			assert.GreaterOrEqual(t, b.AfterTaskIndex, 0, "trial %d", trial)
		}
	}
}

func TestRecommendBreaks_Empty(t *testing.T) {
	assert.Empty(t, RecommendBreaks(nil, domain.Preferences{}))
}
