package scheduler

import (
	"testing"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCompletionTime(t *testing.T) {
	assert.Equal(t, 0.0, EstimateCompletionTime(nil, domain.Preferences{}))

	one := mk("only", domain.ColorOrange, 42.5)
	assert.Equal(t, 42.5, EstimateCompletionTime([]domain.Task{one}, domain.Preferences{}))

	two := []domain.Task{mk("a", domain.ColorGreen, 20), mk("b", domain.ColorCoral, 25)}
	assert.Equal(t, 55.0, EstimateCompletionTime(two, domain.Preferences{}))
}

func TestEstimateCompletionTime_CountsEveryBreak(t *testing.T) {
	tasks := uniform(4, domain.ColorBlue, 10)
	// 40 task minutes, 4 breaks of 15, 3 transitions.
	assert.Equal(t, 130.0, EstimateCompletionTime(tasks, domain.Preferences{}))
}
