// Package capacity maps energy self-reports to task-count limits.
//
// Two tables exist on purpose. The AI-backed flow applies a hard cap per
// level; the deterministic slice flow applies a base count that a manual
// override may raise by one. They disagree for "medium" (5 vs 3-4) and must
// not be merged.
package capacity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/braindump/internal/domain"
)

// ErrUnknownCapacity is returned when a capacity label is not recognised.
var ErrUnknownCapacity = errors.New("unknown capacity")

var aiMaxTasks = map[domain.AICapacity]int{
	domain.CapacityLight:  3,
	domain.CapacityMedium: 5,
	domain.CapacityFull:   7,
}

var sliceBase = map[domain.SliceCapacity]int{
	domain.SliceLow:    1,
	domain.SliceMedium: 3,
	domain.SliceHigh:   5,
}

// AICapacities lists the AI-path levels from least to most energy.
var AICapacities = []domain.AICapacity{domain.CapacityLight, domain.CapacityMedium, domain.CapacityFull}

// SliceCapacities lists the deterministic-path levels from least to most energy.
var SliceCapacities = []domain.SliceCapacity{domain.SliceLow, domain.SliceMedium, domain.SliceHigh}

// MaxTasks returns the hard cap for the AI-backed flow. Unknown levels
// return 0.
func MaxTasks(c domain.AICapacity) int {
	return aiMaxTasks[c]
}

// SliceBase returns the base visible count for the deterministic flow.
func SliceBase(c domain.SliceCapacity) int {
	return sliceBase[c]
}

// SliceCeiling is the most items the deterministic flow will ever show.
func SliceCeiling(c domain.SliceCapacity) int {
	return SliceBase(c) + 1
}

// ParseAICapacity normalises a label such as "Light" into an AICapacity.
func ParseAICapacity(s string) (domain.AICapacity, error) {
	c := domain.AICapacity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := aiMaxTasks[c]; !ok {
		return "", fmt.Errorf("%w: %q (want light, medium or full)", ErrUnknownCapacity, s)
	}
	return c, nil
}

// ParseSliceCapacity normalises a label such as "HIGH" into a SliceCapacity.
func ParseSliceCapacity(s string) (domain.SliceCapacity, error) {
	c := domain.SliceCapacity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sliceBase[c]; !ok {
		return "", fmt.Errorf("%w: %q (want low, medium or high)", ErrUnknownCapacity, s)
	}
	return c, nil
}

// EnergyGuidance describes the energy level in words suitable for an AI
// system prompt.
func EnergyGuidance(c domain.AICapacity) string {
	switch c {
	case domain.CapacityLight:
		return "The user has LOW energy today. Favour short, gentle tasks and leave out anything that can wait."
	case domain.CapacityMedium:
		return "The user has MODERATE energy today. Mix a few focused tasks with lighter ones."
	case domain.CapacityFull:
		return "The user has HIGH energy today. Include the important, demanding tasks but keep the list realistic."
	default:
		return "Keep the list realistic for someone who is easily overwhelmed."
	}
}
