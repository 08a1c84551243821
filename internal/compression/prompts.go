package compression

import (
	"fmt"

	"github.com/alexanderramin/braindump/internal/capacity"
	"github.com/alexanderramin/braindump/internal/domain"
)

const taskFormat = `Respond with ONLY a JSON array, no prose and no markdown. Each element:
{"title": string, "duration_minutes": number, "color": "blue"|"coral"|"green"|"orange"|"purple", "reasoning": string}

Colors:
- blue: focused or administrative work
- orange: demanding or stressful work
- green: movement, health, outdoors
- purple: creative or restorative activities
- coral: errands, people and everything else`

// GenericPrompt is used when the user did not declare a capacity.
const GenericPrompt = `You help people with ADHD turn a messy brain dump into a short, doable plan.
Extract the concrete tasks, merge duplicates, drop what is not actionable, and order them by priority.
Give every task a realistic duration in minutes.

` + taskFormat

// CapacityPrompt embeds the hard task limit and energy guidance for c.
func CapacityPrompt(c domain.AICapacity) string {
	return fmt.Sprintf(`You help people with ADHD turn a messy brain dump into a short, doable plan.
%s
Return AT MOST %d tasks. Pick the ones that matter most today and leave the rest out.
Order them by priority and give every task a realistic duration in minutes.

%s`, capacity.EnergyGuidance(c), capacity.MaxTasks(c), taskFormat)
}

// SystemPrompt selects the prompt for an optional capacity.
func SystemPrompt(c *domain.AICapacity) string {
	if c == nil {
		return GenericPrompt
	}
	return CapacityPrompt(*c)
}
