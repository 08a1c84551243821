// Package scheduler orders a day's tasks by energy and works out where
// breaks go and how long the day will take.
package scheduler

import "github.com/alexanderramin/braindump/internal/domain"

// Classify maps a task's color to its energy effect. The mapping is closed:
// any color outside the draining and energizing sets is neutral.
func Classify(t domain.Task) domain.Energy {
	switch t.Color {
	case domain.ColorPurple, domain.ColorGreen:
		return domain.EnergyEnergizing
	case domain.ColorOrange, domain.ColorBlue:
		return domain.EnergyDraining
	default:
		return domain.EnergyNeutral
	}
}

func isDraining(t domain.Task) bool {
	return Classify(t) == domain.EnergyDraining
}
