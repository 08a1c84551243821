package scheduler

import "github.com/alexanderramin/braindump/internal/domain"

// OptimizeTaskOrder alternates draining tasks with recovery tasks so that
// hard work never stacks up. Recovery is the energizing tasks followed by
// the neutral ones. The pattern is D,R,D,R,... with whatever is left of the
// longer side appended at the end. Relative order inside each group is
// kept.
func OptimizeTaskOrder(tasks []domain.Task) []domain.Task {
	var draining, energizing, neutral []domain.Task
	for _, t := range tasks {
		switch Classify(t) {
		case domain.EnergyDraining:
			draining = append(draining, t)
		case domain.EnergyEnergizing:
			energizing = append(energizing, t)
		default:
			neutral = append(neutral, t)
		}
	}
	recovery := append(energizing, neutral...)

	out := make([]domain.Task, 0, len(tasks))
	i := 0
	for ; i < len(draining) && i < len(recovery); i++ {
		out = append(out, draining[i], recovery[i])
	}
	out = append(out, draining[i:]...)
	out = append(out, recovery[i:]...)
	return out
}
