package domain

// firstSet returns the first non-nil pointer in ptrs, or nil.
func firstSet[T any](ptrs ...*T) *T {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}

// valueOr dereferences p, falling back when p is nil or holds the zero
// value. Not for bools, where false is a real setting.
func valueOr[T comparable](p *T, fallback T) T {
	var zero T
	if p == nil || *p == zero {
		return fallback
	}
	return *p
}

// Override returns p with every field set in o taking precedence.
func (p Preferences) Override(o Preferences) Preferences {
	return Preferences{
		PreferredStartTime:  firstSet(o.PreferredStartTime, p.PreferredStartTime),
		BreakDuration:       firstSet(o.BreakDuration, p.BreakDuration),
		MaxConsecutiveTasks: firstSet(o.MaxConsecutiveTasks, p.MaxConsecutiveTasks),
		AlternateHardEasy:   firstSet(o.AlternateHardEasy, p.AlternateHardEasy),
	}
}
