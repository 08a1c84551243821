package domain

import "time"

// Break is a recommended pause after the task at AfterTaskIndex.
type Break struct {
	AfterTaskIndex int    `json:"afterTaskIndex"`
	Duration       int    `json:"duration"`
	Reason         string `json:"reason"`
}

// Preferences tune the scheduling engine. Nil fields take defaults; set
// numeric fields must be positive.
type Preferences struct {
	PreferredStartTime  *string `json:"preferredStartTime,omitempty" validate:"omitempty,datetime=15:04"`
	BreakDuration       *int    `json:"breakDuration,omitempty" validate:"omitnil,gt=0"`
	MaxConsecutiveTasks *int    `json:"maxConsecutiveTasks,omitempty" validate:"omitnil,gt=0"`
	AlternateHardEasy   *bool   `json:"alternateHardEasy,omitempty"`
}

const (
	DefaultBreakDuration       = 15
	DefaultMaxConsecutiveTasks = 3
	DefaultStartTime           = "09:00"
)

func (p Preferences) BreakMinutes() int {
	return valueOr(p.BreakDuration, DefaultBreakDuration)
}

func (p Preferences) MaxConsecutive() int {
	return valueOr(p.MaxConsecutiveTasks, DefaultMaxConsecutiveTasks)
}

// Alternate defaults to true.
func (p Preferences) Alternate() bool {
	return p.AlternateHardEasy == nil || *p.AlternateHardEasy
}

func (p Preferences) StartTime() string {
	return valueOr(p.PreferredStartTime, DefaultStartTime)
}

// DayCounters are the externally tracked counters the nudge engine reads.
type DayCounters struct {
	FocusStartedAt *time.Time
	LastBreakAt    *time.Time
	Capacity       *AICapacity
}

// FocusMinutes returns whole minutes since focus started, or nil if no
// focus session is running.
func (c DayCounters) FocusMinutes(now time.Time) *int {
	return minutesSince(c.FocusStartedAt, now)
}

// MinutesSinceBreak counts from the last break, falling back to the focus
// start when no break was taken yet.
func (c DayCounters) MinutesSinceBreak(now time.Time) *int {
	if c.LastBreakAt != nil {
		return minutesSince(c.LastBreakAt, now)
	}
	return minutesSince(c.FocusStartedAt, now)
}

func minutesSince(t *time.Time, now time.Time) *int {
	if t == nil {
		return nil
	}
	m := int(now.Sub(*t).Minutes())
	if m < 0 {
		m = 0
	}
	return &m
}
