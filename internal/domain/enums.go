package domain

// Color is the category tag the AI assigns to every task.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorCoral  Color = "coral"
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorPurple Color = "purple"
)

// ValidColors is the closed set of colors a validated task may carry.
var ValidColors = map[Color]bool{
	ColorBlue: true, ColorCoral: true, ColorGreen: true,
	ColorOrange: true, ColorPurple: true,
}

// AICapacity is the energy self-report used by the AI-backed flow.
type AICapacity string

const (
	CapacityLight  AICapacity = "light"
	CapacityMedium AICapacity = "medium"
	CapacityFull   AICapacity = "full"
)

// SliceCapacity is the energy self-report used by the deterministic
// slice compressor. It is deliberately a different type from AICapacity:
// the two flows encode different limits.
type SliceCapacity string

const (
	SliceLow    SliceCapacity = "low"
	SliceMedium SliceCapacity = "medium"
	SliceHigh   SliceCapacity = "high"
)

type Energy string

const (
	EnergyDraining   Energy = "draining"
	EnergyNeutral    Energy = "neutral"
	EnergyEnergizing Energy = "energizing"
)

type NudgeType string

const (
	NudgeTimelineFull    NudgeType = "timeline_full"
	NudgeFocusDuration   NudgeType = "focus_duration"
	NudgeTaskCompletion  NudgeType = "task_completion"
	NudgeCapacityWarning NudgeType = "capacity_warning"
	NudgeBreakReminder   NudgeType = "break_reminder"
	NudgeEndOfDay        NudgeType = "end_of_day"
)

type NudgeTone string

const (
	ToneSupportive    NudgeTone = "supportive"
	ToneCelebratory   NudgeTone = "celebratory"
	ToneGentleWarning NudgeTone = "gentle-warning"
)
