package domain

// Nudge is an ephemeral message produced by one nudge check. The caller
// decides whether and how to show or dismiss it.
type Nudge struct {
	Type        NudgeType `json:"type"`
	Message     string    `json:"message"`
	Tone        NudgeTone `json:"tone"`
	ShowInApp   bool      `json:"showInApp"`
	Dismissible bool      `json:"dismissible"`
}
