package formatter

import (
	"strings"

	"github.com/alexanderramin/braindump/internal/domain"
)

// FormatNudge renders one nudge on a single line.
func FormatNudge(n domain.Nudge) string {
	icon := "💡"
	switch n.Tone {
	case domain.ToneCelebratory:
		icon = "🎉"
	case domain.ToneGentleWarning:
		icon = "⚠"
	}
	return icon + " " + ToneStyle(n.Tone).Render(n.Message)
}

func FormatNudges(nudges []domain.Nudge) string {
	if len(nudges) == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range nudges {
		b.WriteString(FormatNudge(n))
		b.WriteString("\n")
	}
	return b.String()
}
