package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/braindump/internal/domain"
)

const dumpPreviewWidth = 60

// FormatDumpHistory lists past dumps newest first, each with a one-line
// preview of what was written.
func FormatDumpHistory(dumps []*domain.BrainDump, now time.Time) string {
	if len(dumps) == 0 {
		return Dim("No brain dumps yet. Try `braindump dump`.") + "\n"
	}

	var b strings.Builder
	for i, d := range dumps {
		if i > 0 {
			b.WriteString("\n")
		}
		meta := fmt.Sprintf("%s · %d tasks", RelativeTimeFrom(d.CreatedAt, now), d.TaskCount)
		if d.Capacity != nil {
			meta += " · " + string(*d.Capacity) + " day"
		}
		if d.Provider != "" {
			meta += " · " + d.Provider
		}
		b.WriteString(Dim(meta))
		b.WriteString("\n")
		b.WriteString(preview(d.RawText))
		b.WriteString("\n")
	}
	return RenderBox("recent dumps", strings.TrimRight(b.String(), "\n")) + "\n"
}

func preview(text string) string {
	line := strings.Join(strings.Fields(text), " ")
	r := []rune(line)
	if len(r) <= dumpPreviewWidth {
		return line
	}
	return string(r[:dumpPreviewWidth-1]) + "…"
}
