package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/braindump/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Soft palette; the five task colors match the web app's swatches.
var (
	ColorTaskBlue   = lipgloss.Color("#7aa2f7")
	ColorTaskCoral  = lipgloss.Color("#ff8c7a")
	ColorTaskGreen  = lipgloss.Color("#9ece6a")
	ColorTaskOrange = lipgloss.Color("#ff9e64")
	ColorTaskPurple = lipgloss.Color("#bb9af7")
	ColorDim        = lipgloss.Color("#737aa2")
	ColorFg         = lipgloss.Color("#c0caf5")
	ColorHeader     = lipgloss.Color("#e0af68")
)

var (
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorTaskGreen)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorTaskOrange)
	StylePurple = lipgloss.NewStyle().Foreground(ColorTaskPurple)
)

var taskColors = map[domain.Color]lipgloss.Color{
	domain.ColorBlue:   ColorTaskBlue,
	domain.ColorCoral:  ColorTaskCoral,
	domain.ColorGreen:  ColorTaskGreen,
	domain.ColorOrange: ColorTaskOrange,
	domain.ColorPurple: ColorTaskPurple,
}

// TaskStyle returns the foreground style for a task color.
func TaskStyle(c domain.Color) lipgloss.Style {
	if lc, ok := taskColors[c]; ok {
		return lipgloss.NewStyle().Foreground(lc)
	}
	return StyleFg
}

// ColorDot renders a filled dot in the task's color.
func ColorDot(c domain.Color) string {
	return TaskStyle(c).Render("●")
}

// EnergyLabel renders an energy class as a short colored word.
func EnergyLabel(e domain.Energy) string {
	switch e {
	case domain.EnergyDraining:
		return StyleOrange.Render("draining")
	case domain.EnergyEnergizing:
		return StyleGreen.Render("energizing")
	default:
		return StyleDim.Render("neutral")
	}
}

// ToneStyle picks the style a nudge is shown in.
func ToneStyle(t domain.NudgeTone) lipgloss.Style {
	switch t {
	case domain.ToneCelebratory:
		return StylePurple
	case domain.ToneGentleWarning:
		return StyleOrange
	default:
		return StyleGreen
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(strings.Repeat("─", len(upper))))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
