package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

// Mauve palette.
var (
	ColorMauve    = lipgloss.Color("#d8bfd8")
	ColorPlum     = lipgloss.Color("#b39eb5")
	ColorMist     = lipgloss.Color("#c8b8c8")
	ColorDeep     = lipgloss.Color("#6b5b7a")
	ColorRose     = lipgloss.Color("#e07a8f")
	ColorSage     = lipgloss.Color("#9fc5a8")
	ColorHoney    = lipgloss.Color("#e8c07d")
	ColorSky      = lipgloss.Color("#9ab8d8")
	ColorDim      = lipgloss.Color("#8a7f8f")
	ColorFg       = lipgloss.Color("#f0e6f0")
	ColorHeader   = ColorPlum
	ColorOverload = lipgloss.Color("#d9534f")
)

// Predefined lipgloss styles.
var (
	StyleRose     = lipgloss.NewStyle().Foreground(ColorRose)
	StyleSage     = lipgloss.NewStyle().Foreground(ColorSage)
	StyleHoney    = lipgloss.NewStyle().Foreground(ColorHoney)
	StyleSky      = lipgloss.NewStyle().Foreground(ColorSky)
	StyleMauve    = lipgloss.NewStyle().Foreground(ColorMauve)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg       = lipgloss.NewStyle().Foreground(ColorFg)
	StyleOverload = lipgloss.NewStyle().Foreground(ColorOverload).Bold(true)
	StyleHeader   = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold     = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStyle returns the style used for a phase everywhere it is drawn.
func PhaseStyle(p domain.Phase) lipgloss.Style {
	switch p {
	case domain.PhaseMenstrual:
		return StyleRose
	case domain.PhaseFollicular:
		return StyleSage
	case domain.PhaseOvulation:
		return StyleHoney
	case domain.PhaseLuteal:
		return StyleSky
	default:
		return StyleDim
	}
}

// PhaseBadge renders a phase as a colored label such as "● Luteal".
func PhaseBadge(p domain.Phase) string {
	return PhaseStyle(p).Render("● " + string(p))
}

// PhaseInitial is the one-letter cell used in the phase strip.
func PhaseInitial(p domain.Phase) string {
	if p == "" {
		return StyleDim.Render("·")
	}
	return PhaseStyle(p).Render(string(p)[:1])
}

// UrgencyIndicator returns a colored deadline urgency marker.
func UrgencyIndicator(u scheduler.UrgencyLevel) string {
	switch u {
	case scheduler.UrgencyUrgent:
		return StyleOverload.Render("● URGENT")
	case scheduler.UrgencySoon:
		return StyleHoney.Render("● SOON")
	case scheduler.UrgencyRelaxed:
		return StyleSage.Render("● RELAXED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
