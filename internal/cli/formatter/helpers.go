package formatter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/charmbracelet/lipgloss"
)

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDeep).
	Padding(1, 2)

// RenderBox frames content in a rounded mauve border. A non-empty title is
// shown uppercased above the content.
func RenderBox(title string, content string) string {
	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleHeader.Render(strings.ToUpper(title)), "", content))
}

// RelativeDateFrom describes how far t lies from now in calendar days:
// "Today", "In 3d", "2w ago", "In 4mo".
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := domain.DaysBetween(now, t)
	switch days {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	case -1:
		return "Yesterday"
	}
	if days > 0 {
		return "In " + span(days)
	}
	return span(-days) + " ago"
}

// span abbreviates a positive day count to days, weeks or months.
func span(days int) string {
	switch {
	case days < 14:
		return strconv.Itoa(days) + "d"
	case days < 60:
		return strconv.Itoa(days/7) + "w"
	default:
		return strconv.Itoa(days/30) + "mo"
	}
}

// ShortDate formats a date like "Mon Mar 4".
func ShortDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// shortIDLen is how much of a uuid the tables show; resolve accepts any
// unique prefix.
const shortIDLen = 8

func TruncID(id string) string {
	return StyleDim.Render(id[:min(len(id), shortIDLen)])
}

// FormatHours renders hours with at most one decimal, e.g. "2.5h" or "3h".
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*10)/10, 'f', -1, 64) + "h"
}

// SourceLine is the attribution shown under generated guidance.
func SourceLine(src guidance.Source, model string) string {
	if src == guidance.SourceAI {
		return StyleMauve.Render("✦ " + src.Label(model))
	}
	return Dim("✎ " + src.Label(model))
}

// wrap breaks text at spaces so no line exceeds width.
func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
