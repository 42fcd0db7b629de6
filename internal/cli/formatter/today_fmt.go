package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
)

// FormatToday renders the daily phase overview.
func FormatToday(v *contract.TodayView) string {
	var b strings.Builder

	desc := v.Description
	fmt.Fprintf(&b, "%s  %s  %s\n\n",
		desc.Emoji,
		PhaseBadge(v.Phase),
		Dim(fmt.Sprintf("day %d of %d", v.DayOfCycle, v.CycleLength)))
	fmt.Fprintf(&b, "%s %s\n", Dim("Energy     "), RenderEnergy(v.Energy))
	fmt.Fprintf(&b, "%s %s %s\n\n", Dim("Next period"), Bold(ShortDate(v.NextPeriod)),
		Dim(fmt.Sprintf("(%s)", RelativeDateFrom(v.NextPeriod, v.Date))))

	fmt.Fprintf(&b, "%s\n", Bold(desc.Summary))
	fmt.Fprintf(&b, "%s\n\n", Dim(desc.Hormones))
	fmt.Fprintf(&b, "%s\n\n", wrap(desc.Feeling, 68))
	fmt.Fprintf(&b, "%s %s\n", StyleMauve.Render("Tip:"), wrap(desc.Tip, 63))

	if len(v.Calendar) > 0 {
		b.WriteString("\n")
		b.WriteString(formatCalendar(v.Calendar))
	}

	content := b.String()
	return RenderBox(ShortDate(v.Date), strings.TrimRight(content, "\n"))
}

// FormatExercise renders the movement advice for today's phase.
func FormatExercise(v *contract.TodayView) string {
	var b strings.Builder
	b.WriteString(Header("Movement"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s\n", Bold(v.Exercise.Activities))
	fmt.Fprintf(&b, "%s\n", Dim(wrap(v.Exercise.Rationale, 72)))
	return b.String()
}

func formatCalendar(days []contract.CalendarDay) string {
	headers := make([]string, len(days))
	cells := make([]string, len(days))
	for i, d := range days {
		headers[i] = Dim(d.Date.Format("Mon"))
		cells[i] = PhaseStyle(d.Phase).Render(fmt.Sprintf("%-3s", string(d.Phase)[:3]))
	}
	return strings.Join(headers, " ") + "\n" + strings.Join(cells, " ") + "\n"
}

// FormatCycle renders the stored cycle configuration.
func FormatCycle(c domain.CycleModel) string {
	if !c.Configured() {
		return Dim("No cycle configured yet. Run: mooncyc cycle set --last-period YYYY-MM-DD") + "\n"
	}
	rows := [][]string{
		{"Last period start", c.AnchorDate.Format(domain.DateLayout)},
		{"Cycle length", fmt.Sprintf("%d days", c.CycleLength)},
		{"Period length", fmt.Sprintf("%d days", c.PeriodLength)},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s  %s\n", Dim(fmt.Sprintf("%-18s", r[0])), Bold(r[1]))
	}
	return RenderBox("Cycle", strings.TrimRight(b.String(), "\n"))
}
