package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
)

// FormatSchedule renders the workload chart followed by the per-day
// breakdown and any overload warnings.
func FormatSchedule(s scheduler.Schedule) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Workload · next %d days", len(s.Days))))
	b.WriteString("\n")

	if s.PeakHours() == 0 {
		b.WriteString(Dim("Nothing scheduled. Add a task with: mooncyc task add"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(RenderLoadChart(s))
	b.WriteString("\n")

	for _, day := range s.Days {
		if len(day.Allocations) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s\n", Bold(ShortDate(day.Date)))
		for _, a := range day.Allocations {
			fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%6s", FormatHours(a.Hours))), a.TaskName)
		}
	}

	if over := s.OverloadedDays(); len(over) > 0 {
		b.WriteString("\n")
		dates := make([]string, len(over))
		for i, d := range over {
			dates[i] = ShortDate(d.Date)
		}
		fmt.Fprintf(&b, "%s %s\n",
			StyleOverload.Render("⚠ Over the healthy limit on"),
			strings.Join(dates, ", "))
	}

	return b.String()
}

// FormatTaskList renders tasks sorted by deadline with urgency relative to today.
func FormatTaskList(tasks []domain.Task, today time.Time) string {
	if len(tasks) == 0 {
		return Dim("No tasks. Add one with: mooncyc task add") + "\n"
	}

	headers := []string{"ID", "TASK", "CATEGORY", "HOURS", "INTENSITY", "DEADLINE", "URGENCY"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range scheduler.SortByDeadline(tasks) {
		name := t.Name
		urgency := UrgencyIndicator(scheduler.Urgency(t.Deadline, today))
		if t.Completed {
			name = Dim("✔ " + t.Name)
			urgency = Dim("done")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			name,
			string(t.Category),
			FormatHours(t.Hours),
			string(t.Intensity),
			fmt.Sprintf("%s %s", t.Deadline.Format(domain.DateLayout), Dim(RelativeDateFrom(t.Deadline, today))),
			urgency,
		})
	}
	return RenderTable(headers, rows)
}

// FormatTaskAdded confirms a new task.
func FormatTaskAdded(t *domain.Task) string {
	return fmt.Sprintf("%s %s %s\n", StyleSage.Render("✔ Added"), Bold(t.Name), TruncID(t.ID))
}
