package scheduler

import (
	"sort"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

type UrgencyLevel string

const (
	UrgencyUrgent  UrgencyLevel = "urgent"
	UrgencySoon    UrgencyLevel = "soon"
	UrgencyRelaxed UrgencyLevel = "relaxed"
)

// Urgency classifies a deadline: urgent within 2 days (or overdue), soon
// within 5, relaxed otherwise.
func Urgency(deadline, today time.Time) UrgencyLevel {
	daysLeft := domain.DaysBetween(today, deadline)
	switch {
	case daysLeft <= 2:
		return UrgencyUrgent
	case daysLeft <= 5:
		return UrgencySoon
	default:
		return UrgencyRelaxed
	}
}

// SortByDeadline returns a copy of tasks ordered earliest deadline first.
// Equal deadlines keep input order.
func SortByDeadline(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Deadline.Before(sorted[j].Deadline)
	})
	return sorted
}
