package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

const (
	DefaultWindowDays   = 14
	DefaultHealthyLimit = 6.0
)

// overloadEpsilon absorbs float noise from summing tenths.
const overloadEpsilon = 1e-9

// Options bounds the look-ahead window and sets the per-day overload threshold.
type Options struct {
	WindowDays   int
	HealthyLimit float64
}

// DefaultOptions returns a 14-day window with a 6 hour healthy limit.
func DefaultOptions() Options {
	return Options{WindowDays: DefaultWindowDays, HealthyLimit: DefaultHealthyLimit}
}

func (o Options) normalized() Options {
	if o.WindowDays <= 0 {
		o.WindowDays = DefaultWindowDays
	}
	if o.HealthyLimit <= 0 {
		o.HealthyLimit = DefaultHealthyLimit
	}
	return o
}

// Allocation is one task's share of work on one day.
type Allocation struct {
	TaskID   string
	TaskName string
	Hours    float64
}

// DayLoad holds every allocation landing on Date, in task input order.
type DayLoad struct {
	Date        time.Time
	Allocations []Allocation
	TotalHours  float64
	Overloaded  bool
}

// Schedule is the daily load over the look-ahead window, starting today.
type Schedule struct {
	Today        time.Time
	HealthyLimit float64
	Days         []DayLoad
}

// BuildSchedule spreads each incomplete task's hours evenly from today to
// its deadline, clipped to the window.
//
// Tasks due today or overdue put all their hours on today. Otherwise each of
// the first min(daysUntil, WindowDays) days gets hours/daysToSpread rounded to
// one decimal. Hours that would fall past the window are not shown. Day
// totals sum the rounded shares, so a task's visible total can differ
// slightly from its Hours.
func BuildSchedule(tasks []domain.Task, today time.Time, opts Options) Schedule {
	opts = opts.normalized()
	start := domain.DateOf(today)

	days := make([]DayLoad, opts.WindowDays)
	for i := range days {
		days[i].Date = start.AddDate(0, 0, i)
	}

	for _, task := range tasks {
		if task.Completed {
			continue
		}

		daysUntil := domain.DaysBetween(start, task.Deadline)
		if daysUntil <= 0 {
			days[0].add(task, task.Hours)
			continue
		}

		spread := min(daysUntil, opts.WindowDays)
		perDay := roundTenth(task.Hours / float64(spread))
		for i := 0; i < spread; i++ {
			days[i].add(task, perDay)
		}
	}

	for i := range days {
		days[i].Overloaded = days[i].TotalHours-opts.HealthyLimit > overloadEpsilon
	}

	return Schedule{Today: start, HealthyLimit: opts.HealthyLimit, Days: days}
}

func (d *DayLoad) add(task domain.Task, hours float64) {
	d.Allocations = append(d.Allocations, Allocation{TaskID: task.ID, TaskName: task.Name, Hours: hours})
	d.TotalHours += hours
}

// roundTenth rounds half away from zero to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// OverloadedDays returns the days whose total exceeds the healthy limit.
func (s Schedule) OverloadedDays() []DayLoad {
	var out []DayLoad
	for _, d := range s.Days {
		if d.Overloaded {
			out = append(out, d)
		}
	}
	return out
}

// PeakHours returns the largest day total in the window.
func (s Schedule) PeakHours() float64 {
	peak := 0.0
	for _, d := range s.Days {
		peak = math.Max(peak, d.TotalHours)
	}
	return peak
}

// TaskTotal returns the visible hours allocated to a task across the window.
func (s Schedule) TaskTotal(taskID string) float64 {
	total := 0.0
	for _, d := range s.Days {
		for _, a := range d.Allocations {
			if a.TaskID == taskID {
				total += a.Hours
			}
		}
	}
	return roundTenth(total)
}
