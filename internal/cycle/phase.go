package cycle

import (
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

// Fixed phase thresholds, in zero-based cycle days.
const (
	OvulationStartDay = 14
	LutealStartDay    = 16
)

// DayInCycle returns the zero-based offset of target within its cycle, in
// [0, CycleLength). Dates before the anchor wrap backwards into the previous
// cycle.
func DayInCycle(c domain.CycleModel, target time.Time) (int, error) {
	if !c.Configured() {
		return 0, domain.NewNotConfiguredError()
	}
	if c.CycleLength <= 0 {
		return 0, &domain.ValidationError{Field: "cycle_length", Message: "must be positive"}
	}
	return floorMod(domain.DaysBetween(*c.AnchorDate, target), c.CycleLength), nil
}

// floorMod is a modulo whose result takes the sign of n, so it is never
// negative for positive n. Go's % truncates toward zero.
func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// PhaseForDay applies the boundary rule to a zero-based cycle day.
//
// With periodLength >= 14 the Follicular branch is unreachable because the
// Menstrual branch consumes it. Domain validation keeps periodLength <= 7.
func PhaseForDay(day, periodLength int) domain.Phase {
	switch {
	case day < periodLength:
		return domain.PhaseMenstrual
	case day < OvulationStartDay:
		return domain.PhaseFollicular
	case day < LutealStartDay:
		return domain.PhaseOvulation
	default:
		return domain.PhaseLuteal
	}
}

// PhaseFor returns the phase on target.
func PhaseFor(c domain.CycleModel, target time.Time) (domain.Phase, error) {
	day, err := DayInCycle(c, target)
	if err != nil {
		return "", err
	}
	return PhaseForDay(day, c.PeriodLength), nil
}

// EnergyLevel returns the expected energy for a phase on a 1..5 scale.
func EnergyLevel(p domain.Phase) int {
	switch p {
	case domain.PhaseMenstrual:
		return 2
	case domain.PhaseFollicular:
		return 4
	case domain.PhaseOvulation:
		return 5
	case domain.PhaseLuteal:
		return 3
	default:
		return 3
	}
}

// NextPeriodStart returns the first date strictly after today on which a new
// cycle begins.
func NextPeriodStart(c domain.CycleModel, today time.Time) (time.Time, error) {
	day, err := DayInCycle(c, today)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOf(today).AddDate(0, 0, c.CycleLength-day), nil
}

// PhaseDay pairs a date with its phase.
type PhaseDay struct {
	Date       time.Time
	DayInCycle int
	Phase      domain.Phase
}

// PhaseCalendar returns the phase of each of the days consecutive dates
// starting at from.
func PhaseCalendar(c domain.CycleModel, from time.Time, days int) ([]PhaseDay, error) {
	if !c.Configured() {
		return nil, domain.NewNotConfiguredError()
	}
	out := make([]PhaseDay, 0, days)
	start := domain.DateOf(from)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		day, err := DayInCycle(c, date)
		if err != nil {
			return nil, err
		}
		out = append(out, PhaseDay{Date: date, DayInCycle: day, Phase: PhaseForDay(day, c.PeriodLength)})
	}
	return out, nil
}
