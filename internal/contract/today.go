package contract

import (
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
)

// DefaultCalendarDays is the length of the phase strip shown under today's phase.
const DefaultCalendarDays = 7

type TodayRequest struct {
	Now          *time.Time
	CalendarDays int
}

func NewTodayRequest() TodayRequest {
	return TodayRequest{CalendarDays: DefaultCalendarDays}
}

// TodayView is the dashboard header: where the user is in the cycle and
// what that phase means.
type TodayView struct {
	Date time.Time `json:"date"`
	// DayOfCycle is one-based.
	DayOfCycle          int                       `json:"day_of_cycle"`
	CycleLength         int                       `json:"cycle_length"`
	Phase               domain.Phase              `json:"phase"`
	Energy              int                       `json:"energy"`
	Description         guidance.PhaseDescription `json:"description"`
	Exercise            guidance.ExerciseAdvice   `json:"exercise"`
	NextPeriod          time.Time                 `json:"next_period"`
	DaysUntilNextPeriod int                       `json:"days_until_next_period"`
	Calendar            []CalendarDay             `json:"calendar,omitempty"`
}

// CalendarDay is one cell of the phase strip.
type CalendarDay struct {
	Date       time.Time    `json:"date"`
	DayOfCycle int          `json:"day_of_cycle"`
	Phase      domain.Phase `json:"phase"`
}
