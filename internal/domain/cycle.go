package domain

import (
	"fmt"
	"time"
)

const (
	MinCycleLength      = 21
	MaxCycleLength      = 35
	MinPeriodLength     = 3
	MaxPeriodLength     = 7
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// CycleModel is the user's cycle configuration. AnchorDate is the start of
// the most recent recorded period; nil means the cycle is not configured.
type CycleModel struct {
	AnchorDate   *time.Time
	CycleLength  int
	PeriodLength int
}

// DefaultCycleModel returns an unconfigured model with the default lengths.
func DefaultCycleModel() CycleModel {
	return CycleModel{
		CycleLength:  DefaultCycleLength,
		PeriodLength: DefaultPeriodLength,
	}
}

// NewCycleModel validates the inputs and returns a configured model.
func NewCycleModel(anchor time.Time, cycleLength, periodLength int) (CycleModel, error) {
	a := DateOf(anchor)
	c := CycleModel{AnchorDate: &a, CycleLength: cycleLength, PeriodLength: periodLength}
	if err := c.Validate(); err != nil {
		return CycleModel{}, err
	}
	return c, nil
}

// Configured reports whether an anchor date has been recorded.
func (c CycleModel) Configured() bool {
	return c.AnchorDate != nil
}

// Validate checks the length ranges and the PeriodLength <= CycleLength invariant.
func (c CycleModel) Validate() error {
	var errs ValidationErrors
	if c.CycleLength < MinCycleLength || c.CycleLength > MaxCycleLength {
		errs = append(errs, &ValidationError{
			Field:   "cycle_length",
			Message: fmt.Sprintf("must be between %d and %d days, got %d", MinCycleLength, MaxCycleLength, c.CycleLength),
		})
	}
	if c.PeriodLength < MinPeriodLength || c.PeriodLength > MaxPeriodLength {
		errs = append(errs, &ValidationError{
			Field:   "period_length",
			Message: fmt.Sprintf("must be between %d and %d days, got %d", MinPeriodLength, MaxPeriodLength, c.PeriodLength),
		})
	}
	if c.PeriodLength > c.CycleLength {
		errs = append(errs, &ValidationError{
			Field:   "period_length",
			Message: fmt.Sprintf("period length %d exceeds cycle length %d", c.PeriodLength, c.CycleLength),
		})
	}
	return errs.orNil()
}
