package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

// ValidateCycleRecord checks a cycle file before conversion.
// Returns every problem found, not just the first.
func ValidateCycleRecord(rec *CycleRecord) []error {
	var errs []error

	if rec.LastPeriod != nil {
		if _, err := parseDate(*rec.LastPeriod); err != nil {
			errs = append(errs, fmt.Errorf("last_period: invalid date format %q (expected YYYY-MM-DD)", *rec.LastPeriod))
		}
	}

	c := domain.CycleModel{CycleLength: lengthOr(rec.CycleLength, domain.DefaultCycleLength), PeriodLength: lengthOr(rec.PeriodLength, domain.DefaultPeriodLength)}
	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}

	for i, s := range rec.SymptomsLog {
		errs = append(errs, validateSymptomRecord(fmt.Sprintf("symptoms_log[%d]", i), s)...)
	}
	return errs
}

func validateSymptomRecord(prefix string, s SymptomRecord) []error {
	var errs []error
	if _, err := parseDate(s.Date); err != nil {
		errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, s.Date))
	}
	if s.Phase != nil {
		if _, err := domain.ParsePhase(*s.Phase); err != nil {
			errs = append(errs, fmt.Errorf("%s.phase: %w", prefix, err))
		}
	}
	if _, err := domain.ParseMood(s.Mood); err != nil {
		errs = append(errs, fmt.Errorf("%s.mood: %w", prefix, err))
	}
	if s.Energy < domain.MinEnergy || s.Energy > domain.MaxEnergy {
		errs = append(errs, fmt.Errorf("%s.energy: must be between %d and %d, got %d", prefix, domain.MinEnergy, domain.MaxEnergy, s.Energy))
	}
	return errs
}

// ValidateTaskRecords checks a task file before conversion.
func ValidateTaskRecords(recs []TaskRecord) []error {
	var errs []error
	for i, r := range recs {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if strings.TrimSpace(r.Task) == "" {
			errs = append(errs, fmt.Errorf("%s.task is required", prefix))
		}
		if _, err := domain.ParseCategory(r.Category); err != nil {
			errs = append(errs, fmt.Errorf("%s.category: %w", prefix, err))
		}
		if _, err := parseDate(r.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, r.Deadline))
		}
		if r.Hours < domain.MinTaskHours || r.Hours > domain.MaxTaskHours {
			errs = append(errs, fmt.Errorf("%s.hours: must be between %.1f and %.1f, got %g", prefix, domain.MinTaskHours, domain.MaxTaskHours, r.Hours))
		}
		if _, err := domain.ParseIntensity(r.Intensity); err != nil {
			errs = append(errs, fmt.Errorf("%s.intensity: %w", prefix, err))
		}
	}
	return errs
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, strings.TrimSpace(s))
}

// lengthOr substitutes def for a length missing from the file.
func lengthOr(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}
