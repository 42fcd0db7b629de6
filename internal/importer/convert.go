package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/google/uuid"
)

// CycleToDomain converts a validated cycle record into the cycle model and
// its symptom log, in file order. Call ValidateCycleRecord first.
func CycleToDomain(rec *CycleRecord) (domain.CycleModel, []domain.SymptomEntry, error) {
	c := domain.CycleModel{
		CycleLength:  lengthOr(rec.CycleLength, domain.DefaultCycleLength),
		PeriodLength: lengthOr(rec.PeriodLength, domain.DefaultPeriodLength),
	}
	if rec.LastPeriod != nil {
		d, err := parseDate(*rec.LastPeriod)
		if err != nil {
			return domain.CycleModel{}, nil, fmt.Errorf("parsing last_period: %w", err)
		}
		c.AnchorDate = &d
	}

	// Entries in one file share a base timestamp; the offset keeps file order
	// for entries logged on the same date.
	base := time.Now().UTC()
	entries := make([]domain.SymptomEntry, 0, len(rec.SymptomsLog))
	for i, s := range rec.SymptomsLog {
		date, err := parseDate(s.Date)
		if err != nil {
			return domain.CycleModel{}, nil, fmt.Errorf("parsing symptoms_log[%d].date: %w", i, err)
		}
		mood, err := domain.ParseMood(s.Mood)
		if err != nil {
			return domain.CycleModel{}, nil, fmt.Errorf("symptoms_log[%d]: %w", i, err)
		}
		e := domain.SymptomEntry{
			ID:        uuid.New().String(),
			Date:      date,
			Mood:      mood,
			Energy:    s.Energy,
			Symptoms:  append([]string(nil), s.Symptoms...),
			Notes:     s.Notes,
			CreatedAt: base.Add(time.Duration(i) * time.Microsecond),
		}
		if s.Phase != nil {
			p, err := domain.ParsePhase(*s.Phase)
			if err != nil {
				return domain.CycleModel{}, nil, fmt.Errorf("symptoms_log[%d]: %w", i, err)
			}
			e.Phase = &p
		}
		entries = append(entries, e)
	}
	return c, entries, nil
}

// TasksToDomain converts validated task records into tasks, in file order.
// Call ValidateTaskRecords first.
func TasksToDomain(recs []TaskRecord) ([]domain.Task, error) {
	now := time.Now().UTC()
	tasks := make([]domain.Task, 0, len(recs))
	for i, r := range recs {
		category, err := domain.ParseCategory(r.Category)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		intensity, err := domain.ParseIntensity(r.Intensity)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		deadline, err := parseDate(r.Deadline)
		if err != nil {
			return nil, fmt.Errorf("parsing tasks[%d].deadline: %w", i, err)
		}
		tasks = append(tasks, domain.Task{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(r.Task),
			Category:  category,
			Deadline:  deadline,
			Hours:     r.Hours,
			Intensity: intensity,
			Completed: r.Completed,
			CreatedAt: now,
		})
	}
	return tasks, nil
}

// CycleFromDomain builds the persisted cycle record.
func CycleFromDomain(c domain.CycleModel, entries []domain.SymptomEntry) CycleRecord {
	rec := CycleRecord{
		CycleLength:  c.CycleLength,
		PeriodLength: c.PeriodLength,
		SymptomsLog:  make([]SymptomRecord, 0, len(entries)),
	}
	if c.AnchorDate != nil {
		s := c.AnchorDate.Format(domain.DateLayout)
		rec.LastPeriod = &s
	}
	for _, e := range entries {
		s := SymptomRecord{
			Date:     e.Date.Format(domain.DateLayout),
			Mood:     e.Mood.Label(),
			Energy:   e.Energy,
			Symptoms: e.Symptoms,
			Notes:    e.Notes,
		}
		if s.Symptoms == nil {
			s.Symptoms = []string{}
		}
		if e.Phase != nil {
			p := string(*e.Phase)
			s.Phase = &p
		}
		rec.SymptomsLog = append(rec.SymptomsLog, s)
	}
	return rec
}

// TasksFromDomain builds the persisted task records.
func TasksFromDomain(tasks []domain.Task) []TaskRecord {
	recs := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		recs = append(recs, TaskRecord{
			Task:      t.Name,
			Category:  string(t.Category),
			Deadline:  t.Deadline.Format(domain.DateLayout),
			Hours:     t.Hours,
			Intensity: string(t.Intensity),
			Completed: t.Completed,
		})
	}
	return recs
}
