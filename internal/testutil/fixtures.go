package testutil

import (
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/google/uuid"
)

// ConfiguredCycle returns a validated model anchored at anchor.
func ConfiguredCycle(anchor time.Time, cycleLength, periodLength int) domain.CycleModel {
	c, err := domain.NewCycleModel(anchor, cycleLength, periodLength)
	if err != nil {
		panic(err)
	}
	return c
}

// Task options
type TaskOption func(*domain.Task)

func WithCategory(c domain.Category) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithIntensity(i domain.Intensity) TaskOption {
	return func(t *domain.Task) {
		t.Intensity = i
	}
}

func Completed() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func NewTestTask(name string, deadline time.Time, hours float64, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  domain.CategoryWork,
		Deadline:  domain.DateOf(deadline),
		Hours:     hours,
		Intensity: domain.IntensityModerate,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SymptomEntry options
type EntryOption func(*domain.SymptomEntry)

func WithMood(m domain.Mood) EntryOption {
	return func(e *domain.SymptomEntry) {
		e.Mood = m
	}
}

func WithEnergy(n int) EntryOption {
	return func(e *domain.SymptomEntry) {
		e.Energy = n
	}
}

func WithPhase(p domain.Phase) EntryOption {
	return func(e *domain.SymptomEntry) {
		e.Phase = &p
	}
}

func WithNotes(s string) EntryOption {
	return func(e *domain.SymptomEntry) {
		e.Notes = s
	}
}

func NewTestEntry(date time.Time, symptoms []string, opts ...EntryOption) *domain.SymptomEntry {
	e := &domain.SymptomEntry{
		ID:        uuid.New().String(),
		Date:      domain.DateOf(date),
		Mood:      domain.MoodNeutral,
		Energy:    3,
		Symptoms:  symptoms,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
