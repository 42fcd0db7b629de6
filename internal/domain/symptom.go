package domain

import (
	"fmt"
	"time"
)

// NoneSymptom is the sentinel tag meaning "no symptoms today". It is stored
// as logged but never counted.
const NoneSymptom = "None"

const (
	MinEnergy = 1
	MaxEnergy = 5
)

// SymptomEntry is one day's log. Entries are appended to the log and never
// edited in place.
type SymptomEntry struct {
	ID        string
	Date      time.Time
	Phase     *Phase
	Mood      Mood
	Energy    int
	Symptoms  []string
	Notes     string
	CreatedAt time.Time
}

// Validate checks mood, energy and the phase snapshot.
func (e *SymptomEntry) Validate() error {
	var errs ValidationErrors
	if e.Date.IsZero() {
		errs = append(errs, &ValidationError{Field: "date", Message: "is required"})
	}
	if !e.Mood.Valid() {
		errs = append(errs, &ValidationError{Field: "mood", Message: fmt.Sprintf("unknown mood level %d", int(e.Mood))})
	}
	if e.Energy < MinEnergy || e.Energy > MaxEnergy {
		errs = append(errs, &ValidationError{
			Field:   "energy",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinEnergy, MaxEnergy, e.Energy),
		})
	}
	if e.Phase != nil && !e.Phase.Valid() {
		errs = append(errs, &ValidationError{Field: "phase", Message: fmt.Sprintf("unknown phase %q", *e.Phase)})
	}
	return errs.orNil()
}

// CountedSymptoms returns the entry's tags with the None sentinel removed.
func (e *SymptomEntry) CountedSymptoms() []string {
	out := make([]string, 0, len(e.Symptoms))
	for _, s := range e.Symptoms {
		if s != NoneSymptom {
			out = append(out, s)
		}
	}
	return out
}

// SymptomCatalog is the tag list offered by the log form.
var SymptomCatalog = []string{
	"Cramps", "Bloating", "Headache", "Irritable", "Stressed",
	"Tired", "Low Energy", "Pissed", "Intolerant", "Migraine",
	"Fatigue", "Irritability", "Anxiety", "Depression",
	"Breast tenderness", "Acne", "Back pain", "Very self-critical",
	"Sweet cravings", "Salty cravings", "Increased appetite",
	"Nausea", "Insomnia", "Brain fog", "Hungry", "Calm",
	"Energized", "Happy", "Enthusiastic", "Creative", NoneSymptom,
}
