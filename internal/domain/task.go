package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinTaskHours = 0.5
	MaxTaskHours = 20.0
)

// Task is one item of the user's task list.
type Task struct {
	ID        string
	Name      string
	Category  Category
	Deadline  time.Time
	Hours     float64
	Intensity Intensity
	Completed bool
	CreatedAt time.Time
}

// NewTask validates the inputs and returns an incomplete task.
func NewTask(name string, category Category, deadline time.Time, hours float64, intensity Intensity) (*Task, error) {
	t := &Task{
		Name:      strings.TrimSpace(name),
		Category:  category,
		Deadline:  DateOf(deadline),
		Hours:     hours,
		Intensity: intensity,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Task) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, &ValidationError{Field: "name", Message: "must not be empty"})
	}
	if !t.Category.Valid() {
		errs = append(errs, &ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", t.Category)})
	}
	if t.Deadline.IsZero() {
		errs = append(errs, &ValidationError{Field: "deadline", Message: "is required"})
	}
	if t.Hours < MinTaskHours || t.Hours > MaxTaskHours {
		errs = append(errs, &ValidationError{
			Field:   "hours",
			Message: fmt.Sprintf("must be between %.1f and %.1f, got %g", MinTaskHours, MaxTaskHours, t.Hours),
		})
	}
	if !t.Intensity.Valid() {
		errs = append(errs, &ValidationError{Field: "intensity", Message: fmt.Sprintf("unknown intensity %q", t.Intensity)})
	}
	return errs.orNil()
}

// MarkCompleted flags the task done. Completing twice is a no-op.
func (t *Task) MarkCompleted() {
	t.Completed = true
}
