package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mooncyc/internal/contract"
	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/guidance"
	"github.com/alexanderramin/mooncyc/internal/importer"
	"github.com/alexanderramin/mooncyc/internal/scheduler"
)

type CycleService interface {
	// Configure records the start of the latest period and the cycle lengths.
	Configure(ctx context.Context, lastPeriod time.Time, cycleLength, periodLength int) (domain.CycleModel, error)
	Get(ctx context.Context) (domain.CycleModel, error)
	Today(ctx context.Context, req contract.TodayRequest) (*contract.TodayView, error)
}

type SymptomService interface {
	// Log appends an entry, snapshotting the phase on its date when the cycle
	// is configured.
	Log(ctx context.Context, e *domain.SymptomEntry) error
	List(ctx context.Context) ([]domain.SymptomEntry, error)
	Delete(ctx context.Context, id string) error
	Patterns(ctx context.Context, req contract.PatternsRequest) (*contract.PatternsView, error)
}

// NewTaskInput carries the fields of the add-task form.
type NewTaskInput struct {
	Name      string
	Category  domain.Category
	Deadline  time.Time
	Hours     float64
	Intensity domain.Intensity
}

type TaskService interface {
	Add(ctx context.Context, in NewTaskInput) (*domain.Task, error)
	// List returns tasks in insertion order.
	List(ctx context.Context, includeCompleted bool) ([]domain.Task, error)
	Complete(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
	Schedule(ctx context.Context, today time.Time) (scheduler.Schedule, error)
}

type GuidanceService interface {
	AIEnabled() bool
	Meditation(ctx context.Context, today time.Time) (guidance.Meditation, error)
	MealPlan(ctx context.Context, today time.Time) (guidance.MealPlan, error)
	Remedy(ctx context.Context, symptom string) (guidance.Remedy, error)
	// Remedies returns one remedy per symptom ever logged.
	Remedies(ctx context.Context) ([]guidance.Remedy, error)
}

// ImportResult holds the outcome of a data import.
type ImportResult struct {
	Configured bool
	EntryCount int
	TaskCount  int
}

type ArchiveService interface {
	// Import replaces all stored data with the records. Nothing is written
	// unless every record is valid.
	Import(ctx context.Context, cycle *importer.CycleRecord, tasks []importer.TaskRecord) (*ImportResult, error)
	ImportFiles(ctx context.Context, cyclePath, tasksPath string) (*ImportResult, error)
	Export(ctx context.Context) (importer.CycleRecord, []importer.TaskRecord, error)
	ExportFiles(ctx context.Context, cyclePath, tasksPath string) error
}
