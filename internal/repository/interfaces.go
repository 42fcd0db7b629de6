package repository

import (
	"context"

	"github.com/alexanderramin/mooncyc/internal/domain"
)

// CycleRepo stores the single cycle configuration.
type CycleRepo interface {
	// Get returns the saved model, or the unconfigured default when none exists.
	Get(ctx context.Context) (domain.CycleModel, error)
	Save(ctx context.Context, c domain.CycleModel) error
}

// SymptomLogRepo stores the append-only symptom log.
type SymptomLogRepo interface {
	Append(ctx context.Context, e *domain.SymptomEntry) error
	// List returns every entry ordered by date, then creation time.
	List(ctx context.Context) ([]domain.SymptomEntry, error)
	GetByID(ctx context.Context, id string) (*domain.SymptomEntry, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// TaskRepo stores the task list in insertion order.
type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
