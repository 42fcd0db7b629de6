package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/mooncyc/internal/domain"
	"github.com/alexanderramin/mooncyc/internal/repository"
	"github.com/alexanderramin/mooncyc/internal/testutil"
	"github.com/stretchr/testify/require"
)

var anchor = domain.Date(2024, 3, 1)

type repos struct {
	db      *sql.DB
	cycles  *repository.SQLiteCycleRepo
	entries *repository.SQLiteSymptomLogRepo
	tasks   *repository.SQLiteTaskRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		db:      database,
		cycles:  repository.NewSQLiteCycleRepo(database),
		entries: repository.NewSQLiteSymptomLogRepo(database),
		tasks:   repository.NewSQLiteTaskRepo(database),
	}
}

// configure saves the reference cycle: anchored 2024-03-01, 28 days, 5-day period.
func (r repos) configure(t *testing.T) domain.CycleModel {
	t.Helper()
	c := testutil.ConfiguredCycle(anchor, 28, 5)
	require.NoError(t, r.cycles.Save(context.Background(), c))
	return c
}

type captureObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *captureObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *captureObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
