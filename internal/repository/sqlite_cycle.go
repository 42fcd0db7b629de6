package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mooncyc/internal/db"
	"github.com/alexanderramin/mooncyc/internal/domain"
)

// SQLiteCycleRepo implements CycleRepo using a SQLite database.
type SQLiteCycleRepo struct {
	db db.DBTX
}

// NewSQLiteCycleRepo creates a new SQLiteCycleRepo.
func NewSQLiteCycleRepo(conn db.DBTX) *SQLiteCycleRepo {
	return &SQLiteCycleRepo{db: conn}
}

func (r *SQLiteCycleRepo) Get(ctx context.Context) (domain.CycleModel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT last_period, cycle_length, period_length FROM cycle_config WHERE id = 'default'`)

	var lastPeriod sql.NullString
	c := domain.DefaultCycleModel()
	if err := row.Scan(&lastPeriod, &c.CycleLength, &c.PeriodLength); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DefaultCycleModel(), nil
		}
		return domain.CycleModel{}, fmt.Errorf("scanning cycle config: %w", err)
	}
	c.AnchorDate = parseNullableDate(lastPeriod)
	return c, nil
}

func (r *SQLiteCycleRepo) Save(ctx context.Context, c domain.CycleModel) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cycle_config (id, last_period, cycle_length, period_length, updated_at)
		VALUES ('default', ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_period = excluded.last_period,
			cycle_length = excluded.cycle_length,
			period_length = excluded.period_length,
			updated_at = excluded.updated_at`,
		nullableDate(c.AnchorDate),
		c.CycleLength,
		c.PeriodLength,
		formatTimestamp(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("saving cycle config: %w", err)
	}
	return nil
}
