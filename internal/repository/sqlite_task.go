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

const taskColumns = `id, name, category, deadline, hours, intensity, completed, created_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

// Create appends t after every existing task.
func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM tasks))`,
		t.ID,
		t.Name,
		string(t.Category),
		t.Deadline.Format(domain.DateLayout),
		t.Hours,
		string(t.Intensity),
		boolToInt(t.Completed),
		formatTimestamp(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("task")
	}
	return t, err
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY position, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET name = ?, category = ?, deadline = ?, hours = ?, intensity = ?, completed = ?
		WHERE id = ?`,
		t.Name,
		string(t.Category),
		t.Deadline.Format(domain.DateLayout),
		t.Hours,
		string(t.Intensity),
		boolToInt(t.Completed),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return checkAffected(res, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return checkAffected(res, "task")
}

func (r *SQLiteTaskRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	return nil
}

func scanTask(s rowScanner) (*domain.Task, error) {
	var (
		t         domain.Task
		category  string
		deadline  string
		intensity string
		completed int
		createdAt string
	)
	if err := s.Scan(&t.ID, &t.Name, &category, &deadline, &t.Hours, &intensity, &completed, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	d, err := time.Parse(domain.DateLayout, deadline)
	if err != nil {
		return nil, fmt.Errorf("parsing deadline of task %s: %w", t.ID, err)
	}
	t.Deadline = d
	t.Category = domain.Category(category)
	t.Intensity = domain.Intensity(intensity)
	t.Completed = completed != 0
	t.CreatedAt = parseTimestamp(createdAt)
	return &t, nil
}
