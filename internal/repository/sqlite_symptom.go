package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mooncyc/internal/db"
	"github.com/alexanderramin/mooncyc/internal/domain"
)

const symptomColumns = `id, date, phase, mood, energy, symptoms, notes, created_at`

// SQLiteSymptomLogRepo implements SymptomLogRepo using a SQLite database.
type SQLiteSymptomLogRepo struct {
	db db.DBTX
}

// NewSQLiteSymptomLogRepo creates a new SQLiteSymptomLogRepo.
func NewSQLiteSymptomLogRepo(conn db.DBTX) *SQLiteSymptomLogRepo {
	return &SQLiteSymptomLogRepo{db: conn}
}

func (r *SQLiteSymptomLogRepo) Append(ctx context.Context, e *domain.SymptomEntry) error {
	symptoms := e.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	tags, err := json.Marshal(symptoms)
	if err != nil {
		return fmt.Errorf("encoding symptoms: %w", err)
	}

	var phase any
	if e.Phase != nil {
		phase = string(*e.Phase)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO symptom_logs (`+symptomColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Date.Format(domain.DateLayout),
		phase,
		int(e.Mood),
		e.Energy,
		string(tags),
		e.Notes,
		formatTimestamp(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting symptom entry: %w", err)
	}
	return nil
}

func (r *SQLiteSymptomLogRepo) List(ctx context.Context) ([]domain.SymptomEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+symptomColumns+` FROM symptom_logs ORDER BY date, created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing symptom entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.SymptomEntry
	for rows.Next() {
		e, err := scanSymptomEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating symptom entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteSymptomLogRepo) GetByID(ctx context.Context, id string) (*domain.SymptomEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+symptomColumns+` FROM symptom_logs WHERE id = ?`, id)
	e, err := scanSymptomEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("symptom entry")
	}
	return e, err
}

func (r *SQLiteSymptomLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM symptom_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting symptom entry: %w", err)
	}
	return checkAffected(res, "symptom entry")
}

func (r *SQLiteSymptomLogRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM symptom_logs`); err != nil {
		return fmt.Errorf("clearing symptom log: %w", err)
	}
	return nil
}

func scanSymptomEntry(s rowScanner) (*domain.SymptomEntry, error) {
	var (
		e         domain.SymptomEntry
		date      string
		phase     sql.NullString
		mood      int
		tags      string
		createdAt string
	)
	if err := s.Scan(&e.ID, &date, &phase, &mood, &e.Energy, &tags, &e.Notes, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning symptom entry: %w", err)
	}

	d, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parsing symptom entry date %q: %w", date, err)
	}
	e.Date = d
	e.Mood = domain.Mood(mood)
	e.CreatedAt = parseTimestamp(createdAt)
	if phase.Valid {
		p := domain.Phase(phase.String)
		e.Phase = &p
	}
	if err := json.Unmarshal([]byte(tags), &e.Symptoms); err != nil {
		return nil, fmt.Errorf("decoding symptoms of entry %s: %w", e.ID, err)
	}
	return &e, nil
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}
