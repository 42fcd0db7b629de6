package db

import (
	"database/sql"
	"fmt"
	"strings"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS cycle_config (
		id            TEXT PRIMARY KEY CHECK(id = 'default'),
		last_period   TEXT,
		cycle_length  INTEGER NOT NULL CHECK(cycle_length BETWEEN 21 AND 35),
		period_length INTEGER NOT NULL CHECK(period_length BETWEEN 3 AND 7),
		updated_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS symptom_logs (
		id         TEXT PRIMARY KEY,
		date       TEXT NOT NULL,
		phase      TEXT CHECK(phase IS NULL OR phase IN ('Menstrual','Follicular','Ovulation','Luteal')),
		mood       INTEGER NOT NULL CHECK(mood BETWEEN 1 AND 8),
		energy     INTEGER NOT NULL CHECK(energy BETWEEN 1 AND 5),
		symptoms   TEXT NOT NULL DEFAULT '[]',
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_symptom_logs_date ON symptom_logs(date)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL CHECK(length(trim(name)) > 0),
		category   TEXT NOT NULL CHECK(category IN ('Work','Study','Personal','Exercise','Creative')),
		deadline   TEXT NOT NULL,
		hours      REAL NOT NULL CHECK(hours BETWEEN 0.5 AND 20.0),
		intensity  TEXT NOT NULL CHECK(intensity IN ('Light','Moderate','Demanding')),
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,
	// Insertion order used to come from rowid; position makes it explicit so
	// an import can restore the archived order.
	`ALTER TABLE tasks ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_position ON tasks(position)`,
}

// Migrate runs all schema migrations. It is safe to run repeatedly.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillTaskPositions(db); err != nil {
		return fmt.Errorf("backfilling task positions: %w", err)
	}
	return nil
}

// backfillTaskPositions numbers tasks created before the position column
// existed, keeping their rowid order.
func backfillTaskPositions(db *sql.DB) error {
	var unnumbered int
	if err := db.QueryRow(`SELECT COUNT(*) FROM tasks WHERE position = 0`).Scan(&unnumbered); err != nil {
		return err
	}
	if unnumbered == 0 {
		return nil
	}
	_, err := db.Exec(`UPDATE tasks SET position = (
		SELECT COUNT(*) FROM tasks AS earlier WHERE earlier.rowid <= tasks.rowid
	) WHERE position = 0`)
	return err
}
