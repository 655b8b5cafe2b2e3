package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements fail on re-run once the column exists.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillRecordIndex(db); err != nil {
		return fmt.Errorf("backfilling record index: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS session_records (
		id                  TEXT PRIMARY KEY,
		date                TEXT NOT NULL,
		start_time          TEXT NOT NULL DEFAULT '',
		end_time            TEXT NOT NULL DEFAULT '',
		effort              TEXT NOT NULL,
		tag                 TEXT NOT NULL DEFAULT '',
		descriptor          TEXT NOT NULL DEFAULT '',
		is_software_project INTEGER NOT NULL DEFAULT 0,
		is_release_day      INTEGER NOT NULL DEFAULT 0,
		year                INTEGER NOT NULL,
		month               INTEGER NOT NULL CHECK(month BETWEEN 1 AND 12),
		imported_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_records_year_month ON session_records(year, month)`,

	`CREATE TABLE IF NOT EXISTS yearly_targets (
		year       INTEGER PRIMARY KEY,
		target_min INTEGER NOT NULL CHECK(target_min >= 0),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS report_runs (
		id            TEXT PRIMARY KEY,
		generated_at  TEXT NOT NULL,
		years         TEXT NOT NULL DEFAULT '',
		record_count  INTEGER NOT NULL DEFAULT 0,
		total_min     INTEGER NOT NULL DEFAULT 0,
		warning_count INTEGER NOT NULL DEFAULT 0,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_report_runs_created ON report_runs(created_at)`,

	// File order of imported records
	`ALTER TABLE session_records ADD COLUMN idx INTEGER NOT NULL DEFAULT -1`,
	`CREATE INDEX IF NOT EXISTS idx_session_records_idx ON session_records(idx)`,

	// Incorrect effort count per run
	`ALTER TABLE report_runs ADD COLUMN incorrect_count INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillRecordIndex numbers records imported before the idx
// column existed, in (date, start_time, id) order after the highest
// existing index. Idempotent: does nothing when no record has idx = -1.
func migrateBackfillRecordIndex(db *sql.DB) error {
	ctx := context.Background()

	var pending int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_records WHERE idx < 0`).Scan(&pending); err != nil {
		return fmt.Errorf("counting unindexed records: %w", err)
	}
	if pending == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting backfill transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(idx), -1) + 1 FROM session_records`).Scan(&next); err != nil {
		return fmt.Errorf("reading max index: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM session_records WHERE idx < 0 ORDER BY date, start_time, id`)
	if err != nil {
		return fmt.Errorf("listing unindexed records: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning record id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating unindexed records: %w", err)
	}

	for _, id := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE session_records SET idx = ? WHERE id = ?`, next, id); err != nil {
			return fmt.Errorf("setting index for %s: %w", id, err)
		}
		next++
	}
	return tx.Commit()
}
