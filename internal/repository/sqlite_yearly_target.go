package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/domain"
)

// SQLiteYearlyTargetRepo implements YearlyTargetRepo using a SQLite database.
type SQLiteYearlyTargetRepo struct {
	db db.DBTX
}

func NewSQLiteYearlyTargetRepo(db db.DBTX) *SQLiteYearlyTargetRepo {
	return &SQLiteYearlyTargetRepo{db: db}
}

func (r *SQLiteYearlyTargetRepo) Upsert(ctx context.Context, t domain.YearlyTarget) error {
	query := `INSERT INTO yearly_targets (year, target_min, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(year) DO UPDATE SET target_min = excluded.target_min, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, t.Year, durationToMinutes(t.Target), nowUTC()); err != nil {
		return fmt.Errorf("upserting yearly target %d: %w", t.Year, err)
	}
	return nil
}

func (r *SQLiteYearlyTargetRepo) Get(ctx context.Context, year int) (domain.YearlyTarget, error) {
	var minutes int64
	err := r.db.QueryRowContext(ctx, `SELECT target_min FROM yearly_targets WHERE year = ?`, year).Scan(&minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.YearlyTarget{}, fmt.Errorf("yearly target %d: %w", year, ErrNotFound)
	}
	if err != nil {
		return domain.YearlyTarget{}, fmt.Errorf("getting yearly target %d: %w", year, err)
	}
	return domain.YearlyTarget{Year: year, Target: minutesToDuration(minutes)}, nil
}

func (r *SQLiteYearlyTargetRepo) List(ctx context.Context) ([]domain.YearlyTarget, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT year, target_min FROM yearly_targets ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("listing yearly targets: %w", err)
	}
	defer rows.Close()

	var targets []domain.YearlyTarget
	for rows.Next() {
		var t domain.YearlyTarget
		var minutes int64
		if err := rows.Scan(&t.Year, &minutes); err != nil {
			return nil, fmt.Errorf("scanning yearly target: %w", err)
		}
		t.Target = minutesToDuration(minutes)
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating yearly targets: %w", err)
	}
	return targets, nil
}

// Delete removes the target for year. A missing target is ErrNotFound.
func (r *SQLiteYearlyTargetRepo) Delete(ctx context.Context, year int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM yearly_targets WHERE year = ?`, year)
	if err != nil {
		return fmt.Errorf("deleting yearly target %d: %w", year, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting yearly target %d: %w", year, err)
	}
	if n == 0 {
		return fmt.Errorf("yearly target %d: %w", year, ErrNotFound)
	}
	return nil
}
