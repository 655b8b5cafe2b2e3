package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/domain"
)

// createdAtLayout keeps a fixed width so created_at sorts as text.
const createdAtLayout = "2006-01-02T15:04:05.000000Z07:00"

// SQLiteReportRunRepo implements ReportRunRepo using a SQLite database.
type SQLiteReportRunRepo struct {
	db db.DBTX
}

func NewSQLiteReportRunRepo(db db.DBTX) *SQLiteReportRunRepo {
	return &SQLiteReportRunRepo{db: db}
}

func (r *SQLiteReportRunRepo) Create(ctx context.Context, run *domain.ReportRun) error {
	query := `INSERT INTO report_runs (id, generated_at, years, record_count, total_min, warning_count, incorrect_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		run.GeneratedAt.UTC().Format(time.RFC3339),
		joinYears(run.Years),
		run.RecordCount,
		durationToMinutes(run.TotalEffort),
		run.WarningCount,
		run.IncorrectCount,
		run.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting report run: %w", err)
	}
	return nil
}

func (r *SQLiteReportRunRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ReportRun, error) {
	query := `SELECT id, generated_at, years, record_count, total_min, warning_count, incorrect_count, created_at
		FROM report_runs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing report runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.ReportRun
	for rows.Next() {
		var run domain.ReportRun
		var generatedStr, yearsStr, createdStr string
		var totalMin int64
		err := rows.Scan(&run.ID, &generatedStr, &yearsStr, &run.RecordCount, &totalMin,
			&run.WarningCount, &run.IncorrectCount, &createdStr)
		if err != nil {
			return nil, fmt.Errorf("scanning report run: %w", err)
		}
		if run.GeneratedAt, err = time.Parse(time.RFC3339, generatedStr); err != nil {
			return nil, fmt.Errorf("parsing generated_at of run %s: %w", run.ID, err)
		}
		if run.CreatedAt, err = time.Parse(createdAtLayout, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at of run %s: %w", run.ID, err)
		}
		if run.Years, err = splitYears(yearsStr); err != nil {
			return nil, fmt.Errorf("run %s: %w", run.ID, err)
		}
		run.TotalEffort = minutesToDuration(totalMin)
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report runs: %w", err)
	}
	return runs, nil
}
