package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/domain"
)

// SQLiteSessionRecordRepo implements SessionRecordRepo using a SQLite database.
type SQLiteSessionRecordRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRecordRepo creates a new SQLiteSessionRecordRepo.
func NewSQLiteSessionRecordRepo(db db.DBTX) *SQLiteSessionRecordRepo {
	return &SQLiteSessionRecordRepo{db: db}
}

const sessionRecordColumns = `id, idx, date, start_time, end_time, effort, tag, descriptor,
	is_software_project, is_release_day, year, month`

func (r *SQLiteSessionRecordRepo) CreateBatch(ctx context.Context, records []domain.SessionRecord) error {
	query := `INSERT INTO session_records (` + sessionRecordColumns + `, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	importedAt := nowUTC()
	for _, rec := range records {
		_, err := r.db.ExecContext(ctx, query,
			rec.ID,
			rec.Index,
			rec.Date.Format(dateLayout),
			rec.StartTime,
			rec.EndTime,
			rec.Effort,
			rec.Tag,
			rec.Descriptor,
			boolToInt(rec.IsSoftwareProject),
			boolToInt(rec.IsReleaseDay),
			rec.Year,
			rec.Month,
			importedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting session record %d: %w", rec.Index, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRecordRepo) List(ctx context.Context) ([]domain.SessionRecord, error) {
	query := `SELECT ` + sessionRecordColumns + ` FROM session_records ORDER BY idx, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing session records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteSessionRecordRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM session_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting session records: %w", err)
	}
	return n, nil
}

// MaxIndex returns the highest stored file index, or -1 when empty.
func (r *SQLiteSessionRecordRepo) MaxIndex(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(idx), -1) FROM session_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("reading max record index: %w", err)
	}
	return n, nil
}

func (r *SQLiteSessionRecordRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_records`); err != nil {
		return fmt.Errorf("deleting session records: %w", err)
	}
	return nil
}

// scanRecords scans multiple records from *sql.Rows.
func (r *SQLiteSessionRecordRepo) scanRecords(rows *sql.Rows) ([]domain.SessionRecord, error) {
	var records []domain.SessionRecord
	for rows.Next() {
		var rec domain.SessionRecord
		var dateStr string
		var software, release int
		err := rows.Scan(
			&rec.ID, &rec.Index, &dateStr, &rec.StartTime, &rec.EndTime, &rec.Effort,
			&rec.Tag, &rec.Descriptor, &software, &release, &rec.Year, &rec.Month,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning session record: %w", err)
		}
		rec.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing date of record %s: %w", rec.ID, err)
		}
		rec.IsSoftwareProject = intToBool(software)
		rec.IsReleaseDay = intToBool(release)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session records: %w", err)
	}
	return records, nil
}
