package service

import (
	"context"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/importer"
	"github.com/alexanderramin/effortlog/internal/report"
)

// ImportOptions controls how an import lands in the store.
type ImportOptions struct {
	// Append keeps existing records and numbers the new ones after them.
	// Otherwise the import replaces every stored record.
	Append bool
}

// ImportResult holds the outcome of a session log import.
type ImportResult struct {
	RecordCount   int
	ReplacedCount int
	FirstIndex    int
}

type ImportService interface {
	ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error)
	ImportRows(ctx context.Context, rows []importer.SessionRow, opts ImportOptions) (*ImportResult, error)
}

type TargetService interface {
	Set(ctx context.Context, year int, target time.Duration) error
	// List returns the effective targets: settings merged with stored ones.
	List(ctx context.Context) ([]domain.YearlyTarget, error)
	Remove(ctx context.Context, year int) error
}

// ReportRequest selects what a report run covers. Empty Years falls back to
// the configured years; a zero Now uses the service clock.
type ReportRequest struct {
	Years []int
	Now   time.Time
}

type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (*report.Summary, error)
	EffortStatuses(ctx context.Context, onlyIncorrect bool) ([]domain.EffortStatus, error)
	History(ctx context.Context, limit int) ([]*domain.ReportRun, error)
}
