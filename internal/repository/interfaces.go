package repository

import (
	"context"

	"github.com/alexanderramin/effortlog/internal/domain"
)

type SessionRecordRepo interface {
	CreateBatch(ctx context.Context, records []domain.SessionRecord) error
	// List returns every record ordered by file index.
	List(ctx context.Context) ([]domain.SessionRecord, error)
	Count(ctx context.Context) (int, error)
	MaxIndex(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type YearlyTargetRepo interface {
	Upsert(ctx context.Context, t domain.YearlyTarget) error
	Get(ctx context.Context, year int) (domain.YearlyTarget, error)
	List(ctx context.Context) ([]domain.YearlyTarget, error)
	Delete(ctx context.Context, year int) error
}

type ReportRunRepo interface {
	Create(ctx context.Context, run *domain.ReportRun) error
	// ListRecent returns the newest runs first.
	ListRecent(ctx context.Context, limit int) ([]*domain.ReportRun, error)
}
