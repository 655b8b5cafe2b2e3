package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/config"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/effort"
	"github.com/alexanderramin/effortlog/internal/report"
	"github.com/alexanderramin/effortlog/internal/repository"
	"github.com/google/uuid"
)

type reportService struct {
	records  repository.SessionRecordRepo
	targets  repository.YearlyTargetRepo
	runs     repository.ReportRunRepo
	settings config.Settings
	now      func() time.Time
	observer UseCaseObserver
}

func NewReportService(
	records repository.SessionRecordRepo,
	targets repository.YearlyTargetRepo,
	runs repository.ReportRunRepo,
	settings config.Settings,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		records:  records,
		targets:  targets,
		runs:     runs,
		settings: settings,
		now:      time.Now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) Generate(ctx context.Context, req ReportRequest) (summary *report.Summary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	var warnings []string
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
			Warnings:  warnings,
		})
	}()

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	configured, err := s.settings.TargetTable()
	if err != nil {
		return nil, err
	}
	stored, err := s.targets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading targets: %w", err)
	}

	now := req.Now
	if now.IsZero() {
		now = s.now()
	}
	opts := aggregateOptions(s.settings, req.Years, mergeTargets(configured, stored), now)
	fields["record_count"] = len(records)
	fields["years"] = opts.Years

	summary, err = report.Build(ctx, report.Input{Records: records, Options: opts})
	if err != nil {
		return nil, err
	}
	warnings = summary.Warnings()
	fields["warnings"] = len(warnings)

	run := &domain.ReportRun{
		ID:             uuid.New().String(),
		GeneratedAt:    now,
		Years:          summary.Years(),
		RecordCount:    summary.RecordCount(),
		TotalEffort:    summary.TotalEffort(),
		WarningCount:   len(warnings),
		IncorrectCount: len(summary.IncorrectEfforts()),
		CreatedAt:      time.Now().UTC(),
	}
	if err = s.runs.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("recording report run: %w", err)
	}
	return summary, nil
}

// EffortStatuses validates every stored record without building the other
// reports. Records whose verdict cannot be built come back as Invalid rows.
func (s *reportService) EffortStatuses(ctx context.Context, onlyIncorrect bool) ([]domain.EffortStatus, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	statuses, _ := effort.ValidateAll(records)
	if onlyIncorrect {
		return effort.Incorrect(statuses), nil
	}
	return statuses, nil
}

func (s *reportService) History(ctx context.Context, limit int) ([]*domain.ReportRun, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.runs.ListRecent(ctx, limit)
}
