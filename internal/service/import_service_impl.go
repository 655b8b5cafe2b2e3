package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/importer"
	"github.com/alexanderramin/effortlog/internal/repository"
)

type importService struct {
	records  repository.SessionRecordRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(
	records repository.SessionRecordRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		records:  records,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	rows, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportRows(ctx, rows, opts)
}

func (s *importService) ImportRows(ctx context.Context, rows []importer.SessionRow, opts ImportOptions) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"row_count": len(rows),
		"append":    opts.Append,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-session-log",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if errs := importer.ValidateRows(rows); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	result = &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteSessionRecordRepo(tx)

		if opts.Append {
			maxIndex, err := txRecords.MaxIndex(ctx)
			if err != nil {
				return err
			}
			result.FirstIndex = maxIndex + 1
		} else {
			existing, err := txRecords.Count(ctx)
			if err != nil {
				return err
			}
			result.ReplacedCount = existing
			if err := txRecords.DeleteAll(ctx); err != nil {
				return err
			}
		}

		records, err := importer.Convert(rows, result.FirstIndex)
		if err != nil {
			return fmt.Errorf("converting rows: %w", err)
		}
		if err := txRecords.CreateBatch(ctx, records); err != nil {
			return err
		}
		result.RecordCount = len(records)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["record_count"] = result.RecordCount
	fields["replaced_count"] = result.ReplacedCount
	return result, nil
}
