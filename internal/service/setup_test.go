package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/effortlog/internal/db"
	"github.com/alexanderramin/effortlog/internal/repository"
	"github.com/alexanderramin/effortlog/internal/testutil"
)

type repos struct {
	records repository.SessionRecordRepo
	targets repository.YearlyTargetRepo
	runs    repository.ReportRunRepo
	uow     db.UnitOfWork
}

func setupRepos(t *testing.T) repos {
	database := testutil.NewTestDB(t)
	return repos{
		records: repository.NewSQLiteSessionRecordRepo(database),
		targets: repository.NewSQLiteYearlyTargetRepo(database),
		runs:    repository.NewSQLiteReportRunRepo(database),
		uow:     testutil.NewTestUoW(database),
	}
}

// recordingObserver keeps every event it sees.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
