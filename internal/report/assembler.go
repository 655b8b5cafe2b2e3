package report

import (
	"context"
	"sync"

	"github.com/alexanderramin/effortlog/internal/aggregate"
	"github.com/alexanderramin/effortlog/internal/domain"
)

// Assembler holds the Summary of the last successful Initialize. Every
// accessor fails with domain.ErrNotInitialized until then.
type Assembler struct {
	mu      sync.RWMutex
	summary *Summary
}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Initialize builds a new Summary from in. On failure the previously held
// summary, if any, is kept.
func (a *Assembler) Initialize(ctx context.Context, in Input) error {
	s, err := Build(ctx, in)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.summary = s
	a.mu.Unlock()
	return nil
}

// Summary returns the held summary.
func (a *Assembler) Summary() (*Summary, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.summary == nil {
		return nil, domain.ErrNotInitialized
	}
	return a.summary, nil
}

func get[T any](a *Assembler, fn func(*Summary) T) (T, error) {
	s, err := a.Summary()
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(s), nil
}

func (a *Assembler) ByMonth() (aggregate.MonthTable, error) {
	return get(a, (*Summary).ByMonth)
}

func (a *Assembler) ByYear() ([]aggregate.YearRow, error) {
	return get(a, (*Summary).ByYear)
}

func (a *Assembler) ByYearMonth() ([]aggregate.YearMonthRow, error) {
	return get(a, (*Summary).ByYearMonth)
}

func (a *Assembler) ByYearMonthProject() ([]aggregate.YearMonthProjectRow, error) {
	return get(a, (*Summary).ByYearMonthProject)
}

func (a *Assembler) ByYearProject() ([]aggregate.YearProjectRow, error) {
	return get(a, (*Summary).ByYearProject)
}

func (a *Assembler) ByProject() ([]aggregate.ProjectRow, error) {
	return get(a, (*Summary).ByProject)
}

func (a *Assembler) ByProjectVersion() ([]aggregate.ProjectVersionRow, error) {
	return get(a, (*Summary).ByProjectVersion)
}

func (a *Assembler) ByTagYear() ([]aggregate.TagYearRow, error) {
	return get(a, (*Summary).ByTagYear)
}

func (a *Assembler) ByTag() ([]aggregate.TagRow, error) {
	return get(a, (*Summary).ByTag)
}

func (a *Assembler) ByTimeRange() ([]aggregate.TimeRangeRow, error) {
	return get(a, (*Summary).ByTimeRange)
}

func (a *Assembler) ByEffortStatus() ([]domain.EffortStatus, error) {
	return get(a, (*Summary).ByEffortStatus)
}

func (a *Assembler) IncorrectEfforts() ([]domain.EffortStatus, error) {
	return get(a, (*Summary).IncorrectEfforts)
}

func (a *Assembler) Warnings() ([]string, error) {
	return get(a, (*Summary).Warnings)
}

// ByMonthMarkdown renders the by-month view of the held summary.
func (a *Assembler) ByMonthMarkdown(r MarkdownRenderer) (string, error) {
	s, err := a.Summary()
	if err != nil {
		return "", err
	}
	return ByMonthMarkdown(s, r), nil
}
