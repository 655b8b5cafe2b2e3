// Package report assembles every derived table into one immutable Summary.
package report

import (
	"slices"
	"time"

	"github.com/alexanderramin/effortlog/internal/aggregate"
	"github.com/alexanderramin/effortlog/internal/domain"
)

// Summary is the result of one report build. It is never modified after
// Build returns; accessors hand out copies.
type Summary struct {
	generatedAt time.Time
	years       []int
	recordCount int
	totalEffort time.Duration

	byMonth            aggregate.MonthTable
	byYear             []aggregate.YearRow
	byYearMonth        []aggregate.YearMonthRow
	byYearMonthProject []aggregate.YearMonthProjectRow
	byYearProject      []aggregate.YearProjectRow
	byProject          []aggregate.ProjectRow
	byProjectVersion   []aggregate.ProjectVersionRow
	byTagYear          []aggregate.TagYearRow
	byTag              []aggregate.TagRow
	byTimeRange        []aggregate.TimeRangeRow
	effortStatuses     []domain.EffortStatus
	incorrectEfforts   []domain.EffortStatus

	warnings []string
}

func (s *Summary) GeneratedAt() time.Time     { return s.generatedAt }
func (s *Summary) Years() []int               { return slices.Clone(s.years) }
func (s *Summary) RecordCount() int           { return s.recordCount }
func (s *Summary) TotalEffort() time.Duration { return s.totalEffort }

// Warnings lists the records that were isolated instead of aborting the
// build.
func (s *Summary) Warnings() []string { return slices.Clone(s.warnings) }

func (s *Summary) ByMonth() aggregate.MonthTable { return s.byMonth.Clone() }

func (s *Summary) ByYear() []aggregate.YearRow { return slices.Clone(s.byYear) }

func (s *Summary) ByYearMonth() []aggregate.YearMonthRow { return slices.Clone(s.byYearMonth) }

func (s *Summary) ByYearMonthProject() []aggregate.YearMonthProjectRow {
	return slices.Clone(s.byYearMonthProject)
}

func (s *Summary) ByYearProject() []aggregate.YearProjectRow { return slices.Clone(s.byYearProject) }

func (s *Summary) ByProject() []aggregate.ProjectRow { return slices.Clone(s.byProject) }

func (s *Summary) ByProjectVersion() []aggregate.ProjectVersionRow {
	return slices.Clone(s.byProjectVersion)
}

func (s *Summary) ByTagYear() []aggregate.TagYearRow { return slices.Clone(s.byTagYear) }

func (s *Summary) ByTag() []aggregate.TagRow { return slices.Clone(s.byTag) }

func (s *Summary) ByTimeRange() []aggregate.TimeRangeRow { return slices.Clone(s.byTimeRange) }

// ByEffortStatus returns the verdict of every record in record order.
func (s *Summary) ByEffortStatus() []domain.EffortStatus { return cloneStatuses(s.effortStatuses) }

// IncorrectEfforts returns the verdicts whose effort disagrees with the
// tracked time span, including isolated invalid records.
func (s *Summary) IncorrectEfforts() []domain.EffortStatus {
	return cloneStatuses(s.incorrectEfforts)
}

func cloneStatuses(statuses []domain.EffortStatus) []domain.EffortStatus {
	if statuses == nil {
		return nil
	}
	out := make([]domain.EffortStatus, len(statuses))
	for i, st := range statuses {
		out[i] = st.Clone()
	}
	return out
}

// Definitions returns the abbreviation table.
func (s *Summary) Definitions() []Definition { return Definitions() }
