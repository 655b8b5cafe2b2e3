package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/aggregate"
	"github.com/alexanderramin/effortlog/internal/config"
	"github.com/alexanderramin/effortlog/internal/domain"
)

func formatValidationErrors(errs []error) error {
	return fmt.Errorf("import validation failed (%d errors):\n%w", len(errs), errors.Join(errs...))
}

// mergeTargets overlays stored targets on the configured ones.
func mergeTargets(configured domain.TargetTable, stored []domain.YearlyTarget) domain.TargetTable {
	merged := make(domain.TargetTable, len(configured)+len(stored))
	for y, d := range configured {
		merged[y] = d
	}
	for _, t := range stored {
		merged[t.Year] = t.Target
	}
	return merged
}

// aggregateOptions maps settings and a request onto builder options.
func aggregateOptions(s config.Settings, years []int, targets domain.TargetTable, now time.Time) aggregate.Options {
	if len(years) == 0 {
		years = s.Years
	}
	return aggregate.Options{
		Years:                    years,
		KnownProjects:            s.KnownProjects,
		Targets:                  targets,
		UntaggedTag:              s.UntaggedTag,
		ExcludeUntaggedFromTotal: s.ExcludeUntaggedFromTotal,
		TimeRange: aggregate.TimeRangeOptions{
			UnknownID:     s.TimeRanges.UnknownID,
			RemoveUnknown: s.TimeRanges.RemoveUnknown,
			Top:           s.TimeRanges.Top,
		},
		Now: now,
	}
}
