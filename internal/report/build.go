package report

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/effortlog/internal/aggregate"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/effort"
	"golang.org/x/sync/errgroup"
)

// Input is everything a report build needs. Options carries the year
// filter, targets, project allow-list and the current instant.
type Input struct {
	Records []domain.SessionRecord
	Options aggregate.Options
}

// Build runs every report pipeline over in.Records and returns the
// resulting Summary. A malformed effort aborts the build; a record whose
// effort status cannot be determined is isolated and reported as a
// warning.
func Build(ctx context.Context, in Input) (*Summary, error) {
	entries, err := aggregate.Prepare(in.Records)
	if err != nil {
		return nil, fmt.Errorf("preparing records: %w", err)
	}
	opts := in.Options

	s := &Summary{
		generatedAt: opts.Now,
		years:       slices.Sorted(slices.Values(opts.Years)),
		recordCount: len(entries),
	}
	for _, e := range entries {
		s.totalEffort += e.Effort
	}

	// Each pipeline reads the shared entries and writes only its own field.
	g, ctx := errgroup.WithContext(ctx)
	run := func(fn func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn()
			return nil
		})
	}

	run(func() { s.byMonth = aggregate.ByMonth(entries, opts) })
	run(func() { s.byYear = aggregate.ByYear(entries, opts) })
	run(func() { s.byYearMonth = aggregate.ByYearMonth(entries, opts) })
	run(func() { s.byYearMonthProject = aggregate.ByYearMonthProject(entries, opts) })
	run(func() { s.byYearProject = aggregate.ByYearProject(entries, opts) })
	run(func() { s.byProject = aggregate.ByProject(entries, opts) })
	run(func() { s.byProjectVersion = aggregate.ByProjectVersion(entries, opts) })
	run(func() { s.byTagYear = aggregate.ByTagYear(entries) })
	run(func() { s.byTag = aggregate.ByTag(entries) })
	run(func() { s.byTimeRange = aggregate.ByTimeRange(entries, opts.TimeRange) })
	run(func() {
		statuses, errs := effort.ValidateAll(in.Records)
		s.effortStatuses = statuses
		s.incorrectEfforts = effort.Incorrect(statuses)
		for _, err := range errs {
			s.warnings = append(s.warnings, err.Error())
		}
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building reports: %w", err)
	}
	return s, nil
}
