package aggregate

import (
	"sort"
	"time"
)

// YearRow is one row of the by-year report.
type YearRow struct {
	Year        int
	Effort      time.Duration
	Target      time.Duration
	TargetDiff  time.Duration
	IsTargetMet bool
}

// YearMonthRow is one row of the by-year-and-month report. YearlyTotal is
// the running total within the year up to and including the month.
type YearMonthRow struct {
	Year        int
	Month       int
	Effort      time.Duration
	YearlyTotal time.Duration
	ToTarget    time.Duration
}

// ByYear sums effort per year and compares it with the yearly target. A
// year without a target compares against zero.
func ByYear(entries []Entry, opts Options) []YearRow {
	sums := make(map[int]time.Duration)
	for _, e := range filterEntries(entries, inYears(NewYearSet(opts.Years))) {
		sums[e.Record.Year] += e.Effort
	}

	rows := make([]YearRow, 0, len(sums))
	for y, d := range sums {
		target := opts.Targets.For(y)
		rows = append(rows, YearRow{
			Year:        y,
			Effort:      d,
			Target:      target,
			TargetDiff:  d - target,
			IsTargetMet: d >= target,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// ByYearMonth sums effort per (year, month) and accumulates it within each
// year.
func ByYearMonth(entries []Entry, opts Options) []YearMonthRow {
	sums := make(map[yearMonth]time.Duration)
	for _, e := range filterEntries(entries, inYears(NewYearSet(opts.Years))) {
		sums[yearMonth{e.Record.Year, e.Record.Month}] += e.Effort
	}

	rows := make([]YearMonthRow, 0, len(sums))
	for ym, d := range sums {
		rows = append(rows, YearMonthRow{Year: ym.year, Month: ym.month, Effort: d})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Month < rows[j].Month
	})

	var running time.Duration
	for i := range rows {
		if i == 0 || rows[i].Year != rows[i-1].Year {
			running = 0
		}
		running += rows[i].Effort
		rows[i].YearlyTotal = running
		rows[i].ToTarget = running - opts.Targets.For(rows[i].Year)
	}
	return rows
}
