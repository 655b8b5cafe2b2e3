package aggregate

import (
	"sort"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

// YearMonthProjectRow is one row of the monthly per-project report.
// DME is the software-project effort of the month and TME the total effort
// of the month.
type YearMonthProjectRow struct {
	Year          int
	Month         int
	Key           domain.ProjectVersionKey
	Effort        time.Duration
	DME           time.Duration
	DMEPercentage float64
	TME           time.Duration
	TMEPercentage float64
}

// YearProjectRow is the yearly analogue of YearMonthProjectRow.
type YearProjectRow struct {
	Year          int
	Key           domain.ProjectVersionKey
	Effort        time.Duration
	DYE           time.Duration
	DYEPercentage float64
	TYE           time.Duration
	TYEPercentage float64
}

// ProjectRow is one row of the all-years per-project report. Key carries
// the project name only.
type ProjectRow struct {
	Tag          string
	Key          domain.ProjectVersionKey
	Effort       time.Duration
	DE           time.Duration
	DEPercentage float64
	TE           time.Duration
	TEPercentage float64
}

// ProjectVersionRow is one row of the per-project-version report.
type ProjectVersionRow struct {
	Key    domain.ProjectVersionKey
	Effort time.Duration
}

// ByYearMonthProject groups software-project effort by (year, month,
// project, version). DME and TME are computed before the allow-list is
// applied, so dropped projects still count towards them.
func ByYearMonthProject(entries []Entry, opts Options) []YearMonthProjectRow {
	years := NewYearSet(opts.Years)

	tme := make(map[yearMonth]time.Duration)
	for _, e := range filterEntries(entries, inYears(years)) {
		tme[yearMonth{e.Record.Year, e.Record.Month}] += e.Effort
	}

	type groupKey struct {
		ym  yearMonth
		key domain.ProjectVersionKey
	}
	dme := make(map[yearMonth]time.Duration)
	sums := make(map[groupKey]time.Duration)
	for _, e := range filterEntries(entries, softwareInYears(years)) {
		ym := yearMonth{e.Record.Year, e.Record.Month}
		dme[ym] += e.Effort
		sums[groupKey{ym, e.Key}] += e.Effort
	}

	allow := NewAllowList(opts.KnownProjects)
	rows := make([]YearMonthProjectRow, 0, len(sums))
	for g, d := range sums {
		if !allow.Allows(g.key) {
			continue
		}
		rows = append(rows, YearMonthProjectRow{
			Year:          g.ym.year,
			Month:         g.ym.month,
			Key:           g.key,
			Effort:        d,
			DME:           dme[g.ym],
			DMEPercentage: CalculatePercentage(d, dme[g.ym]),
			TME:           tme[g.ym],
			TMEPercentage: CalculatePercentage(d, tme[g.ym]),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.Key.Less(b.Key)
	})
	return rows
}

// ByYearProject groups software-project effort by (year, project, version).
func ByYearProject(entries []Entry, opts Options) []YearProjectRow {
	years := NewYearSet(opts.Years)

	tye := make(map[int]time.Duration)
	for _, e := range filterEntries(entries, inYears(years)) {
		tye[e.Record.Year] += e.Effort
	}

	type groupKey struct {
		year int
		key  domain.ProjectVersionKey
	}
	dye := make(map[int]time.Duration)
	sums := make(map[groupKey]time.Duration)
	for _, e := range filterEntries(entries, softwareInYears(years)) {
		dye[e.Record.Year] += e.Effort
		sums[groupKey{e.Record.Year, e.Key}] += e.Effort
	}

	allow := NewAllowList(opts.KnownProjects)
	rows := make([]YearProjectRow, 0, len(sums))
	for g, d := range sums {
		if !allow.Allows(g.key) {
			continue
		}
		rows = append(rows, YearProjectRow{
			Year:          g.year,
			Key:           g.key,
			Effort:        d,
			DYE:           dye[g.year],
			DYEPercentage: CalculatePercentage(d, dye[g.year]),
			TYE:           tye[g.year],
			TYEPercentage: CalculatePercentage(d, tye[g.year]),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].Key.Less(rows[j].Key)
	})
	return rows
}

// ByProject groups software-project effort by (tag, project) across the
// selected years. DE is the total software-project effort; TE is the total
// effort, leaving out the untagged tag when configured to.
func ByProject(entries []Entry, opts Options) []ProjectRow {
	years := NewYearSet(opts.Years)

	var te time.Duration
	for _, e := range filterEntries(entries, inYears(years)) {
		if opts.ExcludeUntaggedFromTotal && e.Record.Tag == opts.UntaggedTag {
			continue
		}
		te += e.Effort
	}

	type groupKey struct {
		tag string
		key domain.ProjectVersionKey
	}
	software := filterEntries(entries, softwareInYears(years))
	de := sumEffort(software)
	sums := make(map[groupKey]time.Duration)
	for _, e := range software {
		sums[groupKey{e.Record.Tag, e.Key.ProjectName()}] += e.Effort
	}

	allow := NewAllowList(opts.KnownProjects)
	rows := make([]ProjectRow, 0, len(sums))
	for g, d := range sums {
		if !allow.Allows(g.key) {
			continue
		}
		rows = append(rows, ProjectRow{
			Tag:          g.tag,
			Key:          g.key,
			Effort:       d,
			DE:           de,
			DEPercentage: CalculatePercentage(d, de),
			TE:           te,
			TEPercentage: CalculatePercentage(d, te),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Tag != b.Tag {
			return a.Tag > b.Tag
		}
		if a.Effort != b.Effort {
			return a.Effort > b.Effort
		}
		return a.Key.Less(b.Key)
	})
	return rows
}

// ByProjectVersion sums software-project effort per (project, version).
func ByProjectVersion(entries []Entry, opts Options) []ProjectVersionRow {
	sums := make(map[domain.ProjectVersionKey]time.Duration)
	for _, e := range filterEntries(entries, softwareInYears(NewYearSet(opts.Years))) {
		sums[e.Key] += e.Effort
	}

	allow := NewAllowList(opts.KnownProjects)
	rows := make([]ProjectVersionRow, 0, len(sums))
	for k, d := range sums {
		if allow.Allows(k) {
			rows = append(rows, ProjectVersionRow{Key: k, Effort: d})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key.Less(rows[j].Key) })
	return rows
}
