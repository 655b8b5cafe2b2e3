package aggregate

import (
	"sort"
	"time"
)

// TagYearRow is one row of the per-tag-and-year report.
type TagYearRow struct {
	Year   int
	Tag    string
	Effort time.Duration
}

// TagRow is one row of the per-tag report. Percentage is the share of the
// grand total.
type TagRow struct {
	Tag        string
	Effort     time.Duration
	Percentage float64
}

// ByTagYear sums effort per (year, tag) over every record.
func ByTagYear(entries []Entry) []TagYearRow {
	type groupKey struct {
		year int
		tag  string
	}
	sums := make(map[groupKey]time.Duration)
	for _, e := range entries {
		sums[groupKey{e.Record.Year, e.Record.Tag}] += e.Effort
	}

	rows := make([]TagYearRow, 0, len(sums))
	for g, d := range sums {
		rows = append(rows, TagYearRow{Year: g.year, Tag: g.tag, Effort: d})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Tag != rows[j].Tag {
			return rows[i].Tag < rows[j].Tag
		}
		return rows[i].Year < rows[j].Year
	})
	return rows
}

// ByTag sums effort per tag over every record, largest first.
func ByTag(entries []Entry) []TagRow {
	sums := make(map[string]time.Duration)
	for _, e := range entries {
		sums[e.Record.Tag] += e.Effort
	}
	total := sumEffort(entries)

	rows := make([]TagRow, 0, len(sums))
	for tag, d := range sums {
		rows = append(rows, TagRow{Tag: tag, Effort: d, Percentage: CalculatePercentage(d, total)})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Effort != rows[j].Effort {
			return rows[i].Effort > rows[j].Effort
		}
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}
