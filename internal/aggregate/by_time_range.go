package aggregate

import "sort"

// TimeRangeRow counts the sessions logged with one (start, end) pair.
type TimeRangeRow struct {
	ID          string
	Occurrences int
}

// TimeRangeID returns the grouping id of a start/end pair, or unknownID
// when either time is missing.
func TimeRangeID(start, end, unknownID string) string {
	if start == "" || end == "" {
		return unknownID
	}
	return start + "-" + end
}

// ByTimeRange counts occurrences per time range, least frequent first.
// With Top set only the Top most frequent ranges are kept, still in
// ascending order.
func ByTimeRange(entries []Entry, opts TimeRangeOptions) []TimeRangeRow {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[TimeRangeID(e.Record.StartTime, e.Record.EndTime, opts.UnknownID)]++
	}
	if opts.RemoveUnknown {
		delete(counts, opts.UnknownID)
	}

	rows := make([]TimeRangeRow, 0, len(counts))
	for id, n := range counts {
		rows = append(rows, TimeRangeRow{ID: id, Occurrences: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Occurrences != rows[j].Occurrences {
			return rows[i].Occurrences < rows[j].Occurrences
		}
		return rows[i].ID < rows[j].ID
	})

	if opts.Top > 0 && len(rows) > opts.Top {
		rows = rows[len(rows)-opts.Top:]
	}
	return rows
}
