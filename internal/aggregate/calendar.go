package aggregate

import "time"

// MonthRow is the effort logged in one month of one year.
type MonthRow struct {
	Year   int
	Month  int
	Effort time.Duration
}

// CompleteMonths returns a 12-row series for year, months 1..12 in order.
// Months missing from series get a zero effort. Rows outside 1..12 are
// ignored.
func CompleteMonths(series []MonthRow, year int) []MonthRow {
	var byMonth [12]time.Duration
	for _, r := range series {
		if r.Month < 1 || r.Month > 12 {
			continue
		}
		byMonth[r.Month-1] += r.Effort
	}

	out := make([]MonthRow, 12)
	for i := range out {
		out[i] = MonthRow{Year: year, Month: i + 1, Effort: byMonth[i]}
	}
	return out
}
