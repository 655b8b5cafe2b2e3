package aggregate

import (
	"sort"
	"strconv"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

// ColumnKind distinguishes the value columns of a MonthTable.
type ColumnKind int

const (
	ColumnYear ColumnKind = iota
	ColumnTrend
)

// Column is a named value column of a MonthTable.
type Column struct {
	Name string
	Kind ColumnKind
	// Year is the year of a year column, or the later year of the pair a
	// trend column compares.
	Year int
}

// Cell holds one value of a MonthTable. Blank cells are redacted and
// render empty.
type Cell struct {
	Effort time.Duration
	Trend  domain.Trend
	Blank  bool
}

// MonthTableRow is one month of a MonthTable, with cells keyed by column
// name.
type MonthTableRow struct {
	Month int
	Cells map[string]Cell
}

// MonthTable is the by-month report with one effort column per year and a
// trend column between each adjacent pair of years.
type MonthTable struct {
	Columns []Column
	Rows    []MonthTableRow
}

// TrendColumnName names the trend column comparing year-1 with year.
func TrendColumnName(year int) string {
	return "↕" + strconv.Itoa(year)
}

// Cell returns the cell at month and column.
func (t MonthTable) Cell(month int, column string) (Cell, bool) {
	for _, r := range t.Rows {
		if r.Month == month {
			c, ok := r.Cells[column]
			return c, ok
		}
	}
	return Cell{}, false
}

// Years returns the years stacked in the table, ascending.
func (t MonthTable) Years() []int {
	var years []int
	for _, c := range t.Columns {
		if c.Kind == ColumnYear {
			years = append(years, c.Year)
		}
	}
	return years
}

// Redact returns a copy of t with the named columns blanked for every
// month strictly after afterMonth. t itself is left untouched.
func (t MonthTable) Redact(columns []string, afterMonth int) MonthTable {
	blank := make(map[string]bool, len(columns))
	for _, c := range columns {
		blank[c] = true
	}

	out := MonthTable{
		Columns: append([]Column(nil), t.Columns...),
		Rows:    make([]MonthTableRow, len(t.Rows)),
	}
	for i, r := range t.Rows {
		cells := make(map[string]Cell, len(r.Cells))
		for name, c := range r.Cells {
			if blank[name] && r.Month > afterMonth {
				c = Cell{Blank: true}
			}
			cells[name] = c
		}
		out.Rows[i] = MonthTableRow{Month: r.Month, Cells: cells}
	}
	return out
}

// Clone returns a deep copy of t.
func (t MonthTable) Clone() MonthTable {
	return t.Redact(nil, 12)
}

// RedactFuture blanks the current year's column, and the trend column
// leading into it, for the months after now's month. Tables that do not
// include now's year are returned unchanged.
func (t MonthTable) RedactFuture(now time.Time) MonthTable {
	year := now.Year()
	var columns []string
	for _, c := range t.Columns {
		if c.Year == year {
			columns = append(columns, c.Name)
		}
	}
	if len(columns) == 0 {
		return t
	}
	return t.Redact(columns, int(now.Month()))
}

// MonthlySeries returns the completed 12-month series of every year in
// years, in ascending year order.
func MonthlySeries(entries []Entry, years []int) map[int][]MonthRow {
	sums := make(map[yearMonth]time.Duration)
	for _, e := range entries {
		sums[yearMonth{e.Record.Year, e.Record.Month}] += e.Effort
	}

	out := make(map[int][]MonthRow, len(years))
	for _, y := range years {
		var series []MonthRow
		for ym, d := range sums {
			if ym.year == y {
				series = append(series, MonthRow{Year: y, Month: ym.month, Effort: d})
			}
		}
		out[y] = CompleteMonths(series, y)
	}
	return out
}

// ByMonth stacks the monthly series of the selected years side by side.
// When no years are selected every year present in the data is stacked.
// Months after now in now's year are redacted when now is set.
func ByMonth(entries []Entry, opts Options) MonthTable {
	scoped := filterEntries(entries, inYears(NewYearSet(opts.Years)))
	years := stackedYears(scoped, opts.Years)
	series := MonthlySeries(scoped, years)

	table := MonthTable{Rows: make([]MonthTableRow, 12)}
	for i, y := range years {
		if i > 0 {
			table.Columns = append(table.Columns, Column{Name: TrendColumnName(y), Kind: ColumnTrend, Year: y})
		}
		table.Columns = append(table.Columns, Column{Name: strconv.Itoa(y), Kind: ColumnYear, Year: y})
	}

	for m := 0; m < 12; m++ {
		cells := make(map[string]Cell, len(table.Columns))
		for i, y := range years {
			cur := series[y][m].Effort
			if i > 0 {
				prev := series[years[i-1]][m].Effort
				cells[TrendColumnName(y)] = Cell{Trend: CompareTrend(prev, cur)}
			}
			cells[strconv.Itoa(y)] = Cell{Effort: cur}
		}
		table.Rows[m] = MonthTableRow{Month: m + 1, Cells: cells}
	}

	if opts.Now.IsZero() {
		return table
	}
	return table.RedactFuture(opts.Now)
}

func stackedYears(entries []Entry, selected []int) []int {
	seen := make(map[int]bool)
	var years []int
	add := func(y int) {
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	if len(selected) > 0 {
		for _, y := range selected {
			add(y)
		}
	} else {
		for _, e := range entries {
			add(e.Record.Year)
		}
	}
	sort.Ints(years)
	return years
}
