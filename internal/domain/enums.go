package domain

// Trend is the three-way comparison between two consecutive values.
type Trend string

const (
	TrendIncrease Trend = "increase"
	TrendDecrease Trend = "decrease"
	TrendEqual    Trend = "equal"
)

// Symbol returns the arrow used to display the trend.
func (t Trend) Symbol() string {
	switch t {
	case TrendIncrease:
		return "↑"
	case TrendDecrease:
		return "↓"
	case TrendEqual:
		return "="
	default:
		return ""
	}
}

// ReportName identifies one of the derived report tables.
type ReportName string

const (
	ReportByMonth            ReportName = "month"
	ReportByYear             ReportName = "year"
	ReportByYearMonth        ReportName = "year-month"
	ReportByYearMonthProject ReportName = "year-month-project"
	ReportByYearProject      ReportName = "year-project"
	ReportByProject          ReportName = "project"
	ReportByProjectVersion   ReportName = "project-version"
	ReportByTagYear          ReportName = "tag-year"
	ReportByTag              ReportName = "tag"
	ReportByTimeRange        ReportName = "time-range"
	ReportByEffortStatus     ReportName = "effort-status"
	ReportDefinitions        ReportName = "definitions"
)

// AllReportNames lists the reports in display order.
var AllReportNames = []ReportName{
	ReportByMonth,
	ReportByYear,
	ReportByYearMonth,
	ReportByYearMonthProject,
	ReportByYearProject,
	ReportByProject,
	ReportByProjectVersion,
	ReportByTagYear,
	ReportByTag,
	ReportByTimeRange,
	ReportByEffortStatus,
	ReportDefinitions,
}

// ValidReportNames is the canonical set of accepted report name strings.
var ValidReportNames = func() map[string]bool {
	m := make(map[string]bool, len(AllReportNames))
	for _, n := range AllReportNames {
		m[string(n)] = true
	}
	return m
}()
