package domain

import "time"

// ReportRun records one report generation for the history view.
type ReportRun struct {
	ID             string
	GeneratedAt    time.Time
	Years          []int
	RecordCount    int
	TotalEffort    time.Duration
	WarningCount   int
	IncorrectCount int
	CreatedAt      time.Time
}
