package formatter

import (
	"strconv"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

// FormatHistory renders recent report runs, newest first.
func FormatHistory(runs []*domain.ReportRun, now time.Time) string {
	if len(runs) == 0 {
		return Dim("No reports generated yet.") + "\n"
	}
	headers := []string{"ID", "CREATED", "AS OF", "YEARS", "RECORDS", "TOTAL", "WARNINGS", "INCORRECT"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		warnings := strconv.Itoa(r.WarningCount)
		if r.WarningCount > 0 {
			warnings = StyleYellow.Render(warnings)
		}
		incorrect := strconv.Itoa(r.IncorrectCount)
		if r.IncorrectCount > 0 {
			incorrect = StyleRed.Render(incorrect)
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			HumanTimestampFrom(r.CreatedAt, now),
			r.GeneratedAt.Format("2006-01-02"),
			Years(r.Years),
			strconv.Itoa(r.RecordCount),
			Effort(r.TotalEffort),
			warnings,
			incorrect,
		})
	}
	t := Table{Headers: headers, Rows: rows, Right: map[int]bool{4: true, 5: true, 6: true, 7: true}}
	return RenderBox("Report history", t.Render())
}

// FormatTargets renders the yearly targets.
func FormatTargets(targets []domain.YearlyTarget) string {
	if len(targets) == 0 {
		return Dim("No yearly targets configured.") + "\n"
	}
	rows := make([][]string, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, []string{strconv.Itoa(t.Year), Effort(t.Target)})
	}
	t := Table{Headers: []string{"YEAR", "TARGET"}, Rows: rows, Right: map[int]bool{1: true}}
	return RenderBox("Yearly targets", t.Render())
}
