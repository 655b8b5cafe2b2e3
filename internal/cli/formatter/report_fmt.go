package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/effortlog/internal/aggregate"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/effort"
	"github.com/alexanderramin/effortlog/internal/report"
	"github.com/charmbracelet/lipgloss"
)

const yearProgressBarWidth = 10

// ReportData is one report converted to display cells.
type ReportData struct {
	Title   string
	Headers []string
	Rows    [][]string
	Right   map[int]bool
}

// Table returns the data as a terminal table.
func (d ReportData) Table() Table {
	return Table{Headers: d.Headers, Rows: d.Rows, Right: d.Right}
}

// ReportTitle returns the heading shown above a report.
func ReportTitle(name domain.ReportName, years []int) string {
	switch name {
	case domain.ReportByMonth:
		return "Effort by month (" + Years(years) + ")"
	case domain.ReportByYear:
		return "Effort by year"
	case domain.ReportByYearMonth:
		return "Effort by year and month"
	case domain.ReportByYearMonthProject:
		return "Software projects by year and month"
	case domain.ReportByYearProject:
		return "Software projects by year"
	case domain.ReportByProject:
		return "Software projects"
	case domain.ReportByProjectVersion:
		return "Software project versions"
	case domain.ReportByTagYear:
		return "Effort by tag and year"
	case domain.ReportByTag:
		return "Effort by tag"
	case domain.ReportByTimeRange:
		return "Time ranges"
	case domain.ReportByEffortStatus:
		return "Effort status"
	case domain.ReportDefinitions:
		return "Definitions"
	default:
		return string(name)
	}
}

// painter applies a style only when output is styled.
type painter bool

func (p painter) paint(st lipgloss.Style, text string) string {
	if !p {
		return text
	}
	return st.Render(text)
}

// BuildReport converts the named report of s into cells. Styled output
// carries ANSI colors and extra visual columns; plain output is suitable
// for Markdown.
func BuildReport(s *report.Summary, name domain.ReportName, styled bool) (ReportData, error) {
	p := painter(styled)
	d := ReportData{Title: ReportTitle(name, s.Years()), Right: map[int]bool{}}

	switch name {
	case domain.ReportByMonth:
		table := s.ByMonth()
		d.Title = ReportTitle(name, table.Years())
		d.Headers = []string{"Month"}
		for i, c := range table.Columns {
			d.Headers = append(d.Headers, c.Name)
			d.Right[i+1] = true
		}
		for _, tr := range table.Rows {
			row := []string{MonthName(tr.Month)}
			for _, c := range table.Columns {
				row = append(row, monthCell(p, tr.Cells[c.Name]))
			}
			d.Rows = append(d.Rows, row)
		}

	case domain.ReportByYear:
		d.Headers = []string{"Year", "Effort", "Target", "Difference", "Target met"}
		if styled {
			d.Headers = append(d.Headers, "Progress")
		}
		rightAlign(d.Right, 1, 2, 3)
		for _, r := range s.ByYear() {
			met := "no"
			if r.IsTargetMet {
				met = "yes"
			}
			diff := effort.FormatSigned(r.TargetDiff)
			row := []string{strconv.Itoa(r.Year), effort.Format(r.Effort), effort.Format(r.Target), diff, met}
			if styled {
				row[3] = SignedEffort(r.TargetDiff)
				row[4] = TargetPill(r.IsTargetMet)
				row = append(row, TargetProgress(r.Effort, r.Target, yearProgressBarWidth))
			}
			d.Rows = append(d.Rows, row)
		}

	case domain.ReportByYearMonth:
		d.Headers = []string{"Year", "Month", "Effort", "Yearly total", "To target"}
		rightAlign(d.Right, 2, 3, 4)
		for _, r := range s.ByYearMonth() {
			d.Rows = append(d.Rows, []string{
				strconv.Itoa(r.Year), MonthName(r.Month),
				effort.Format(r.Effort), effort.Format(r.YearlyTotal),
				p.signed(r.ToTarget),
			})
		}

	case domain.ReportByYearMonthProject:
		d.Headers = []string{"Year", "Month", "Project", "Version", "Effort", "DME", "DME %", "TME", "TME %"}
		rightAlign(d.Right, 4, 5, 6, 7, 8)
		for _, r := range s.ByYearMonthProject() {
			d.Rows = append(d.Rows, []string{
				strconv.Itoa(r.Year), MonthName(r.Month),
				p.key(r.Key.Name, r.Key), p.key(r.Key.Version, r.Key),
				effort.Format(r.Effort),
				effort.Format(r.DME), Percent(r.DMEPercentage),
				effort.Format(r.TME), Percent(r.TMEPercentage),
			})
		}

	case domain.ReportByYearProject:
		d.Headers = []string{"Year", "Project", "Version", "Effort", "DYE", "DYE %", "TYE", "TYE %"}
		rightAlign(d.Right, 3, 4, 5, 6, 7)
		for _, r := range s.ByYearProject() {
			d.Rows = append(d.Rows, []string{
				strconv.Itoa(r.Year),
				p.key(r.Key.Name, r.Key), p.key(r.Key.Version, r.Key),
				effort.Format(r.Effort),
				effort.Format(r.DYE), Percent(r.DYEPercentage),
				effort.Format(r.TYE), Percent(r.TYEPercentage),
			})
		}

	case domain.ReportByProject:
		d.Headers = []string{"Tag", "Project", "Effort", "DE", "DE %", "TE", "TE %"}
		rightAlign(d.Right, 2, 3, 4, 5, 6)
		for _, r := range s.ByProject() {
			d.Rows = append(d.Rows, []string{
				r.Tag, p.key(r.Key.Name, r.Key),
				effort.Format(r.Effort),
				effort.Format(r.DE), Percent(r.DEPercentage),
				effort.Format(r.TE), Percent(r.TEPercentage),
			})
		}

	case domain.ReportByProjectVersion:
		d.Headers = []string{"Project", "Version", "Effort"}
		rightAlign(d.Right, 2)
		for _, r := range s.ByProjectVersion() {
			d.Rows = append(d.Rows, []string{
				p.key(r.Key.Name, r.Key), p.key(r.Key.Version, r.Key), effort.Format(r.Effort),
			})
		}

	case domain.ReportByTagYear:
		d.Headers = []string{"Year", "Tag", "Effort"}
		rightAlign(d.Right, 2)
		for _, r := range s.ByTagYear() {
			d.Rows = append(d.Rows, []string{strconv.Itoa(r.Year), r.Tag, effort.Format(r.Effort)})
		}

	case domain.ReportByTag:
		d.Headers = []string{"Tag", "Effort", "Percentage"}
		rightAlign(d.Right, 1, 2)
		for _, r := range s.ByTag() {
			d.Rows = append(d.Rows, []string{r.Tag, effort.Format(r.Effort), Percent(r.Percentage)})
		}

	case domain.ReportByTimeRange:
		d.Headers = []string{"Time range", "Occurrences"}
		rightAlign(d.Right, 1)
		for _, r := range s.ByTimeRange() {
			d.Rows = append(d.Rows, []string{r.ID, strconv.Itoa(r.Occurrences)})
		}

	case domain.ReportByEffortStatus:
		d.Headers, d.Rows = effortStatusCells(p, s.ByEffortStatus())
		rightAlign(d.Right, 0, 3, 4)

	case domain.ReportDefinitions:
		d.Headers = []string{"Abbreviation", "Definition"}
		for _, def := range s.Definitions() {
			d.Rows = append(d.Rows, []string{p.paint(StyleBold, def.Abbreviation), def.Phrase})
		}

	default:
		return ReportData{}, fmt.Errorf("unknown report %q", name)
	}
	return d, nil
}

// FormatReport renders the named report as a boxed terminal table.
func FormatReport(s *report.Summary, name domain.ReportName) (string, error) {
	d, err := BuildReport(s, name, true)
	if err != nil {
		return "", err
	}
	if len(d.Rows) == 0 {
		return RenderBox(d.Title, Dim("No data.")), nil
	}
	return RenderBox(d.Title, d.Table().Render()), nil
}

// FormatReportMarkdown renders the named report as a Markdown section.
func FormatReportMarkdown(s *report.Summary, name domain.ReportName, r report.MarkdownRenderer) (string, error) {
	if name == domain.ReportByMonth {
		return report.ByMonthMarkdown(s, r), nil
	}
	d, err := BuildReport(s, name, false)
	if err != nil {
		return "", err
	}
	return "## " + d.Title + "\n\n" + r.RenderMarkdownTable(d.Headers, d.Rows), nil
}

// FormatEffortStatuses renders effort verdicts for the validate command.
func FormatEffortStatuses(statuses []domain.EffortStatus) string {
	if len(statuses) == 0 {
		return StyleGreen.Render("All efforts are correct.") + "\n"
	}
	headers, rows := effortStatusCells(painter(true), statuses)
	t := Table{Headers: headers, Rows: rows, Right: map[int]bool{}}
	rightAlign(t.Right, 0, 3, 4)
	return RenderBox("Effort status", t.Render())
}

func effortStatusCells(p painter, statuses []domain.EffortStatus) ([]string, [][]string) {
	headers := []string{"Index", "Start", "End", "Effort", "Expected", "Status", "Message"}
	rows := make([][]string, 0, len(statuses))
	for _, st := range statuses {
		expected := ""
		if st.ExpectedDuration != nil {
			expected = effort.Format(*st.ExpectedDuration)
		}
		status := plainStatus(st)
		if p {
			status = CorrectPill(st)
		}
		msg := st.Message
		if p {
			msg = Dim(Truncate(msg, 80))
		}
		rows = append(rows, []string{
			strconv.Itoa(st.Index), st.StartTime, st.EndTime, st.Effort, expected, status, msg,
		})
	}
	return headers, rows
}

func plainStatus(s domain.EffortStatus) string {
	switch {
	case s.Invalid:
		return "invalid"
	case !s.IsCorrect:
		return "mismatch"
	case !s.Verifiable():
		return "assumed"
	default:
		return "ok"
	}
}

func monthCell(p painter, c aggregate.Cell) string {
	switch {
	case c.Blank:
		return ""
	case c.Trend != "":
		if p {
			return TrendIndicator(c.Trend)
		}
		return c.Trend.Symbol()
	default:
		return effort.Format(c.Effort)
	}
}

func (p painter) signed(d time.Duration) string {
	if p {
		return SignedEffort(d)
	}
	return effort.FormatSigned(d)
}

// key highlights the parts of an invalid project key.
func (p painter) key(text string, k domain.ProjectVersionKey) string {
	if k.Invalid {
		return p.paint(StyleRed, text)
	}
	return text
}

func rightAlign(m map[int]bool, cols ...int) {
	for _, c := range cols {
		m[c] = true
	}
}
