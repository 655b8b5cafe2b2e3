package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/effortlog/internal/effort"
)

// MarkdownRenderer turns a header row and body rows into Markdown table
// syntax.
type MarkdownRenderer interface {
	RenderMarkdownTable(headers []string, rows [][]string) string
}

// ByMonthMarkdown renders the by-month report as a Markdown section: a
// heading followed by the month table with every duration formatted as
// "HHh MMm". Redacted cells render empty.
func ByMonthMarkdown(s *Summary, r MarkdownRenderer) string {
	table := s.ByMonth()

	headers := []string{"Month"}
	for _, c := range table.Columns {
		headers = append(headers, c.Name)
	}

	rows := make([][]string, 0, len(table.Rows))
	for _, tr := range table.Rows {
		row := []string{time.Month(tr.Month).String()}
		for _, c := range table.Columns {
			cell := tr.Cells[c.Name]
			switch {
			case cell.Blank:
				row = append(row, "")
			case cell.Trend != "":
				row = append(row, cell.Trend.Symbol())
			default:
				row = append(row, effort.Format(cell.Effort))
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString("## Effort by month")
	if years := table.Years(); len(years) > 0 {
		b.WriteString(" (")
		for i, y := range years {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(y))
		}
		b.WriteString(")")
	}
	b.WriteString("\n\n")
	b.WriteString(r.RenderMarkdownTable(headers, rows))
	return b.String()
}
