package formatter

import "strings"

// Markdown renders plain pipe tables. It satisfies report.MarkdownRenderer.
type Markdown struct{}

// RenderMarkdownTable renders headers and rows as a GitHub-flavored
// Markdown table. Pipes inside cells are escaped and short rows are padded
// with empty cells.
func (Markdown) RenderMarkdownTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	var b strings.Builder
	writeMarkdownRow(&b, headers, len(headers))

	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	writeMarkdownRow(&b, sep, len(headers))

	for _, row := range rows {
		writeMarkdownRow(&b, row, len(headers))
	}
	return b.String()
}

func writeMarkdownRow(b *strings.Builder, cells []string, cols int) {
	b.WriteString("|")
	for i := 0; i < cols; i++ {
		cell := ""
		if i < len(cells) {
			cell = strings.ReplaceAll(cells[i], "|", `\|`)
		}
		b.WriteString(" ")
		b.WriteString(cell)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
