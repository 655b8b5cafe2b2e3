package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"TAG", "EFFORT"}, [][]string{
		{"#dev", "10h 00m"},
		{"#study-long", "01h 00m"},
	}))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TAG          EFFORT", lines[0])
	assert.Equal(t, "───────────  ───────", lines[1])
	assert.Equal(t, "#dev         10h 00m", lines[2])
}

func TestTable_RightAlign(t *testing.T) {
	out := stripANSI(Table{
		Headers: []string{"TAG", "N"},
		Rows:    [][]string{{"a", "5"}, {"b", "100"}},
		Right:   map[int]bool{1: true},
	}.Render())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TAG    N", lines[0])
	assert.Equal(t, "a      5", lines[2])
	assert.Equal(t, "b    100", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestMarkdown_RenderMarkdownTable(t *testing.T) {
	got := Markdown{}.RenderMarkdownTable(
		[]string{"Tag", "Effort"},
		[][]string{{"#a|b", "01h 00m"}, {"#c"}},
	)
	assert.Equal(t, "| Tag | Effort |\n| --- | --- |\n| #a\\|b | 01h 00m |\n| #c |  |\n", got)
}
