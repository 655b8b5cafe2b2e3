package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"days", now.Add(-48 * time.Hour), "May 8, 2024 12:00"},
		{"future", now.Add(time.Hour), "May 10, 2024 13:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestSignedEffort(t *testing.T) {
	assert.Equal(t, "+01h 30m", stripANSI(SignedEffort(90*time.Minute)))
	assert.Equal(t, "-00h 15m", stripANSI(SignedEffort(-15*time.Minute)))
	assert.Equal(t, "+00h 00m", stripANSI(SignedEffort(0)))
}

func TestPercentAndMonthName(t *testing.T) {
	assert.Equal(t, "33.33%", Percent(33.333))
	assert.Equal(t, "100.00%", Percent(100))
	assert.Equal(t, "February", MonthName(2))
	assert.Equal(t, "13", MonthName(13))
}

func TestYears(t *testing.T) {
	assert.Equal(t, "all", Years(nil))
	assert.Equal(t, "2023, 2024", Years([]int{2023, 2024}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestTrendIndicator(t *testing.T) {
	assert.Equal(t, "↑", stripANSI(TrendIndicator(domain.TrendIncrease)))
	assert.Equal(t, "↓", stripANSI(TrendIndicator(domain.TrendDecrease)))
	assert.Equal(t, "=", stripANSI(TrendIndicator(domain.TrendEqual)))
}

func TestCorrectPill(t *testing.T) {
	expected := time.Hour
	tests := []struct {
		name   string
		status domain.EffortStatus
		want   string
	}{
		{"invalid", domain.EffortStatus{Invalid: true}, "invalid"},
		{"mismatch", domain.EffortStatus{ExpectedDuration: &expected}, "mismatch"},
		{"assumed", domain.EffortStatus{IsCorrect: true}, "assumed"},
		{"ok", domain.EffortStatus{IsCorrect: true, ExpectedDuration: &expected}, "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, CorrectPill(tt.status), tt.want)
			assert.Equal(t, tt.want, plainStatus(tt.status))
		})
	}
}
