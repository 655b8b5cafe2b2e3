package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TrendStyle returns the style for a month-over-month trend.
func TrendStyle(t domain.Trend) lipgloss.Style {
	switch t {
	case domain.TrendIncrease:
		return StyleGreen
	case domain.TrendDecrease:
		return StyleRed
	default:
		return StyleDim
	}
}

// TrendIndicator returns the colored trend arrow.
func TrendIndicator(t domain.Trend) string {
	return TrendStyle(t).Render(t.Symbol())
}

// TargetPill returns a colored marker for a yearly target verdict.
func TargetPill(met bool) string {
	if met {
		return StyleGreen.Render("● MET")
	}
	return StyleRed.Render("● BEHIND")
}

// CorrectPill returns a colored marker for an effort verdict.
func CorrectPill(s domain.EffortStatus) string {
	switch {
	case s.Invalid:
		return StyleRed.Render("✖ invalid")
	case !s.IsCorrect:
		return StyleYellow.Render("▲ mismatch")
	case !s.Verifiable():
		return StyleDim.Render("○ assumed")
	default:
		return StyleGreen.Render("✔ ok")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
