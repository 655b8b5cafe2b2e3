package formatter

import (
	"fmt"
	"strings"
	"time"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
// The percentage text is not clamped, so an exceeded target reads e.g. 120%.
func RenderProgress(pct float64, width int) string {
	shown := pct
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), max(shown, 0)*100)
}

// TargetProgress renders effort against a yearly target. A zero target
// renders as a dimmed placeholder.
func TargetProgress(effort, target time.Duration, width int) string {
	if target <= 0 {
		return Dim("no target")
	}
	return RenderProgress(float64(effort)/float64(target), width)
}
