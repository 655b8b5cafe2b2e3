package aggregate

import (
	"math"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

// CalculatePercentage returns part as a percentage of whole, rounded to two
// decimals with ties to even. It returns 0 when either value is zero.
func CalculatePercentage(part, whole time.Duration) float64 {
	if part == 0 || whole == 0 {
		return 0
	}
	pct := 100 * float64(part) / float64(whole)
	return math.RoundToEven(pct*100) / 100
}

// CompareTrend compares two consecutive values a and b, exactly.
func CompareTrend(a, b time.Duration) domain.Trend {
	switch {
	case a < b:
		return domain.TrendIncrease
	case a > b:
		return domain.TrendDecrease
	default:
		return domain.TrendEqual
	}
}
