package aggregate

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/effortlog/internal/effort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteMonths_FillsLeadingGap(t *testing.T) {
	series := []MonthRow{
		{Year: 2023, Month: 10, Effort: hours(8)},
		{Year: 2023, Month: 11, Effort: hours(10)},
		{Year: 2023, Month: 12, Effort: 0},
	}

	got := CompleteMonths(series, 2023)

	require.Len(t, got, 12)
	for i := 0; i < 9; i++ {
		assert.Equal(t, i+1, got[i].Month)
		assert.Equal(t, "00h 00m", effort.Format(got[i].Effort))
	}
	assert.Equal(t, hours(8), got[9].Effort)
	assert.Equal(t, hours(10), got[10].Effort)
	assert.Equal(t, hours(0), got[11].Effort)
}

func TestCompleteMonths_ReordersFullSeries(t *testing.T) {
	var series []MonthRow
	for m := 12; m >= 1; m-- {
		series = append(series, MonthRow{Year: 2022, Month: m, Effort: hours(float64(m))})
	}

	got := CompleteMonths(series, 2022)

	require.Len(t, got, 12)
	for i, r := range got {
		assert.Equal(t, i+1, r.Month)
		assert.Equal(t, hours(float64(i+1)), r.Effort)
		assert.Equal(t, 2022, r.Year)
	}
}

func TestCompleteMonths_AlwaysTwelveRows(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		var series []MonthRow
		for _, m := range rng.Perm(12)[:rng.Intn(13)] {
			series = append(series, MonthRow{Month: m + 1, Effort: hours(float64(rng.Intn(40)))})
		}

		got := CompleteMonths(series, 2024)

		require.Len(t, got, 12)
		for j, r := range got {
			assert.Equal(t, j+1, r.Month)
		}
	}
}
