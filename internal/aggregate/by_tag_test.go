package aggregate

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/effort"
	"github.com/alexanderramin/effortlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByTag_SortedByEffort(t *testing.T) {
	entries := mustPrepare(t,
		testutil.NewTestRecord(testutil.WithTag("#b"), testutil.WithEffort("1h 00m")),
		testutil.NewTestRecord(testutil.WithTag("#a"), testutil.WithEffort("3h 00m")),
		testutil.NewTestRecord(testutil.WithTag("#c"), testutil.WithEffort("1h 00m")),
	)

	rows := ByTag(entries)

	require.Len(t, rows, 3)
	assert.Equal(t, TagRow{Tag: "#a", Effort: hours(3), Percentage: 60}, rows[0])
	assert.Equal(t, TagRow{Tag: "#b", Effort: hours(1), Percentage: 20}, rows[1])
	assert.Equal(t, TagRow{Tag: "#c", Effort: hours(1), Percentage: 20}, rows[2])
}

func TestByTag_PercentagesSumToHundred(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	tags := []string{"#dev", "#ops", "#study", "#untagged", "#admin", "#music", "#chores"}

	for run := 0; run < 50; run++ {
		n := 1 + rng.Intn(60)
		records := make([]domain.SessionRecord, n)
		for i := range records {
			d := time.Duration(rng.Intn(10))*time.Hour + time.Duration(15*(1+rng.Intn(3)))*time.Minute
			records[i] = testutil.NewTestRecord(
				testutil.WithTag(tags[rng.Intn(len(tags))]),
				testutil.WithEffort(effort.Format(d)),
			)
		}

		rows := ByTag(mustPrepare(t, records...))

		var sum float64
		for _, r := range rows {
			sum += r.Percentage
		}
		tolerance := float64(len(rows))*0.01 + 1e-9
		assert.LessOrEqual(t, math.Abs(sum-100), tolerance, "run %d", run)
	}
}

func TestByTagYear(t *testing.T) {
	entries := mustPrepare(t,
		testutil.NewTestRecord(testutil.WithDate(2024, 1, 1), testutil.WithTag("#b")),
		testutil.NewTestRecord(testutil.WithDate(2023, 1, 1), testutil.WithTag("#b")),
		testutil.NewTestRecord(testutil.WithDate(2024, 5, 1), testutil.WithTag("#a")),
		testutil.NewTestRecord(testutil.WithDate(2024, 6, 1), testutil.WithTag("#a")),
	)

	rows := ByTagYear(entries)

	assert.Equal(t, []TagYearRow{
		{Year: 2024, Tag: "#a", Effort: hours(2)},
		{Year: 2023, Tag: "#b", Effort: hours(1)},
		{Year: 2024, Tag: "#b", Effort: hours(1)},
	}, rows)
}
