package aggregate

import (
	"testing"

	"github.com/alexanderramin/effortlog/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func timeRangeFixture(t *testing.T) []Entry {
	return mustPrepare(t,
		testutil.NewTestRecord(testutil.WithTimes("20:00", "22:00"), testutil.WithEffort("2h 00m")),
		testutil.NewTestRecord(testutil.WithTimes("20:00", "22:00"), testutil.WithEffort("2h 00m")),
		testutil.NewTestRecord(testutil.WithTimes("20:00", "22:00"), testutil.WithEffort("2h 00m")),
		testutil.NewTestRecord(testutil.WithTimes("09:00", "10:00")),
		testutil.NewTestRecord(testutil.WithTimes("07:00", "08:00")),
		testutil.NewTestRecord(testutil.WithTimes("07:00", "08:00")),
		testutil.NewTestRecord(testutil.WithTimes("", "08:00")),
		testutil.NewTestRecord(),
	)
}

func TestByTimeRange_CountsAscending(t *testing.T) {
	rows := ByTimeRange(timeRangeFixture(t), TimeRangeOptions{UnknownID: "Unknown"})

	assert.Equal(t, []TimeRangeRow{
		{ID: "09:00-10:00", Occurrences: 1},
		{ID: "07:00-08:00", Occurrences: 2},
		{ID: "Unknown", Occurrences: 2},
		{ID: "20:00-22:00", Occurrences: 3},
	}, rows)
}

func TestByTimeRange_RemoveUnknownAndTop(t *testing.T) {
	rows := ByTimeRange(timeRangeFixture(t), TimeRangeOptions{UnknownID: "Unknown", RemoveUnknown: true, Top: 2})

	assert.Equal(t, []TimeRangeRow{
		{ID: "07:00-08:00", Occurrences: 2},
		{ID: "20:00-22:00", Occurrences: 3},
	}, rows)
}

func TestTimeRangeID(t *testing.T) {
	assert.Equal(t, "22:00-00:00", TimeRangeID("22:00", "00:00", "?"))
	assert.Equal(t, "?", TimeRangeID("22:00", "", "?"))
	assert.Equal(t, "?", TimeRangeID("", "", "?"))
}
