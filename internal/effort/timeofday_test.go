package effort

import (
	"testing"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTime_AllQuarterHours(t *testing.T) {
	assert.Len(t, quarterHours, 96)

	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 15 {
			p, err := ResolveTime(clock(h, m))
			require.NoError(t, err, "%02d:%02d", h, m)

			want := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
			if h < 7 {
				want += 24 * time.Hour
			}
			assert.Equal(t, want, time.Duration(p), "%02d:%02d", h, m)
		}
	}
}

func TestResolveTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "07:10", "24:00", "7:00", "07:00:00", "ab:cd", "23:59"} {
		t.Run(in, func(t *testing.T) {
			_, err := ResolveTime(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTimeValue)

			var tv *domain.InvalidTimeValueError
			require.ErrorAs(t, err, &tv)
			assert.Equal(t, in, tv.Value)
		})
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		start, end string
		want       time.Duration
	}{
		{"08:00", "12:30", 4*time.Hour + 30*time.Minute},
		{"20:00", "00:00", 4 * time.Hour},
		{"22:00", "00:00", 2 * time.Hour},
		{"23:45", "06:45", 7 * time.Hour},
		{"07:00", "07:00", 0},
		{"00:15", "02:00", 1*time.Hour + 45*time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			got, err := Span(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpan_PropagatesInvalidTime(t *testing.T) {
	_, err := Span("08:00", "08:10")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeValue)

	_, err = Span("nope", "08:00")
	assert.ErrorIs(t, err, domain.ErrInvalidTimeValue)
}
