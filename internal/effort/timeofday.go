package effort

import (
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

// dayStartHour is the first hour of the synthetic working day. Marks before
// it belong to the following day so overnight sessions span correctly.
const dayStartHour = 7

// TimePoint is a position on a synthetic two-day timeline, measured from
// midnight of the first day.
type TimePoint time.Duration

// Sub returns the duration from o to p.
func (p TimePoint) Sub(o TimePoint) time.Duration {
	return time.Duration(p) - time.Duration(o)
}

// quarterHours maps each of the 96 quarter-hour marks of a day to its
// position on the two-day timeline.
var quarterHours = buildQuarterHours()

func buildQuarterHours() map[string]TimePoint {
	marks := make(map[string]TimePoint, 96)
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m += 15 {
			offset := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute
			if h < dayStartHour {
				offset += 24 * time.Hour
			}
			marks[clock(h, m)] = TimePoint(offset)
		}
	}
	return marks
}

func clock(h, m int) string {
	const digits = "0123456789"
	return string([]byte{digits[h/10], digits[h%10], ':', digits[m/10], digits[m%10]})
}

// ResolveTime maps a "HH:MM" quarter-hour mark to the two-day timeline.
// "07:00" through "23:45" land on day one, "00:00" through "06:45" on day
// two. Any other string returns a *domain.InvalidTimeValueError.
func ResolveTime(timeOfDay string) (TimePoint, error) {
	p, ok := quarterHours[timeOfDay]
	if !ok {
		return 0, &domain.InvalidTimeValueError{Value: timeOfDay}
	}
	return p, nil
}

// Span returns the duration between two quarter-hour marks on the two-day
// timeline.
func Span(start, end string) (time.Duration, error) {
	s, err := ResolveTime(start)
	if err != nil {
		return 0, err
	}
	e, err := ResolveTime(end)
	if err != nil {
		return 0, err
	}
	return e.Sub(s), nil
}
