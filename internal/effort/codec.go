// Package effort converts between compact effort strings and durations,
// resolves quarter-hour times of day, and validates logged effort against
// the tracked start and end times.
package effort

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

var effortPattern = regexp.MustCompile(`^(\d+)h (\d+)m$`)

// Largest whole-minute count a time.Duration can hold.
const maxEffortMinutes = math.MaxInt64 / int64(time.Minute)

// Parse converts a compact effort string such as "5h 30m" or "0h 00m"
// into a duration. It returns a *domain.FormatError when text does not
// match the grammar or is too large for a time.Duration.
func Parse(text string) (time.Duration, error) {
	m := effortPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, &domain.FormatError{Value: text}
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &domain.FormatError{Value: text}
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, &domain.FormatError{Value: text}
	}
	if int64(hours) > maxEffortMinutes/60 || int64(minutes) > maxEffortMinutes-int64(hours)*60 {
		return 0, &domain.FormatError{Value: text}
	}
	total := int64(hours)*60 + int64(minutes)
	return time.Duration(total) * time.Minute, nil
}

// MustParse is Parse for known-good literals. It panics on malformed input.
func MustParse(text string) time.Duration {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Format renders d as "HHh MMm". Hours may exceed 24 and are padded to at
// least two digits. A negative duration carries its sign on the hours.
func Format(d time.Duration) string {
	return format(d, false)
}

// FormatSigned is Format with a leading "+" on non-negative durations.
func FormatSigned(d time.Duration) string {
	return format(d, true)
}

func format(d time.Duration, signed bool) string {
	seconds := int64(d / time.Second)

	sign := ""
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	} else if signed {
		sign = "+"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%s%02dh %02dm", sign, hours, minutes)
}
