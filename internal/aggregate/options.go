// Package aggregate turns session records into the derived report tables:
// monthly, yearly, per-project, per-tag and per-time-range rollups.
//
// Every builder works on its own slice derived from the prepared entries
// and returns a fresh table, so builders are independent of each other.
package aggregate

import (
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
)

// Options configures a run of the report builders.
type Options struct {
	// Years restricts the year-filtered reports. Empty means every year.
	Years []int
	// KnownProjects is the allow-list for project-keyed reports. Empty
	// means every project is kept.
	KnownProjects []string
	Targets       domain.TargetTable

	UntaggedTag              string
	ExcludeUntaggedFromTotal bool

	TimeRange TimeRangeOptions

	// Now drives the redaction of future months in the by-month report.
	Now time.Time
}

// TimeRangeOptions configures the time-range occurrence report.
type TimeRangeOptions struct {
	UnknownID     string
	RemoveUnknown bool
	// Top keeps only the N most frequent ranges. Zero keeps all.
	Top int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		UntaggedTag:              "#untagged",
		ExcludeUntaggedFromTotal: true,
		TimeRange: TimeRangeOptions{
			UnknownID:     "Unknown",
			RemoveUnknown: true,
		},
	}
}

// YearSet is a year filter. The empty set matches every year.
type YearSet map[int]struct{}

func NewYearSet(years []int) YearSet {
	s := make(YearSet, len(years))
	for _, y := range years {
		s[y] = struct{}{}
	}
	return s
}

func (s YearSet) Contains(year int) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[year]
	return ok
}

// AllowList filters project-keyed rows by project name. An empty list
// allows every project. Keys from failed extractions never match a
// non-empty list.
type AllowList map[string]struct{}

func NewAllowList(names []string) AllowList {
	l := make(AllowList, len(names))
	for _, n := range names {
		l[n] = struct{}{}
	}
	return l
}

func (l AllowList) Allows(key domain.ProjectVersionKey) bool {
	if len(l) == 0 {
		return true
	}
	if key.Invalid {
		return false
	}
	_, ok := l[key.Name]
	return ok
}
