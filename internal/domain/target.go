package domain

import (
	"sort"
	"time"
)

// YearlyTarget is the expected total effort for one year.
type YearlyTarget struct {
	Year   int
	Target time.Duration
}

// TargetTable is a lookup of yearly targets, at most one entry per year.
type TargetTable map[int]time.Duration

// NewTargetTable builds a TargetTable. Later entries for the same year win.
func NewTargetTable(targets []YearlyTarget) TargetTable {
	t := make(TargetTable, len(targets))
	for _, yt := range targets {
		t[yt.Year] = yt.Target
	}
	return t
}

// For returns the target for year, or zero when none is configured.
func (t TargetTable) For(year int) time.Duration {
	return t[year]
}

// Has reports whether a target is configured for year.
func (t TargetTable) Has(year int) bool {
	_, ok := t[year]
	return ok
}

// Targets returns the table as a slice ordered by year.
func (t TargetTable) Targets() []YearlyTarget {
	out := make([]YearlyTarget, 0, len(t))
	for y, d := range t {
		out = append(out, YearlyTarget{Year: y, Target: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
