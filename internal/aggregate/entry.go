package aggregate

import (
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/descriptor"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/effort"
)

// Entry is a session record with its effort parsed and its project key
// extracted once, up front.
type Entry struct {
	Record domain.SessionRecord
	Effort time.Duration
	Key    domain.ProjectVersionKey
}

// Prepare parses every record. A malformed effort aborts with an error
// naming the record index.
func Prepare(records []domain.SessionRecord) ([]Entry, error) {
	entries := make([]Entry, 0, len(records))
	for _, r := range domain.CloneRecords(records) {
		d, err := effort.Parse(r.Effort)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", r.Index, err)
		}
		entries = append(entries, Entry{
			Record: r,
			Effort: d,
			Key:    descriptor.Key(r.Descriptor),
		})
	}
	return entries, nil
}

func filterEntries(entries []Entry, keep func(Entry) bool) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func inYears(years YearSet) func(Entry) bool {
	return func(e Entry) bool { return years.Contains(e.Record.Year) }
}

func softwareInYears(years YearSet) func(Entry) bool {
	return func(e Entry) bool {
		return e.Record.IsSoftwareProject && years.Contains(e.Record.Year)
	}
}

func sumEffort(entries []Entry) time.Duration {
	var total time.Duration
	for _, e := range entries {
		total += e.Effort
	}
	return total
}

type yearMonth struct {
	year, month int
}
