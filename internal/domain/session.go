package domain

import "time"

// SessionRecord is one logged work session. Records are immutable once
// loaded; every report transform produces new rows instead of mutating them.
type SessionRecord struct {
	ID                string
	Index             int
	Date              time.Time
	StartTime         string // "HH:MM", empty when not tracked
	EndTime           string // "HH:MM", empty when not tracked
	Effort            string // compact duration, e.g. "5h 30m"
	Tag               string
	Descriptor        string
	IsSoftwareProject bool
	IsReleaseDay      bool
	Year              int
	Month             int
}

// HasTimeRange reports whether both start and end times were tracked.
func (r SessionRecord) HasTimeRange() bool {
	return r.StartTime != "" && r.EndTime != ""
}

// CloneRecords returns a copy of records.
func CloneRecords(records []SessionRecord) []SessionRecord {
	if records == nil {
		return nil
	}
	out := make([]SessionRecord, len(records))
	copy(out, records)
	return out
}
