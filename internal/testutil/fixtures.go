package testutil

import (
	"sync/atomic"
	"time"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/google/uuid"
)

var testRecordIndex atomic.Int64

// Record options
type RecordOption func(*domain.SessionRecord)

// WithDate sets the record date and the Year and Month derived from it.
func WithDate(year, month, day int) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Date = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		r.Year = year
		r.Month = month
	}
}

func WithTimes(start, end string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.StartTime = start
		r.EndTime = end
	}
}

func WithEffort(effort string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Effort = effort
	}
}

func WithTag(tag string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Tag = tag
	}
}

// WithProject sets the descriptor to "<name> v<version>" and marks the
// record as a software project session.
func WithProject(name, version string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Descriptor = name + " v" + version
		r.IsSoftwareProject = true
	}
}

func WithDescriptor(d string) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Descriptor = d
	}
}

func WithSoftwareProject(b bool) RecordOption {
	return func(r *domain.SessionRecord) {
		r.IsSoftwareProject = b
	}
}

func WithReleaseDay() RecordOption {
	return func(r *domain.SessionRecord) {
		r.IsReleaseDay = true
	}
}

func WithIndex(i int) RecordOption {
	return func(r *domain.SessionRecord) {
		r.Index = i
	}
}

// NewTestRecord returns a one-hour untracked session on 2024-01-15.
func NewTestRecord(opts ...RecordOption) domain.SessionRecord {
	r := domain.SessionRecord{
		ID:         uuid.New().String(),
		Index:      int(testRecordIndex.Add(1)),
		Date:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		Effort:     "1h 00m",
		Tag:        "#study",
		Descriptor: "reading",
		Year:       2024,
		Month:      1,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewTestRecords builds n records with the same options, indexed 0..n-1.
func NewTestRecords(n int, opts ...RecordOption) []domain.SessionRecord {
	out := make([]domain.SessionRecord, n)
	for i := range out {
		out[i] = NewTestRecord(append([]RecordOption{WithIndex(i)}, opts...)...)
	}
	return out
}

// NewTestTarget returns a yearly target parsed from whole hours.
func NewTestTarget(year, hours int) domain.YearlyTarget {
	return domain.YearlyTarget{Year: year, Target: time.Duration(hours) * time.Hour}
}
