package domain

import "time"

// EffortStatus is the verdict on whether a record's logged effort matches
// the span between its start and end times.
//
// When either time is empty, ExpectedDuration is nil and IsCorrect is true.
// Otherwise IsCorrect holds exactly when ActualDuration == *ExpectedDuration.
type EffortStatus struct {
	Index            int
	StartTime        string
	EndTime          string
	Effort           string
	ActualDuration   time.Duration
	ExpectedDuration *time.Duration
	IsCorrect        bool
	Message          string

	// Invalid marks a record whose verdict could not be built at all.
	// Message then carries the creation error.
	Invalid bool
}

// Verifiable reports whether the verdict was computed from both times.
func (s EffortStatus) Verifiable() bool {
	return s.ExpectedDuration != nil
}

// Clone returns a copy that shares no memory with s.
func (s EffortStatus) Clone() EffortStatus {
	if s.ExpectedDuration != nil {
		expected := *s.ExpectedDuration
		s.ExpectedDuration = &expected
	}
	return s
}
