package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates a duration string outside the "<h>h <m>m" grammar.
	ErrInvalidFormat = errors.New("invalid duration format")

	// ErrInvalidTimeValue indicates a time of day that is not a quarter-hour mark.
	ErrInvalidTimeValue = errors.New("invalid time value")

	// ErrEffortStatusCreation indicates a per-record verdict could not be built.
	ErrEffortStatusCreation = errors.New("effort status creation failed")

	// ErrNotInitialized indicates a report accessor was used before Initialize.
	ErrNotInitialized = errors.New("report summary not initialized")
)

// FormatError reports a duration string that does not match the compact grammar.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %q (expected e.g. \"5h 30m\")", ErrInvalidFormat, e.Value)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// InvalidTimeValueError reports a time of day outside the 96 quarter-hour marks.
type InvalidTimeValueError struct {
	Value string
}

func (e *InvalidTimeValueError) Error() string {
	return fmt.Sprintf("%s: %q (expected a quarter-hour mark such as \"07:15\")", ErrInvalidTimeValue, e.Value)
}

func (e *InvalidTimeValueError) Unwrap() error { return ErrInvalidTimeValue }

// EffortStatusCreationError wraps any failure while building an EffortStatus
// and carries the offending inputs.
type EffortStatusCreationError struct {
	Index     int
	StartTime string
	EndTime   string
	Effort    string
	Err       error
}

func (e *EffortStatusCreationError) Error() string {
	return fmt.Sprintf("%s (index: %d, start_time: %q, end_time: %q, effort: %q): %v",
		ErrEffortStatusCreation, e.Index, e.StartTime, e.EndTime, e.Effort, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *EffortStatusCreationError) Unwrap() []error {
	return []error{ErrEffortStatusCreation, e.Err}
}
