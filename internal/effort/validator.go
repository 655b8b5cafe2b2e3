package effort

import (
	"fmt"

	"github.com/alexanderramin/effortlog/internal/domain"
)

const (
	msgCannotVerify = "'start_time' and/or 'end_time' are empty, 'effort' can't be verified. We assume that it's correct."
	msgCorrect      = "The effort is correct."
)

// NewEffortStatus builds the verdict for one record.
//
// Records missing either time are assumed correct, whatever their effort
// text. Otherwise the span between the times is compared to the parsed
// effort. Any failure is returned as a *domain.EffortStatusCreationError
// and no status is built.
func NewEffortStatus(index int, startTime, endTime, effortText string) (domain.EffortStatus, error) {
	wrap := func(err error) error {
		return &domain.EffortStatusCreationError{
			Index:     index,
			StartTime: startTime,
			EndTime:   endTime,
			Effort:    effortText,
			Err:       err,
		}
	}

	status := domain.EffortStatus{
		Index:     index,
		StartTime: startTime,
		EndTime:   endTime,
		Effort:    effortText,
	}

	if startTime == "" || endTime == "" {
		// Unverifiable records are never rejected; a malformed effort just
		// leaves ActualDuration at zero.
		if actual, err := Parse(effortText); err == nil {
			status.ActualDuration = actual
		}
		status.IsCorrect = true
		status.Message = msgCannotVerify
		return status, nil
	}

	actual, err := Parse(effortText)
	if err != nil {
		return domain.EffortStatus{}, wrap(err)
	}
	status.ActualDuration = actual

	expected, err := Span(startTime, endTime)
	if err != nil {
		return domain.EffortStatus{}, wrap(err)
	}

	status.ExpectedDuration = &expected
	status.IsCorrect = actual == expected
	if status.IsCorrect {
		status.Message = msgCorrect
	} else {
		status.Message = fmt.Sprintf(
			"The difference between end_time '%s' and start_time '%s' is '%s' (expected), but 'effort' is '%s' (actual) at index %d.",
			endTime, startTime, Format(expected), Format(actual), index,
		)
	}
	return status, nil
}

// ValidateAll builds a verdict for every record, in record order.
//
// A record whose verdict cannot be built does not abort the batch: it is
// kept as an Invalid, incorrect row carrying the creation error text, and
// the error is returned alongside so callers can surface it.
func ValidateAll(records []domain.SessionRecord) ([]domain.EffortStatus, []error) {
	statuses := make([]domain.EffortStatus, 0, len(records))
	var errs []error
	for _, r := range records {
		status, err := NewEffortStatus(r.Index, r.StartTime, r.EndTime, r.Effort)
		if err != nil {
			errs = append(errs, err)
			status = domain.EffortStatus{
				Index:     r.Index,
				StartTime: r.StartTime,
				EndTime:   r.EndTime,
				Effort:    r.Effort,
				IsCorrect: false,
				Invalid:   true,
				Message:   err.Error(),
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, errs
}

// Incorrect returns only the verdicts that are not correct.
func Incorrect(statuses []domain.EffortStatus) []domain.EffortStatus {
	var out []domain.EffortStatus
	for _, s := range statuses {
		if !s.IsCorrect {
			out = append(out, s)
		}
	}
	return out
}
