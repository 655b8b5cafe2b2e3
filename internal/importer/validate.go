package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/effortlog/internal/effort"
)

const dateLayout = "2006-01-02"

// ValidateRows checks every row before conversion and returns all problems
// found, each naming the row's line.
func ValidateRows(rows []SessionRow) []error {
	var errs []error
	for _, r := range rows {
		errs = append(errs, validateRow(r)...)
	}
	return errs
}

func validateRow(r SessionRow) []error {
	var errs []error
	at := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("line %d: "+format, append([]any{r.Line}, args...)...))
	}

	date, dateErr := time.Parse(dateLayout, r.Date)
	if r.Date == "" {
		at("Date is required")
	} else if dateErr != nil {
		at("Date: invalid date format %q (expected YYYY-MM-DD)", r.Date)
	}

	if r.Effort == "" {
		at("Effort is required")
	} else if _, err := effort.Parse(r.Effort); err != nil {
		at("Effort: %v", err)
	}

	if _, err := parseBool(r.IsSoftwareProject); err != nil {
		at("IsSoftwareProject: %v", err)
	}
	if _, err := parseBool(r.IsReleaseDay); err != nil {
		at("IsReleaseDay: %v", err)
	}

	if r.Year != "" {
		y, err := strconv.Atoi(r.Year)
		switch {
		case err != nil:
			at("Year: invalid value %q", r.Year)
		case dateErr == nil && r.Date != "" && y != date.Year():
			at("Year %d does not match Date %s", y, r.Date)
		}
	}
	if r.Month != "" {
		m, err := strconv.Atoi(r.Month)
		switch {
		case err != nil:
			at("Month: invalid value %q", r.Month)
		case m < 1 || m > 12:
			at("Month must be between 1 and 12, got %d", m)
		case dateErr == nil && r.Date != "" && m != int(date.Month()):
			at("Month %d does not match Date %s", m, r.Date)
		}
	}

	return errs
}

// parseBool accepts true/false, yes/no, 1/0 in any case. Empty is false.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "no", "0":
		return false, nil
	case "true", "yes", "1":
		return true, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", s)
	}
}
