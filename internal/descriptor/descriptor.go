// Package descriptor extracts a software project name and version from the
// free-text descriptor of a session record.
package descriptor

import (
	"regexp"

	"github.com/alexanderramin/effortlog/internal/domain"
)

var (
	// "NW.Foo v1.2.3": a run of at least two letters or dots, a space, then a
	// three-part numeric version introduced by "v".
	projectNamePattern = regexp.MustCompile(`([A-Za-z.]{2,}) v\d+\.\d+\.\d+`)

	// Exactly five digits or dots after a "v" at the end of the descriptor.
	projectVersionPattern = regexp.MustCompile(`v([\d.]{5})$`)
)

// Status is the outcome of an extraction.
type Status int

const (
	StatusOK Status = iota
	StatusNoMatch
	StatusAmbiguous
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoMatch:
		return "no match"
	case StatusAmbiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// Extraction is the tagged result of extracting one field.
type Extraction struct {
	Value  string
	Status Status
}

// OK reports whether exactly one match was found.
func (e Extraction) OK() bool {
	return e.Status == StatusOK
}

// Display returns the extracted value, or domain.ErrorSentinel on failure.
func (e Extraction) Display() string {
	if !e.OK() {
		return domain.ErrorSentinel
	}
	return e.Value
}

// ExtractProjectName returns the project name embedded in descriptor.
// Zero matches and more than one match are both failures.
func ExtractProjectName(descriptor string) Extraction {
	return extractSingle(projectNamePattern, descriptor)
}

// ExtractProjectVersion returns the "d.d.d" version at the end of descriptor.
func ExtractProjectVersion(descriptor string) Extraction {
	return extractSingle(projectVersionPattern, descriptor)
}

func extractSingle(re *regexp.Regexp, s string) Extraction {
	matches := re.FindAllStringSubmatch(s, -1)
	switch len(matches) {
	case 0:
		return Extraction{Status: StatusNoMatch}
	case 1:
		return Extraction{Value: matches[0][1], Status: StatusOK}
	default:
		return Extraction{Status: StatusAmbiguous}
	}
}

// Key returns the project/version grouping key for descriptor. If either
// field cannot be extracted the key is domain.InvalidProjectVersionKey.
func Key(descriptor string) domain.ProjectVersionKey {
	name := ExtractProjectName(descriptor)
	version := ExtractProjectVersion(descriptor)
	if !name.OK() || !version.OK() {
		return domain.InvalidProjectVersionKey()
	}
	return domain.NewProjectVersionKey(name.Value, version.Value)
}
