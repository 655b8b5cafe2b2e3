package domain

import "fmt"

// ErrorSentinel is the display value of a project name or version that
// could not be extracted from a descriptor.
const ErrorSentinel = "ERROR"

// ProjectVersionKey identifies a software project and version extracted
// from a descriptor.
//
// Failed extractions set Invalid. Invalid keys render as "ERROR" and group
// into their own bucket, which never collides with a real project that
// happens to be named "ERROR".
type ProjectVersionKey struct {
	Name    string
	Version string
	Invalid bool
}

// NewProjectVersionKey returns a valid key.
func NewProjectVersionKey(name, version string) ProjectVersionKey {
	return ProjectVersionKey{Name: name, Version: version}
}

// InvalidProjectVersionKey returns the key used for descriptors that
// could not be parsed.
func InvalidProjectVersionKey() ProjectVersionKey {
	return ProjectVersionKey{Name: ErrorSentinel, Version: ErrorSentinel, Invalid: true}
}

// ProjectName returns the key restricted to the project name, keeping the
// invalid marker.
func (k ProjectVersionKey) ProjectName() ProjectVersionKey {
	return ProjectVersionKey{Name: k.Name, Invalid: k.Invalid}
}

func (k ProjectVersionKey) String() string {
	if k.Version == "" {
		return k.Name
	}
	return fmt.Sprintf("%s v%s", k.Name, k.Version)
}

// Less orders keys by name then version; invalid keys sort after valid ones
// with the same name.
func (k ProjectVersionKey) Less(o ProjectVersionKey) bool {
	if k.Name != o.Name {
		return k.Name < o.Name
	}
	if k.Version != o.Version {
		return k.Version < o.Version
	}
	return !k.Invalid && o.Invalid
}
