package version

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by Parse whenever the supplied literal is not a
// strict three component semantic version.  Callers detect the condition
// with errors.Is instead of string comparison.
var ErrInvalid = errors.New("version: invalid")

// Version is a three component semantic version.  Comparison is
// lexicographic on (major, minor, patch); pre-release or build metadata
// suffixes are not modelled.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// Compare returns -1, 0 or 1 when v is respectively lower, equal or
// greater than o.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		return sign(v.Major - o.Major)
	}
	if v.Minor != o.Minor {
		return sign(v.Minor - o.Minor)
	}
	return sign(v.Patch - o.Patch)
}

// Less reports whether v orders before o.
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Equals reports whether both versions carry identical components.
func (v Version) Equals(o Version) bool {
	return v.Compare(o) == 0
}

// String formats the version in its canonical M.m.p form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// MarshalText renders the canonical literal so that versions embed as
// plain scalars in JSON and YAML documents.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses the canonical literal.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func sign(value int) int {
	switch {
	case value < 0:
		return -1
	case value > 0:
		return 1
	}
	return 0
}
