package registry

import "errors"

// Registry errors.  Sentinel variables let callers detect the failure kind
// via errors.Is; version parse failures additionally wrap version.ErrInvalid
// from the model/version package.

var (
	// ErrNonMonotonic is returned when a publish attempt's version does not
	// strictly exceed the workflow's current latest version.  Equal versions
	// are rejected too, so exact republishing always fails.
	ErrNonMonotonic = errors.New("registry: non monotonic version")

	// ErrNotFound is returned when a diff references a workflow, or a
	// specific version within a workflow, that does not exist.  Both cases
	// surface the same sentinel.
	ErrNotFound = errors.New("registry: not found")
)
