// Package model contains the in-memory representation of versioned
// workflow environment configurations and supporting types used by the
// flowenv registry.
//
// A workflow aggregates an ordered history of revisions, each pairing a
// semantic version with an immutable snapshot of scalar configuration
// entries.  The `version` sub-package defines version parsing and
// comparison; diffing between two snapshots is a pure function over the
// structures defined here.
package model
