package model

import (
	"time"

	"github.com/flowenv/flowenv/model/version"
)

// Revision pairs an immutable configuration snapshot with the version it
// was published under.  PublishedAt is informational only; ordering within
// a workflow is defined purely by Version.
type Revision struct {
	Version     version.Version `json:"version" yaml:"version"`
	Config      EnvConfig       `json:"config" yaml:"config"`
	PublishedAt time.Time       `json:"publishedAt,omitempty" yaml:"publishedAt,omitempty"`
}
