package model

import (
	"fmt"

	"github.com/flowenv/flowenv/model/version"
)

// Workflow represents a named workflow together with its ordered revision
// history.  Revisions are appended in strictly increasing version order so
// that insertion order and version order coincide; the slice never needs
// re-sorting on read.
type Workflow struct {
	Name      string      `json:"name" yaml:"name"`
	Revisions []*Revision `json:"revisions,omitempty" yaml:"revisions,omitempty"`
}

// NewWorkflow creates an empty workflow with the supplied name.
func NewWorkflow(name string) *Workflow {
	return &Workflow{Name: name}
}

// Latest returns the revision with the greatest version, or nil when the
// workflow has no history yet.
func (w *Workflow) Latest() *Revision {
	if len(w.Revisions) == 0 {
		return nil
	}
	return w.Revisions[len(w.Revisions)-1]
}

// Find returns the revision published under the exact version, or nil.
func (w *Workflow) Find(v version.Version) *Revision {
	for _, revision := range w.Revisions {
		if revision.Version.Equals(v) {
			return revision
		}
	}
	return nil
}

// Validate performs a best-effort structural validation of the workflow.
// The returned slice is empty when the workflow is sound; otherwise it
// contains human-readable error descriptions.
func (w *Workflow) Validate() []error {
	var issues []error
	if w.Name == "" {
		issues = append(issues, fmt.Errorf("workflow name is empty"))
	}
	for i := 1; i < len(w.Revisions); i++ {
		previous, current := w.Revisions[i-1], w.Revisions[i]
		if !previous.Version.Less(current.Version) {
			issues = append(issues, fmt.Errorf("workflow %s: revision %s does not exceed %s",
				w.Name, current.Version, previous.Version))
		}
	}
	return issues
}
