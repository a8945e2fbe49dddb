package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/flowenv/flowenv/internal/clock"
	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/model/version"
	"github.com/flowenv/flowenv/service/dao"
	"github.com/flowenv/flowenv/service/dao/workflow/memory"
)

// Service is the versioned configuration registry.  It owns the mapping
// from workflow name to ordered revision history through a workflow DAO,
// enforces version monotonicity on publish and computes structural diffs
// between any two published snapshots.
//
// The service is a pure data-structure component: it performs no retries,
// no logging and no recovery.  Individual DAO operations are thread-safe,
// but Publish is a read-then-conditionally-append sequence; embedding
// systems that need concurrent writers must serialise publishes externally.
type Service struct {
	workflows dao.Service[string, model.Workflow]
}

// Publish records a new revision of the named workflow.  The version
// literal must parse as three dot separated non-negative integers and
// compare strictly greater than the workflow's current latest version.
// On success the snapshot is cloned and appended; on any failure nothing
// mutates.
func (s *Service) Publish(ctx context.Context, name, versionLiteral string, config model.EnvConfig) error {
	if name == "" {
		return fmt.Errorf("%w: workflow name is empty", dao.ErrInvalidID)
	}
	parsed, err := version.Parse(versionLiteral)
	if err != nil {
		return err
	}
	workflow, err := s.workflows.Load(ctx, name)
	switch {
	case errors.Is(err, dao.ErrNotFound):
		workflow = model.NewWorkflow(name)
	case err != nil:
		return err
	}
	if latest := workflow.Latest(); latest != nil && !latest.Version.Less(parsed) {
		return fmt.Errorf("%w: %s does not exceed current latest %s for workflow %s",
			ErrNonMonotonic, parsed, latest.Version, name)
	}
	revision := &model.Revision{
		Version:     parsed,
		Config:      config.Clone(),
		PublishedAt: clock.Now(),
	}
	// Save an updated copy so a failed save leaves the stored history intact.
	updated := &model.Workflow{
		Name:      workflow.Name,
		Revisions: append(append([]*model.Revision{}, workflow.Revisions...), revision),
	}
	return s.workflows.Save(ctx, updated)
}

// GetLatest returns the snapshot of the revision with the greatest version
// for the named workflow.  An unknown or empty workflow is a designed soft
// miss reported through the boolean, not an error.
func (s *Service) GetLatest(ctx context.Context, name string) (model.EnvConfig, bool, error) {
	if name == "" {
		return nil, false, nil
	}
	workflow, err := s.workflows.Load(ctx, name)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	latest := workflow.Latest()
	if latest == nil {
		return nil, false, nil
	}
	return latest.Config.Clone(), true, nil
}

// DiffEnv computes the structural difference between two published
// snapshots of the same workflow, framed as a -> b.  The diff is a pure
// set comparison, so the arguments may be passed in either chronological
// direction.  An unknown workflow and an unknown version are reported the
// same way, through ErrNotFound.
func (s *Service) DiffEnv(ctx context.Context, name, versionA, versionB string) (*model.Diff, error) {
	parsedA, err := version.Parse(versionA)
	if err != nil {
		return nil, err
	}
	parsedB, err := version.Parse(versionB)
	if err != nil {
		return nil, err
	}
	workflow, err := s.workflows.Load(ctx, name)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, fmt.Errorf("%w: workflow %s", ErrNotFound, name)
		}
		return nil, err
	}
	revisionA := workflow.Find(parsedA)
	if revisionA == nil {
		return nil, fmt.Errorf("%w: workflow %s has no version %s", ErrNotFound, name, parsedA)
	}
	revisionB := workflow.Find(parsedB)
	if revisionB == nil {
		return nil, fmt.Errorf("%w: workflow %s has no version %s", ErrNotFound, name, parsedB)
	}
	return model.DiffConfigs(revisionA.Config, revisionB.Config), nil
}

// History returns the full revision history of the named workflow, or
// ErrNotFound when the workflow is unknown.
func (s *Service) History(ctx context.Context, name string) ([]*model.Revision, error) {
	workflow, err := s.workflows.Load(ctx, name)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, fmt.Errorf("%w: workflow %s", ErrNotFound, name)
		}
		return nil, err
	}
	return append([]*model.Revision{}, workflow.Revisions...), nil
}

// List returns the known workflows passing the optional name criteria.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Workflow, error) {
	return s.workflows.List(ctx, parameters...)
}

// New creates a registry service; by default it stores histories in the
// in-memory workflow DAO.
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.workflows == nil {
		ret.workflows = memory.New()
	}
	return ret
}
