package memory

import (
	"context"

	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/service/dao"
	"github.com/flowenv/flowenv/service/dao/criteria"
	"github.com/flowenv/flowenv/service/dao/store"
)

// Service is an in-memory, thread-safe store for workflow histories keyed
// by workflow name.  Individual operations are guarded by the embedded
// store's RWMutex; composite read-then-write sequences remain the caller's
// responsibility.
type Service struct {
	*store.MemoryStore[string, model.Workflow]
}

var _ dao.Service[string, model.Workflow] = (*Service)(nil)

// Save validates the workflow before delegating to the embedded store.
func (s *Service) Save(ctx context.Context, workflow *model.Workflow) error {
	if workflow == nil {
		return dao.ErrNilEntity
	}
	if workflow.Name == "" {
		return dao.ErrInvalidID
	}
	return s.MemoryStore.Save(ctx, workflow)
}

// Load returns the workflow history stored under name.
func (s *Service) Load(ctx context.Context, name string) (*model.Workflow, error) {
	if name == "" {
		return nil, dao.ErrInvalidID
	}
	return s.MemoryStore.Load(ctx, name)
}

// Delete removes the workflow history stored under name.
func (s *Service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return dao.ErrInvalidID
	}
	return s.MemoryStore.Delete(ctx, name)
}

// List returns workflow histories passing the optional name criteria.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*model.Workflow, error) {
	all, err := s.MemoryStore.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Workflow, 0, len(all))
	for _, workflow := range all {
		if !criteria.FilterByName(workflow.Name, parameters) {
			continue
		}
		out = append(out, workflow)
	}
	return out, nil
}

func New() *Service {
	return &Service{
		MemoryStore: store.NewMemoryStore[string, model.Workflow](func(w *model.Workflow) string {
			return w.Name
		}),
	}
}
