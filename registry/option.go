package registry

import (
	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/service/dao"
)

type Option func(*Service)

// WithWorkflowDAO sets the workflow history store.
func WithWorkflowDAO(workflows dao.Service[string, model.Workflow]) Option {
	return func(s *Service) {
		s.workflows = workflows
	}
}
