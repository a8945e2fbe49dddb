// Package registry exposes the configuration registry as an action
// service so executors can drive publish, lookup and diff operations
// through loosely typed inputs.
package registry

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/viant/x"

	"github.com/flowenv/flowenv/extension"
	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/model/types"
	"github.com/flowenv/flowenv/registry"
)

const name = "registry"

// PublishInput publishes a new revision of a workflow.
type PublishInput struct {
	Name    string                 `json:"name"`
	Version string                 `json:"version"`
	Config  map[string]interface{} `json:"config"`
}

// PublishOutput reports the published revision.
type PublishOutput struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// GetLatestInput identifies the workflow to resolve.
type GetLatestInput struct {
	Name string `json:"name"`
}

// GetLatestOutput carries the latest snapshot; Found is false when the
// workflow has no published revision.
type GetLatestOutput struct {
	Config map[string]interface{} `json:"config,omitempty"`
	Found  bool                   `json:"found"`
}

// DiffEnvInput identifies the two snapshots to compare.
type DiffEnvInput struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// DiffEnvOutput carries the structural difference.
type DiffEnvOutput struct {
	Diff *model.Diff `json:"diff"`
}

// HistoryInput identifies the workflow whose revisions to list.
type HistoryInput struct {
	Name string `json:"name"`
}

// HistoryRevision is one published revision without its snapshot body.
type HistoryRevision struct {
	Version     string    `json:"version"`
	PublishedAt time.Time `json:"publishedAt"`
}

// HistoryOutput lists the published revisions, oldest first.
type HistoryOutput struct {
	Revisions []*HistoryRevision `json:"revisions"`
}

// Service adapts the registry to the action service contract.
type Service struct {
	registry *registry.Service
}

// Name returns the service name
func (s *Service) Name() string {
	return name
}

// Methods returns the service methods
func (s *Service) Methods() types.Signatures {
	return []types.Signature{
		{
			Name:        "publish",
			Description: "Publishes a new configuration revision of a workflow",
			Input:       reflect.TypeOf(&PublishInput{}),
			Output:      reflect.TypeOf(&PublishOutput{}),
		},
		{
			Name:        "getLatest",
			Description: "Returns the latest published configuration of a workflow",
			Input:       reflect.TypeOf(&GetLatestInput{}),
			Output:      reflect.TypeOf(&GetLatestOutput{}),
		},
		{
			Name:        "diffEnv",
			Description: "Computes the structural difference between two published revisions",
			Input:       reflect.TypeOf(&DiffEnvInput{}),
			Output:      reflect.TypeOf(&DiffEnvOutput{}),
		},
		{
			Name:        "history",
			Description: "Lists the published revisions of a workflow",
			Input:       reflect.TypeOf(&HistoryInput{}),
			Output:      reflect.TypeOf(&HistoryOutput{}),
		},
	}
}

// Method returns the method executable or error
func (s *Service) Method(name string) (types.Executable, error) {
	switch strings.ToLower(name) {
	case "publish":
		return s.publish, nil
	case "getlatest":
		return s.getLatest, nil
	case "diffenv":
		return s.diffEnv, nil
	case "history":
		return s.history, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

func (s *Service) publish(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*PublishInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*PublishOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	config, err := model.NewEnvConfig(input.Config)
	if err != nil {
		return err
	}
	if err = s.registry.Publish(ctx, input.Name, input.Version, config); err != nil {
		return err
	}
	output.Name = input.Name
	output.Version = input.Version
	return nil
}

func (s *Service) getLatest(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*GetLatestInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*GetLatestOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	config, found, err := s.registry.GetLatest(ctx, input.Name)
	if err != nil {
		return err
	}
	output.Found = found
	if found {
		output.Config = config.Interface()
	}
	return nil
}

func (s *Service) diffEnv(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*DiffEnvInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*DiffEnvOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	diff, err := s.registry.DiffEnv(ctx, input.Name, input.From, input.To)
	if err != nil {
		return err
	}
	output.Diff = diff
	return nil
}

func (s *Service) history(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*HistoryInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*HistoryOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	revisions, err := s.registry.History(ctx, input.Name)
	if err != nil {
		return err
	}
	output.Revisions = make([]*HistoryRevision, 0, len(revisions))
	for _, revision := range revisions {
		output.Revisions = append(output.Revisions, &HistoryRevision{
			Version:     revision.Version.String(),
			PublishedAt: revision.PublishedAt,
		})
	}
	return nil
}

// InitTypes registers the service method input and output types.
func (s *Service) InitTypes(registry *extension.Types) {
	registry.Register(x.NewType(reflect.TypeOf(PublishInput{}), x.WithName("registry.PublishInput")))
	registry.Register(x.NewType(reflect.TypeOf(PublishOutput{}), x.WithName("registry.PublishOutput")))
	registry.Register(x.NewType(reflect.TypeOf(GetLatestInput{}), x.WithName("registry.GetLatestInput")))
	registry.Register(x.NewType(reflect.TypeOf(GetLatestOutput{}), x.WithName("registry.GetLatestOutput")))
	registry.Register(x.NewType(reflect.TypeOf(DiffEnvInput{}), x.WithName("registry.DiffEnvInput")))
	registry.Register(x.NewType(reflect.TypeOf(DiffEnvOutput{}), x.WithName("registry.DiffEnvOutput")))
	registry.Register(x.NewType(reflect.TypeOf(HistoryInput{}), x.WithName("registry.HistoryInput")))
	registry.Register(x.NewType(reflect.TypeOf(HistoryOutput{}), x.WithName("registry.HistoryOutput")))
}

// New creates a registry action service
func New(registry *registry.Service) *Service {
	return &Service{registry: registry}
}

var _ types.Service = (*Service)(nil)
var _ extension.DataTypeIniter = (*Service)(nil)
