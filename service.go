package flowenv

import (
	"context"

	"github.com/viant/x"

	"github.com/flowenv/flowenv/extension"
	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/model/types"
	"github.com/flowenv/flowenv/registry"
	aregistry "github.com/flowenv/flowenv/service/action/registry"
	"github.com/flowenv/flowenv/service/dao"
	"github.com/flowenv/flowenv/service/event"
	"github.com/flowenv/flowenv/service/executor"
	"github.com/flowenv/flowenv/service/loader"
	"github.com/flowenv/flowenv/service/messaging"
	mmemory "github.com/flowenv/flowenv/service/messaging/memory"
	"github.com/flowenv/flowenv/tracing"
)

// Service is the embedding façade over the configuration registry: it wires
// the registry, the document loader, the action executor and the publish
// notification queue behind a single constructor.
type Service struct {
	config            *Config
	registry          *registry.Service
	loader            *loader.Service
	loaderOptions     []loader.Option
	actions           *extension.Actions
	executor          executor.Service
	executorOptions   []executor.Option
	extensionTypes    []*x.Type
	extensionServices []types.Service
	workflowDAO       dao.Service[string, model.Workflow]
	queue             messaging.Queue[event.Event[model.EnvConfig]]
	events            *event.Publisher[model.EnvConfig]
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.actions = extension.NewActions(s.extensionTypes...)
	s.executor = executor.New(s.actions, s.executorOptions...)
	s.actions.Register(aregistry.New(s.registry))
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.registry == nil {
		var opts []registry.Option
		if s.workflowDAO != nil {
			opts = append(opts, registry.WithWorkflowDAO(s.workflowDAO))
		}
		s.registry = registry.New(opts...)
	}
	if s.loader == nil {
		s.loader = loader.New(s.loaderOptions...)
	}
	if s.queue == nil {
		config := mmemory.DefaultConfig()
		config.QueueBuffer = s.config.Events.QueueBuffer
		config.MaxRetries = s.config.Events.MaxRetries
		s.queue = mmemory.NewQueue[event.Event[model.EnvConfig]](config)
	}
	s.events = event.NewPublisher[model.EnvConfig](s.queue)
}

// Publish records a new revision of the named workflow and, on success,
// emits a publish notification onto the event queue.
func (s *Service) Publish(ctx context.Context, name, version string, config model.EnvConfig) error {
	ctx, span := tracing.StartSpan(ctx, "registry.publish")
	span.WithAttributes(map[string]string{"workflow": name, "version": version})
	err := s.registry.Publish(ctx, name, version, config)
	if err == nil {
		err = s.events.Publish(ctx, event.NewEvent[model.EnvConfig](&event.Context{
			Workflow:  name,
			Version:   version,
			EventType: event.TypePublished,
		}, config.Clone()))
	}
	tracing.EndSpan(span, err)
	return err
}

// PublishFromURL loads an environment configuration document through the
// loader and publishes it as a new revision.
func (s *Service) PublishFromURL(ctx context.Context, name, version, URL string) error {
	config, err := s.loader.Load(ctx, URL)
	if err != nil {
		return err
	}
	return s.Publish(ctx, name, version, config)
}

// GetLatest returns the latest published snapshot of the named workflow;
// the boolean is false when the workflow has no published revision.
func (s *Service) GetLatest(ctx context.Context, name string) (model.EnvConfig, bool, error) {
	ctx, span := tracing.StartSpan(ctx, "registry.getLatest")
	span.WithAttributes(map[string]string{"workflow": name})
	config, found, err := s.registry.GetLatest(ctx, name)
	tracing.EndSpan(span, err)
	return config, found, err
}

// DiffEnv computes the structural difference between two published
// snapshots of the same workflow.
func (s *Service) DiffEnv(ctx context.Context, name, from, to string) (*model.Diff, error) {
	ctx, span := tracing.StartSpan(ctx, "registry.diffEnv")
	span.WithAttributes(map[string]string{"workflow": name, "from": from, "to": to})
	diff, err := s.registry.DiffEnv(ctx, name, from, to)
	tracing.EndSpan(span, err)
	return diff, err
}

// Registry returns the underlying registry service.
func (s *Service) Registry() *registry.Service {
	return s.registry
}

// Loader returns the document loader.
func (s *Service) Loader() *loader.Service {
	return s.loader
}

// Executor returns the action executor.
func (s *Service) Executor() executor.Service {
	return s.executor
}

// Events returns the publish notification publisher.
func (s *Service) Events() *event.Publisher[model.EnvConfig] {
	return s.events
}

// RegisterExtensionTypes registers additional data types with the action
// type registry.
func (s *Service) RegisterExtensionTypes(types ...*x.Type) {
	for i := range types {
		s.actions.Types().Register(types[i])
	}
}

// RegisterExtensionServices registers additional action services.
func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.actions.Register(services[i])
	}
}

// New creates the registry façade.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}
