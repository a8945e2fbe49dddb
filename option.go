package flowenv

import (
	"github.com/viant/afs/storage"
	"github.com/viant/scy"
	"github.com/viant/x"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/flowenv/flowenv/model"
	"github.com/flowenv/flowenv/model/types"
	"github.com/flowenv/flowenv/service/dao"
	"github.com/flowenv/flowenv/service/event"
	"github.com/flowenv/flowenv/service/executor"
	"github.com/flowenv/flowenv/service/loader"
	"github.com/flowenv/flowenv/service/messaging"
	"github.com/flowenv/flowenv/tracing"
)

// Option customises the service façade.
type Option func(s *Service)

// WithConfig sets the service configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithWorkflowDAO sets the workflow history DAO.
func WithWorkflowDAO(service dao.Service[string, model.Workflow]) Option {
	return func(s *Service) {
		s.workflowDAO = service
	}
}

// WithLoader sets the document loader service.
func WithLoader(service *loader.Service) Option {
	return func(s *Service) {
		s.loader = service
	}
}

// WithLoaderBaseURL sets the base URL relative document locations resolve
// against.
func WithLoaderBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.loaderOptions = append(s.loaderOptions, loader.WithBaseURL(baseURL))
	}
}

// WithLoaderFsOptions sets storage options passed to every document
// download, e.g. an embedded file system.
func WithLoaderFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.loaderOptions = append(s.loaderOptions, loader.WithFsOptions(options...))
	}
}

// WithSecrets enables secret expansion in loaded documents through the
// supplied scy service.
func WithSecrets(secrets *scy.Service) Option {
	return func(s *Service) {
		s.loaderOptions = append(s.loaderOptions, loader.WithSecrets(secrets))
	}
}

// WithQueue sets the publish notification queue.
func WithQueue(queue messaging.Queue[event.Event[model.EnvConfig]]) Option {
	return func(s *Service) {
		s.queue = queue
	}
}

// WithExtensionTypes sets the extension types
func WithExtensionTypes(types ...*x.Type) Option {
	return func(s *Service) {
		s.extensionTypes = types
	}
}

// WithExtensionServices sets the extension services
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) {
		s.extensionServices = services
	}
}

// WithExecutorOptions lets the caller supply additional options passed to
// executor.New (e.g. an execution listener).
func WithExecutorOptions(opts ...executor.Option) Option {
	return func(s *Service) {
		s.executorOptions = append(s.executorOptions, opts...)
	}
}

// WithTracing configures OpenTelemetry tracing for the service. If outputFile is empty the
// stdout exporter is used; otherwise traces are written to the supplied file path. The function is
// safe to call multiple times – the first successful initialisation wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(s *Service) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. This enables
// integrations with exporters other than the built-in stdout exporter, for example OTLP, Jaeger or
// Zipkin. The function is safe to call multiple times – the first successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
	}
}
