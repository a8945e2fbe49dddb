package loader

import (
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/scy"
)

type Option func(*Service)

// WithFS sets the file service used to download documents.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithBaseURL sets the base URL relative document locations resolve
// against.
func WithBaseURL(baseURL string) Option {
	return func(s *Service) {
		s.baseURL = baseURL
	}
}

// WithFsOptions sets storage options passed to every download, e.g. an
// embedded file system.
func WithFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.fsOptions = options
	}
}

// WithSecrets enables ${secret.<url>} expansion through the supplied scy
// service.
func WithSecrets(secrets *scy.Service) Option {
	return func(s *Service) {
		s.secrets = secrets
	}
}
