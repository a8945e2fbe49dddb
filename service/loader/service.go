// Package loader reads environment configuration documents (YAML or JSON)
// from any URL scheme supported by viant/afs and decodes them into
// registry snapshots.  String values may reference process environment
// variables via ${env.KEY} and encrypted secrets via ${secret.<url>}.
package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/scy"
	"gopkg.in/yaml.v3"

	"github.com/flowenv/flowenv/internal/yml"
	"github.com/flowenv/flowenv/model"
)

// Service loads environment configuration documents for publishing.
type Service struct {
	fs        afs.Service
	baseURL   string
	fsOptions []storage.Option
	secrets   *scy.Service
}

// Load downloads and decodes an environment configuration document at the
// specified URL.  A URL without extension defaults to .yaml; relative URLs
// resolve against the configured base URL.
func (s *Service) Load(ctx context.Context, URL string) (model.EnvConfig, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	location := URL
	if s.baseURL != "" && !strings.Contains(URL, "://") {
		location = url.Join(s.baseURL, URL)
	}
	data, err := s.fs.DownloadWithURL(ctx, location, s.fsOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load env config from %s: %w", location, err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse env config from %s: %w", location, err)
	}
	config, err := s.decode(ctx, (*yml.Node)(&node).Root())
	if err != nil {
		return nil, fmt.Errorf("failed to decode env config from %s: %w", location, err)
	}
	return config, nil
}

func (s *Service) decode(ctx context.Context, root *yml.Node) (model.EnvConfig, error) {
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("env config document should be a mapping")
	}
	config := model.EnvConfig{}
	err := root.Pairs(func(key string, valueNode *yml.Node) error {
		if valueNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("value of %q should be a scalar", key)
		}
		raw := valueNode.Interface()
		if text, ok := raw.(string); ok {
			expanded, err := s.expandValue(ctx, text)
			if err != nil {
				return fmt.Errorf("failed to expand value of %q: %w", key, err)
			}
			config[key] = model.String(expanded)
			return nil
		}
		value, err := model.FromInterface(raw)
		if err != nil {
			return fmt.Errorf("invalid value of %q: %w", key, err)
		}
		config[key] = value
		return nil
	})
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (s *Service) expandValue(ctx context.Context, value string) (string, error) {
	expanded := expandEnvExpr(value)
	return s.expandSecretExpr(ctx, expanded)
}

// New creates a loader service; unless overridden it reads through the
// default afs service with no base URL and no secret expansion.
func New(opts ...Option) *Service {
	ret := &Service{}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}
