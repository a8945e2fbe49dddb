package model

import (
	"fmt"
	"sort"
)

// EnvConfig is the environment configuration snapshot of one revision: a
// mapping from configuration key to scalar value.  Snapshots are created
// once at publish time and never mutated afterwards; Clone guards the
// boundary between caller-owned maps and registry-owned ones.
type EnvConfig map[string]Value

// NewEnvConfig coerces a map of native Go scalars into an EnvConfig.  Any
// entry of an unsupported type fails the whole conversion.
func NewEnvConfig(values map[string]interface{}) (EnvConfig, error) {
	config := make(EnvConfig, len(values))
	for key, raw := range values {
		value, err := FromInterface(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
		config[key] = value
	}
	return config, nil
}

// Clone returns an independent copy of the configuration.
func (c EnvConfig) Clone() EnvConfig {
	if c == nil {
		return nil
	}
	cloned := make(EnvConfig, len(c))
	for key, value := range c {
		cloned[key] = value
	}
	return cloned
}

// Equal reports whether both configurations hold identical entries.
func (c EnvConfig) Equal(o EnvConfig) bool {
	if len(c) != len(o) {
		return false
	}
	for key, value := range c {
		other, ok := o[key]
		if !ok || !value.Equal(other) {
			return false
		}
	}
	return true
}

// Keys returns the configuration keys in lexical order.
func (c EnvConfig) Keys() []string {
	keys := make([]string, 0, len(c))
	for key := range c {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Interface converts the configuration into a map of native Go scalars.
func (c EnvConfig) Interface() map[string]interface{} {
	out := make(map[string]interface{}, len(c))
	for key, value := range c {
		out[key] = value.Interface()
	}
	return out
}
