// File: store/builder.go
package store

import (
	"errors"
	"fmt"
)

// Builder provides a fluent interface for composing a layered store. Layers
// are combined with Concat, so precedence is fixed and every layer is
// optional (highest to lowest):
//
//  1. Overrides (explicit key/value pairs, e.g. parsed CLI flags)
//  2. Environment variables
//  3. Configuration file
//  4. Defaults
type Builder struct {
	defaults  map[string]string
	overrides map[string]string
	file      string
	envPrefix string
	useEnv    bool
	normalize bool
}

// NewBuilder creates a new store builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithDefaults sets the lowest-precedence layer.
func (b *Builder) WithDefaults(defaults map[string]string) *Builder {
	b.defaults = defaults
	return b
}

// WithOverrides sets the highest-precedence layer.
func (b *Builder) WithOverrides(overrides map[string]string) *Builder {
	b.overrides = overrides
	return b
}

// WithFile sets the configuration file path. A missing file is not fatal;
// Build skips the layer and reports ErrFileNotFound alongside the store.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithEnv enables the environment layer with the given variable prefix.
func (b *Builder) WithEnv(envPrefix string) *Builder {
	b.envPrefix = envPrefix
	b.useEnv = true
	return b
}

// WithNormalize wraps the built store so values are whitespace-trimmed and
// blank values read as absent, letting lower layers show through them.
func (b *Builder) WithNormalize() *Builder {
	b.normalize = true
	return b
}

// Build composes the configured layers into a single read-only store.
// At least one layer must be configured. The returned error is
// ErrFileNotFound when a configured file is missing; the store is still
// usable in that case.
func (b *Builder) Build() (*Store, error) {
	var fileLayer *Store
	var buildErr error

	if b.file != "" {
		var err error
		fileLayer, err = File(b.file)
		if err != nil {
			if !errors.Is(err, ErrFileNotFound) {
				return nil, err // Fatal: the file exists but cannot be loaded
			}
			buildErr = err
		}
	}

	var overrideLayer, envLayer, defaultLayer *Store
	if b.overrides != nil {
		overrideLayer = Map(b.overrides)
	}
	if b.useEnv {
		var err error
		envLayer, err = Normalize(Env(b.envPrefix))
		if err != nil {
			return nil, err
		}
	}
	if b.defaults != nil {
		defaultLayer = Map(b.defaults)
	}

	merged := Concat(overrideLayer, envLayer, fileLayer, defaultLayer)
	if merged == nil {
		if buildErr != nil {
			// The only configured layer was a file that is missing; keep
			// the ErrFileNotFound identity for the caller.
			return nil, fmt.Errorf("no configuration sources available: %w", buildErr)
		}
		return nil, fmt.Errorf("no configuration sources specified")
	}

	if b.normalize {
		var err error
		merged, err = Normalize(merged)
		if err != nil {
			return nil, err
		}
	}

	// A single surviving mutable layer still reads as immutable config.
	merged = merged.Immutable()

	return merged, buildErr
}

// MustBuild is like Build but panics on error. A missing configuration file
// is not fatal as long as another layer remains; the application proceeds
// without the file layer.
func (b *Builder) MustBuild() *Store {
	s, err := b.Build()
	if err != nil && !errors.Is(err, ErrFileNotFound) {
		panic(fmt.Sprintf("store build failed: %v", err))
	}
	if s == nil {
		panic(fmt.Sprintf("store build failed: %v", err))
	}
	return s
}

// Quick composes defaults, an optional config file, and environment
// overrides in a single call. This is the recommended entry point for most
// applications.
func Quick(defaults map[string]string, envPrefix, configFile string) (*Store, error) {
	b := NewBuilder().WithDefaults(defaults)
	if envPrefix != "" {
		b = b.WithEnv(envPrefix)
	}
	if configFile != "" {
		b = b.WithFile(configFile)
	}
	return b.Build()
}
