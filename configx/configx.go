// Package configx provides layered configuration loading and struct binding.
//
// Overview:
//   - Responsibility: Merge configuration from file, environment and flag sources
//   - Key Types: Source interface, Manager interface, Options for configuration
//   - Concurrency Model: Manager is safe for concurrent use, sources must be thread-safe
//   - Error Semantics: Functions return errors for load, parse and binding failures
//   - Performance Notes: Sources are read once; Snapshot and Value never touch I/O
//
// Usage:
//
//	manager, err := configx.NewManager(ctx, configx.Options{
//	  Logger: logger,
//	  Sources: configx.LayeredSources(configx.LayerOptions{
//	    File:      "eggdoc.yaml",
//	    EnvPrefix: "DOXYGEN_",
//	  }),
//	})
//	var settings Settings
//	err = manager.Bind(&settings)
package configx

import (
	"context"
	"fmt"

	"go.eggybyte.com/eggdoc/configx/internal"
	"go.eggybyte.com/eggdoc/core/log"
)

// Source describes a configuration source that produces a flat key/value snapshot.
// Implementations must be thread-safe and honor context cancellation.
type Source interface {
	// Load reads the current configuration snapshot for merging.
	Load(ctx context.Context) (map[string]string, error)
}

// Manager manages multiple configuration sources and provides unified access.
// The manager merges configurations with later sources taking precedence.
type Manager interface {
	// Snapshot returns a copy of the current merged configuration.
	Snapshot() map[string]string

	// Value returns the value for a key and whether it exists.
	Value(key string) (string, bool)

	// Prefixed returns the entries under prefix with the prefix stripped.
	Prefixed(prefix string) map[string]string

	// Bind decodes the configuration into a struct with env tags and default values.
	Bind(target any) error

	// Reload re-reads all sources.
	Reload(ctx context.Context) error
}

// Options holds configuration for the manager.
type Options struct {
	Logger  log.Logger // Logger for configuration operations
	Sources []Source   // Configuration sources (later sources override earlier ones)
}

// manager wraps the internal manager implementation.
type manager struct {
	impl *internal.ManagerImpl
}

// NewManager creates a configuration manager and performs the initial load.
//
// Parameters:
//   - ctx: context for the initial load
//   - opts: manager configuration options
//
// Returns:
//   - Manager: initialized manager instance
//   - error: validation or source load error
//
// Concurrency:
//   - Safe to call from multiple goroutines
func NewManager(ctx context.Context, opts Options) (Manager, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	if len(opts.Sources) == 0 {
		return nil, fmt.Errorf("at least one source is required")
	}

	internalSources := make([]internal.Source, len(opts.Sources))
	for i, src := range opts.Sources {
		internalSources[i] = src
	}

	impl, err := internal.NewManager(opts.Logger, internalSources)
	if err != nil {
		return nil, err
	}

	if err := impl.Initialize(ctx); err != nil {
		return nil, err
	}

	return &manager{impl: impl}, nil
}

// Snapshot returns a copy of the current configuration.
func (m *manager) Snapshot() map[string]string {
	return m.impl.Snapshot()
}

// Value returns the value for a key and whether it exists.
func (m *manager) Value(key string) (string, bool) {
	return m.impl.Value(key)
}

// Prefixed returns the entries under prefix with the prefix stripped.
func (m *manager) Prefixed(prefix string) map[string]string {
	return m.impl.Prefixed(prefix)
}

// Bind decodes the configuration into a struct.
func (m *manager) Bind(target any) error {
	return m.impl.Bind(target)
}

// Reload re-reads all sources.
func (m *manager) Reload(ctx context.Context) error {
	return m.impl.Reload(ctx)
}

// --- Public wrappers for source constructors (delegating to internal) ---

// NewEnvSource creates an environment variable configuration source.
func NewEnvSource(opts EnvOptions) Source {
	return internal.NewEnvSource(internal.EnvOptions{
		Prefix:    opts.Prefix,
		Lowercase: opts.Lowercase,
		Uppercase: opts.Uppercase,
	})
}

// NewFileSource creates a YAML or JSON file configuration source.
func NewFileSource(path string, opts FileOptions) Source {
	return internal.NewFileSource(path, internal.FileOptions{
		Format:   opts.Format,
		Required: opts.Required,
	})
}

// NewMapSource creates a source over a fixed set of values.
func NewMapSource(values map[string]string) Source {
	return internal.NewMapSource(values)
}

// LayeredSources returns the file, environment and override layers in precedence order.
func LayeredSources(opts LayerOptions) []Source {
	internalSources := internal.BuildLayeredSources(internal.LayerOptions{
		File:         opts.File,
		FileRequired: opts.FileRequired,
		EnvPrefix:    opts.EnvPrefix,
		Overrides:    opts.Overrides,
	})
	sources := make([]Source, len(internalSources))
	for i, s := range internalSources {
		sources[i] = s
	}
	return sources
}

// NormalizeKey maps a user-facing key (e.g. "output-dir") to its snapshot form ("OUTPUT_DIR").
func NormalizeKey(k string) string {
	return internal.NormalizeKey(k)
}

// EnvOptions configures environment variable source behavior.
type EnvOptions struct {
	Prefix    string
	Lowercase bool
	Uppercase bool
}

// FileOptions configures file source behavior.
type FileOptions struct {
	Format   string // "yaml" or "json"; detected from the extension when empty
	Required bool   // Fail when the file does not exist
}

// LayerOptions selects the layers combined by LayeredSources.
type LayerOptions struct {
	File         string
	FileRequired bool
	EnvPrefix    string
	Overrides    map[string]string
}
