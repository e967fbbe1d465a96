// Package internal provides internal implementation details for configx.
//
// Overview:
//   - Responsibility: Assemble the standard layered source list
//   - Key Types: LayerOptions
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: No errors; sources report failures on Load
//   - Performance Notes: Sources are constructed lazily and read once
//
// Usage:
//
//	sources := configx.LayeredSources(configx.LayerOptions{
//	  File:      "eggdoc.yaml",
//	  EnvPrefix: "DOXYGEN_",
//	  Overrides: flagValues,
//	})
package internal

// LayerOptions selects the layers combined by BuildLayeredSources.
type LayerOptions struct {
	File         string            // Project file path (empty: no file layer)
	FileRequired bool              // Fail when File does not exist
	EnvPrefix    string            // Environment prefix (empty: no env layer)
	Overrides    map[string]string // Highest-precedence values, e.g. from flags
}

// BuildLayeredSources returns sources ordered file, environment, overrides,
// so that flags win over environment and environment wins over the file.
func BuildLayeredSources(opts LayerOptions) []Source {
	var sources []Source

	if opts.File != "" {
		sources = append(sources, NewFileSource(opts.File, FileOptions{Required: opts.FileRequired}))
	}

	if opts.EnvPrefix != "" {
		sources = append(sources, NewEnvSource(EnvOptions{Prefix: opts.EnvPrefix, Uppercase: true}))
	}

	if len(opts.Overrides) > 0 {
		sources = append(sources, NewMapSource(opts.Overrides))
	}

	return sources
}
