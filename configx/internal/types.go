// Package internal provides internal implementation details for configx.
package internal

import "context"

// Source describes a configuration source that produces a flat key/value snapshot.
// Implementations must be thread-safe and honor context cancellation.
type Source interface {
	// Load reads the current configuration snapshot for merging.
	// Returns a map of key-value pairs; a nil map contributes nothing.
	Load(ctx context.Context) (map[string]string, error)
}
