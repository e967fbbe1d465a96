// Package identity provides run metadata context management.
//
// Overview:
//   - Responsibility: Store and retrieve the identity of a documentation run from context
//   - Key Types: RunMeta for run metadata
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Functions return boolean to indicate presence of data
//   - Performance Notes: Minimal allocations, context-based storage
//
// Usage:
//
//	ctx := identity.WithRun(ctx, &identity.RunMeta{RunID: identity.NewRunID(), Goal: "run"})
//	meta, ok := identity.RunFrom(ctx)
package identity

import (
	"context"

	"github.com/google/uuid"
)

// RunMeta identifies one invocation of the documentation pipeline.
type RunMeta struct {
	RunID   string // Unique identifier of this run
	Project string // Project name or directory the run documents
	Goal    string // Entry point that started the run (run, generate, ...)
}

type contextKey string

const runKey contextKey = "run"

// WithRun stores run metadata in the context.
func WithRun(ctx context.Context, m *RunMeta) context.Context {
	return context.WithValue(ctx, runKey, m)
}

// RunFrom retrieves run metadata from the context.
func RunFrom(ctx context.Context) (*RunMeta, bool) {
	m, ok := ctx.Value(runKey).(*RunMeta)
	return m, ok && m != nil
}

// NewRunID returns a random UUID for correlating the log lines of one run.
func NewRunID() string {
	return uuid.NewString()
}
