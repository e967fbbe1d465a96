// Package version provides version information for the eggdoc CLI tool.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Set at link time, read-only afterwards
//   - Error Semantics: No errors
//   - Performance Notes: Plain string formatting
//
// Usage:
//
//	go build -ldflags "-X go.eggybyte.com/eggdoc/cli/internal/version.Version=v0.2.0" ./cli/cmd/eggdoc
//	version.GetVersionString()
package version

import (
	"fmt"
	"runtime"

	"go.eggybyte.com/eggdoc/doxygenx"
)

// Version is the CLI version. Overridden with -ldflags at release time.
var Version = "v0.1.0-dev"

// Commit is the git commit hash. Overridden with -ldflags at release time.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format. Overridden with -ldflags at release time.
var BuildTime = "unknown"

// GetVersionString returns the version line, e.g.
// eggdoc version v0.1.0 (commit 4a9b2c1, built 2026-10-01T12:10:00Z)
func GetVersionString() string {
	return fmt.Sprintf("eggdoc version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns the version line plus the option catalog size
// and the Go runtime.
func GetFullVersionInfo() string {
	return fmt.Sprintf(`%s
doxygen option catalog: %d options
go version %s (%s/%s)`,
		GetVersionString(),
		len(doxygenx.Keys()),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
