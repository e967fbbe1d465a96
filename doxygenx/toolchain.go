package doxygenx

import (
	"os"
	"path/filepath"
	"runtime"

	"go.eggybyte.com/eggdoc/doxygenx/internal/toolrunner"
)

// Toolchain locates a tool by name. Implementations may find nothing.
type Toolchain interface {
	FindTool(name string) (string, bool)
}

// ToolchainFunc adapts a function to the Toolchain interface.
type ToolchainFunc func(name string) (string, bool)

// FindTool calls f(name).
func (f ToolchainFunc) FindTool(name string) (string, bool) {
	return f(name)
}

// PathToolchain finds tools in the OS search path.
type PathToolchain struct{}

// FindTool looks name up in PATH.
func (PathToolchain) FindTool(name string) (string, bool) {
	return toolrunner.LookPath(name)
}

// DirToolchain finds tools in a single directory, typically a toolchain's bin directory.
type DirToolchain struct {
	Dir string
}

// FindTool reports Dir/name when it is a regular file.
// On Windows the .exe suffix is tried as well.
func (d DirToolchain) FindTool(name string) (string, bool) {
	if d.Dir == "" {
		return "", false
	}
	candidates := []string{filepath.Join(d.Dir, name)}
	if runtime.GOOS == "windows" && filepath.Ext(name) == "" {
		candidates = append(candidates, filepath.Join(d.Dir, name+".exe"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			if abs, err := filepath.Abs(c); err == nil {
				return abs, true
			}
			return c, true
		}
	}
	return "", false
}

// Toolchains tries each toolchain in order and returns the first match.
type Toolchains []Toolchain

// FindTool returns the first toolchain result.
func (ts Toolchains) FindTool(name string) (string, bool) {
	for _, t := range ts {
		if t == nil {
			continue
		}
		if path, ok := t.FindTool(name); ok {
			return path, true
		}
	}
	return "", false
}
