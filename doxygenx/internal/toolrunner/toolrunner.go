// Package toolrunner provides execution of external tools with captured output.
//
// Overview:
//   - Responsibility: Start one external program, wait for it, capture its output
//   - Key Types: Runner, CommandResult, LaunchError, ExitError
//   - Concurrency Model: Sequential command execution with context support
//   - Error Semantics: LaunchError when the program cannot start, ExitError on non-zero exit
//   - Performance Notes: Output is fully buffered in memory
//
// Usage:
//
//	runner := toolrunner.NewRunner("/path/to/project")
//	result, err := runner.Exec(ctx, "doxygen", "/path/to/doxygen.config")
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Runner executes external tools in a fixed working directory.
//
// Parameters:
//   - workDir: Working directory for commands
//
// Returns:
//   - None (data structure)
//
// Concurrency:
//   - Safe for concurrent use; each Exec owns its process
//
// Performance:
//   - Minimal state
type Runner struct {
	workDir string
	env     []string
}

// CommandResult represents the result of a command execution.
//
// Parameters:
//   - Command: Program and arguments as started
//   - ExitCode: Process exit code (-1 if the process never exited normally)
//   - Output: Standard output and standard error interleaved in arrival order
//   - Duration: Command execution time
//
// Concurrency:
//   - Immutable after creation
//
// Performance:
//   - Captures output in memory
type CommandResult struct {
	Command  []string
	ExitCode int
	Output   string
	Duration time.Duration
}

// LaunchError reports a program that could not be started.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitError reports a program that ran but did not exit with status 0.
type ExitError struct {
	Name     string
	ExitCode int
	Err      error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Name, e.ExitCode)
}

func (e *ExitError) Unwrap() error { return e.Err }

// NewRunner creates a new tool runner.
//
// Parameters:
//   - workDir: Working directory for commands (empty: current directory)
//
// Returns:
//   - *Runner: Tool runner instance
func NewRunner(workDir string) *Runner {
	return &Runner{workDir: workDir}
}

// WithEnv returns a copy of the runner that adds env ("K=V") to the inherited environment.
func (r *Runner) WithEnv(env ...string) *Runner {
	return &Runner{
		workDir: r.workDir,
		env:     append(append([]string{}, r.env...), env...),
	}
}

// WorkDir returns the working directory commands run in.
func (r *Runner) WorkDir() string {
	return r.workDir
}

// Exec runs a command, blocks until it exits and returns its combined output.
//
// Parameters:
//   - ctx: Context for cancellation; a cancelled context kills the process
//   - name: Program name or path
//   - args: Program arguments
//
// Returns:
//   - *CommandResult: Always non-nil; carries whatever output was captured
//   - error: *LaunchError, *ExitError, or the context error wrapped in *ExitError
//
// Concurrency:
//   - Single-threaded per command
//
// Performance:
//   - One buffer shared by stdout and stderr
func (r *Runner) Exec(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.workDir
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	// The same writer for both streams keeps their relative order.
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	result := &CommandResult{
		Command:  append([]string{name}, args...),
		ExitCode: -1,
	}

	if err := cmd.Start(); err != nil {
		result.Duration = time.Since(start)
		return result, &LaunchError{Name: name, Err: err}
	}

	err := cmd.Wait()
	result.Duration = time.Since(start)
	result.Output = output.String()
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return result, &ExitError{Name: name, ExitCode: result.ExitCode, Err: err}
	}

	return result, nil
}

// String renders the command line for logs.
func (c *CommandResult) String() string {
	return strings.Join(c.Command, " ")
}

// LookPath resolves a tool name in the OS search path.
//
// Parameters:
//   - toolName: Name of the tool to find
//
// Returns:
//   - string: Absolute path when found
//   - bool: True if the tool is available
func LookPath(toolName string) (string, bool) {
	path, err := exec.LookPath(toolName)
	if err != nil {
		return "", false
	}
	return path, true
}
