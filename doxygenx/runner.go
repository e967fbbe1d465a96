package doxygenx

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/log"
	"go.eggybyte.com/eggdoc/doxygenx/internal/toolrunner"
)

// DefaultExecutable is the program name used when none is configured.
const DefaultExecutable = "doxygen"

// linePrefix is prepended to every relayed output line.
const linePrefix = "doxygen: "

// Runner starts doxygen with a configuration file and relays its output.
type Runner struct {
	executable string
	toolchain  Toolchain
	logger     log.Logger
	quiet      bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithToolchain sets the toolchain consulted when the executable is not an existing file.
func WithToolchain(tc Toolchain) RunnerOption {
	return func(r *Runner) {
		r.toolchain = tc
	}
}

// WithLogger sets the logger output lines are relayed to.
func WithLogger(logger log.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithQuiet disables relaying of output lines.
func WithQuiet(quiet bool) RunnerOption {
	return func(r *Runner) {
		r.quiet = quiet
	}
}

// NewRunner returns a runner for executable, a program name or path.
// An empty executable means DefaultExecutable.
func NewRunner(executable string, opts ...RunnerOption) *Runner {
	if executable == "" {
		executable = DefaultExecutable
	}
	r := &Runner{
		executable: executable,
		logger:     log.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Result describes one finished doxygen run.
type Result struct {
	Executable string        // Program that was started
	ConfigPath string        // Absolute configuration file argument
	ExitCode   int           // Process exit code, -1 if unknown
	Lines      []string      // Output lines, stdout and stderr interleaved
	Duration   time.Duration // Wall time of the run
}

// ResolveExecutable decides which program to start.
// An executable naming an existing file is used directly as an absolute
// path. Otherwise the toolchain is asked; if it finds nothing the bare name
// is returned for the OS search at launch. It never fails.
func (r *Runner) ResolveExecutable() string {
	if info, err := os.Stat(r.executable); err == nil && !info.IsDir() {
		abs, err := filepath.Abs(r.executable)
		if err != nil {
			abs = r.executable
		}
		r.logger.Debug("toolchains are ignored, executable parameter is set", log.Str("executable", abs))
		return abs
	}

	if r.toolchain != nil {
		if path, ok := r.toolchain.FindTool(r.executable); ok {
			r.logger.Debug("executable found by toolchain", log.Str("executable", path))
			return path
		}
		r.logger.Debug("toolchain has no executable, using search path", log.Str("executable", r.executable))
	}
	return r.executable
}

// Execute runs the executable with configPath as its only argument in
// workDir, blocks until it exits and relays every output line to the logger
// at info level prefixed with "doxygen: ", unless quiet.
//
// A program that cannot be started yields a CodeLaunch error carrying the
// OS cause. A non-zero exit yields a CodeGeneration error whose details
// hold the exit code; output is relayed before the error is returned.
// The returned Result is non-nil whenever the program was started.
func (r *Runner) Execute(ctx context.Context, configPath, workDir string) (*Result, error) {
	const op = "doxygenx.Execute"

	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		absConfig = configPath
	}
	exe := r.ResolveExecutable()

	r.logger.Debug("starting doxygen",
		log.Str("executable", exe),
		log.Str("config", absConfig),
		log.Str("dir", workDir),
	)

	res, runErr := toolrunner.NewRunner(workDir).Exec(ctx, exe, absConfig)

	var launchErr *toolrunner.LaunchError
	if stderrors.As(runErr, &launchErr) {
		return nil, errors.Build(errors.CodeLaunch).
			WithOp(op).
			WithErr(launchErr.Err).
			WithMsgf("error while executing %s", exe).
			WithDetails("executable", exe).
			Err()
	}

	result := &Result{
		Executable: exe,
		ConfigPath: absConfig,
		ExitCode:   res.ExitCode,
		Lines:      SplitLines(res.Output),
		Duration:   res.Duration,
	}

	if !r.quiet {
		for _, line := range result.Lines {
			r.logger.Info(linePrefix + line)
		}
	}

	if runErr != nil {
		var exitErr *toolrunner.ExitError
		cause := runErr
		if stderrors.As(runErr, &exitErr) {
			cause = exitErr.Err
		}
		return result, errors.Build(errors.CodeGeneration).
			WithOp(op).
			WithErr(cause).
			WithMsg("documentation generation failed").
			WithDetails("exit_code", result.ExitCode, "executable", exe).
			Err()
	}

	r.logger.Debug("doxygen finished", log.Int("exit_code", result.ExitCode), log.Dur("duration", result.Duration))
	return result, nil
}

// SplitLines splits captured output on '\n' and strips line terminators.
// Trailing empty lines are dropped, so empty output has no lines.
func SplitLines(output string) []string {
	parts := strings.Split(output, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimRight(p, "\r\n")
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
