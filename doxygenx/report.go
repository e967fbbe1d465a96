package doxygenx

import (
	"context"
	"os"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/log"
)

// Report identity as shown by report sites.
const (
	ReportName        = "Doxygen"
	ReportDescription = "Doxygen Report"
	ReportCategory    = "Project Reports"
	ReportOutputName  = "doxygen/index"
)

// Settings are the non-option parameters of a report run.
type Settings struct {
	BaseDir     string // Project directory; doxygen runs here
	OutputDir   string // Report output directory, relative to BaseDir unless absolute
	ConfigFile  string // Explicit configuration file; reused when it exists
	Executable  string // Program name or path, DefaultExecutable when empty
	Skip        bool   // Do nothing
	FailOnError bool   // Return failures from Execute instead of logging them
}

// Outcome describes what a report run did.
type Outcome struct {
	Skipped    bool
	ConfigPath string
	Reused     bool
	Result     *Result
	Err        error
}

// Report ties the option values, the emitter and the runner into one
// documentation generation step.
type Report struct {
	Settings  Settings
	Values    *Values
	Toolchain Toolchain
	Logger    log.Logger
}

// NewReport returns a report with the given settings and option values.
// A nil values set means every option at its default.
func NewReport(settings Settings, values *Values, logger log.Logger) *Report {
	if values == nil {
		values = NewValues()
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Report{Settings: settings, Values: values, Logger: logger}
}

// Name returns the report name.
func (r *Report) Name() string { return ReportName }

// Description returns the report description.
func (r *Report) Description() string { return ReportDescription }

// Category returns the report category.
func (r *Report) Category() string { return ReportCategory }

// OutputName returns the report entry page without extension.
func (r *Report) OutputName() string { return ReportOutputName }

// IsExternalReport reports that doxygen writes its own pages.
func (r *Report) IsExternalReport() bool { return true }

// CanGenerateReport always reports true.
func (r *Report) CanGenerateReport() bool { return true }

func (r *Report) logger() log.Logger {
	if r.Logger == nil {
		return log.Nop()
	}
	return r.Logger
}

// Generator returns the emitter for the report settings.
func (r *Report) Generator() *Generator {
	return NewGenerator(r.Settings.BaseDir, r.Settings.OutputDir, r.Values, r.logger())
}

// Generate creates the output directory, locates or builds the configuration
// file and runs doxygen with it. Output is relayed unless the QUIET option
// resolves to YES. Failures are returned as they occur.
func (r *Report) Generate(ctx context.Context) (*Outcome, error) {
	logger := r.logger()
	gen := r.Generator()

	outDir, err := gen.OutputDirectory()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Build(errors.CodeConfigBuild).
			WithOp("doxygenx.Generate").
			WithErr(err).
			WithMsgf("create output directory %s", outDir).
			WithDetails("path", outDir).
			Err()
	}

	path, reused, err := gen.LocateOrBuild(r.Settings.ConfigFile)
	if err != nil {
		return nil, err
	}
	out := &Outcome{ConfigPath: path, Reused: reused}

	runner := NewRunner(r.Settings.Executable,
		WithToolchain(r.Toolchain),
		WithLogger(logger),
		WithQuiet(r.Values.Bool("QUIET")),
	)
	out.Result, err = runner.Execute(ctx, path, r.Settings.BaseDir)
	if err != nil {
		out.Err = err
		return out, err
	}
	return out, nil
}

// Execute is the goal entry point. It honors Skip, runs Generate and logs
// any failure. The failure is returned only when FailOnError is set; it is
// always recorded in the outcome.
func (r *Report) Execute(ctx context.Context) (*Outcome, error) {
	logger := r.logger()
	if r.Settings.Skip {
		logger.Info("Skipping doxygen generation")
		return &Outcome{Skipped: true}, nil
	}

	out, err := r.Generate(ctx)
	if err == nil {
		return out, nil
	}
	if out == nil {
		out = &Outcome{}
	}
	out.Err = err
	logger.Error(err, "An error has occurred in Doxygen report generation", errors.Fields(err)...)
	if r.Settings.FailOnError {
		return out, err
	}
	return out, nil
}
