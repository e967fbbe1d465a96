package main

import (
	"time"

	"github.com/spf13/cobra"

	"go.eggybyte.com/eggdoc/cli/internal/metrics"
	"go.eggybyte.com/eggdoc/cli/internal/ui"
	"go.eggybyte.com/eggdoc/doxygenx"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Generate the configuration file and run doxygen",
		Long: `Generate the doxygen configuration file (or reuse --config-file when it exists),
run doxygen with it in the base directory and relay its output to the log.

A failing doxygen run is logged and reported; the command exits non-zero only
with --fail-on-error.

Example:
  eggdoc run --set PROJECT_NAME=eggdoc --set TAB_SIZE=4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}
}

// runRun executes the run command.
//
// Parameters:
//   - cmd: Cobra command
//   - opts: Global flags
//
// Returns:
//   - error: Settings, option or (with fail-on-error) generation error
//
// Concurrency:
//   - Single-threaded; blocks until doxygen exits
func runRun(cmd *cobra.Command, opts *rootOptions) error {
	project, err := opts.loadProject(cmd)
	if err != nil {
		return err
	}
	values, err := project.Values()
	if err != nil {
		return err
	}

	ctx, logger := runContext(cmd.Context(), project.Settings, "run", newLogger(project.Settings, cmd.ErrOrStderr()))

	report := doxygenx.NewReport(project.ReportSettings(), values, logger)
	report.Toolchain = project.Toolchain()

	rec := metrics.NewRecorder()
	rec.SetOverrides(values.Len())

	start := time.Now()
	outcome, runErr := report.Execute(ctx)
	elapsed := time.Since(start)

	result := metrics.ResultSkipped
	if !outcome.Skipped {
		result = metrics.ResultOf(outcome.Err)
	}
	rec.Observe(result, elapsed)
	if outcome.Result != nil {
		rec.SetOutputLines(len(outcome.Result.Lines))
	}
	if path := project.Settings.MetricsFile; path != "" {
		if err := rec.WriteTextfile(path); err != nil {
			ui.Warning("Failed to write metrics: %v", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	switch {
	case outcome.Skipped:
		ui.Warning("Documentation generation skipped")
	case outcome.Err != nil:
		ui.Warning("Documentation generation failed: %v", outcome.Err)
	default:
		ui.Result(map[string]any{
			"config":   outcome.ConfigPath,
			"reused":   outcome.Reused,
			"duration": elapsed.String(),
		}, "Documentation generated with %s in %s", outcome.ConfigPath, elapsed.Round(time.Millisecond))
	}
	return nil
}
