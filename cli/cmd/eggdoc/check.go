package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/eggdoc/cli/internal/configschema"
	"go.eggybyte.com/eggdoc/cli/internal/ui"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check project settings and option overrides",
		Long: `Check project settings and doxygen option overrides for issues.

This command reports:
- Unknown option keys, with the closest valid key
- Option values that do not parse for the option kind
- A missing doxygen executable
- Settings that change what run does (skip, reused configuration file, QUIET)

Example:
  eggdoc check --set TAB_SIZE=4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
}

// runCheck executes the check command.
//
// Parameters:
//   - cmd: Cobra command
//   - opts: Global flags
//
// Returns:
//   - error: Load error, or a summary when error diagnostics were found
//
// Concurrency:
//   - Single-threaded
func runCheck(cmd *cobra.Command, opts *rootOptions) error {
	ui.Info("Checking project settings...")

	project, err := opts.loadProject(cmd)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if project.File != "" {
		ui.Debug("Settings read from %s", project.File)
	}

	diags := configschema.Validate(project)
	displayDiagnostics(diags)

	if diags.HasErrors() {
		return fmt.Errorf("project check failed with %d errors", diags.Count(configschema.SeverityError))
	}

	warnings := diags.Count(configschema.SeverityWarning)
	infos := diags.Count(configschema.SeverityInfo)
	if warnings > 0 || infos > 0 {
		ui.Warning("Project check completed with %d warnings and %d info messages", warnings, infos)
	} else {
		ui.Success("Project check passed! No issues found.")
	}
	return nil
}

// displayDiagnostics prints diagnostics grouped by severity.
func displayDiagnostics(diags *configschema.Diagnostics) {
	if ui.IsJSON() {
		ui.Result(diags.Items(), "%d diagnostics", len(diags.Items()))
		return
	}

	groups := []struct {
		severity configschema.DiagnosticSeverity
		title    string
		header   func(string, ...any)
	}{
		{configschema.SeverityError, "Errors found:", ui.Error},
		{configschema.SeverityWarning, "Warnings found:", ui.Warning},
		{configschema.SeverityInfo, "Info messages:", ui.Info},
	}

	items := diags.Items()
	for _, g := range groups {
		if diags.Count(g.severity) == 0 {
			continue
		}
		ui.Heading("")
		g.header(g.title)
		for _, item := range items {
			if item.Severity != g.severity {
				continue
			}
			ui.Info("  %s: %s", item.Path, item.Message)
			if item.Suggestion != "" {
				ui.Info("    Suggestion: %s", item.Suggestion)
			}
		}
	}
}
