// Package main provides the eggdoc CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure, rootOptions
//   - Concurrency Model: Single-threaded CLI execution; SIGINT cancels a running doxygen
//   - Error Semantics: Exit code 1 and a user-friendly message on any error
//   - Performance Notes: Fast startup, settings are read once per invocation
//
// Usage:
//
//	eggdoc [command] [flags]
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"go.eggybyte.com/eggdoc/cli/internal/configschema"
	"go.eggybyte.com/eggdoc/cli/internal/ui"
	"go.eggybyte.com/eggdoc/cli/internal/version"
)

// rootOptions holds the global flags shared by every command.
type rootOptions struct {
	projectFile  string
	baseDir      string
	outputDir    string
	executable   string
	configFile   string
	toolchainDir string
	sets         []string
	skip         bool
	failOnError  bool
	metricsFile  string
	logFormat    string
	verbose      bool
	jsonOutput   bool
}

// newRootCmd builds the command tree.
//
// Parameters:
//   - None
//
// Returns:
//   - *cobra.Command: Root command with all subcommands attached
//
// Concurrency:
//   - Each call returns an independent tree
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "eggdoc",
		Short: "Generate doxygen documentation for a project",
		Long: `eggdoc generates a doxygen configuration file from typed options and runs doxygen with it.

Settings are read, in increasing precedence, from eggdoc.yaml, DOXYGEN_* environment
variables and command line flags. Doxygen options go under "options:" in eggdoc.yaml,
in DOXYGEN_OPTIONS_<KEY> variables, or in --set KEY=VALUE flags.`,
		Version:       version.GetVersionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetVerbose(opts.verbose)
			ui.SetJSONOutput(opts.jsonOutput)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.projectFile, "project", "f", configschema.DefaultProjectFile, "Project settings file")
	flags.StringVar(&opts.baseDir, "basedir", ".", "Project base directory; doxygen runs here")
	flags.StringVar(&opts.outputDir, "output-dir", configschema.DefaultOutputDir, "Report output directory")
	flags.StringVar(&opts.executable, "executable", "doxygen", "Doxygen program name or path")
	flags.StringVar(&opts.configFile, "config-file", "", "Explicit configuration file, reused when it exists")
	flags.StringVar(&opts.toolchainDir, "toolchain-dir", "", "Directory searched for the executable before PATH")
	flags.StringArrayVar(&opts.sets, "set", nil, "Override a doxygen option (KEY=VALUE, repeatable)")
	flags.BoolVar(&opts.skip, "skip", false, "Skip documentation generation")
	flags.BoolVar(&opts.failOnError, "fail-on-error", false, "Exit non-zero when doxygen fails")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write run metrics to this Prometheus textfile")
	flags.StringVar(&opts.logFormat, "log-format", "logfmt", "Log format (logfmt or json)")
	flags.BoolVarP(&opts.verbose, "verbose", "V", false, "Enable verbose output")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		newRunCmd(opts),
		newGenerateCmd(opts),
		newOptionsCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with args and returns the process exit code.
//
// Parameters:
//   - ctx: Context cancelled on interrupt
//   - args: Command line arguments without the program name
//
// Returns:
//   - int: 0 on success, 1 on any error
func Execute(ctx context.Context, args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		ui.Error("Command failed: %v", err)
		return 1
	}
	return 0
}

// main is the entry point for the eggdoc CLI tool.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
