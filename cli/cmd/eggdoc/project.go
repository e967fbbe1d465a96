package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.eggybyte.com/eggdoc/cli/internal/configschema"
	"go.eggybyte.com/eggdoc/core/identity"
	"go.eggybyte.com/eggdoc/core/log"
	"go.eggybyte.com/eggdoc/logx"
)

// flagKeys maps global flags to the settings keys they override.
var flagKeys = map[string]string{
	"basedir":       "BASEDIR",
	"output-dir":    "OUTPUT_DIR",
	"executable":    "EXECUTABLE",
	"config-file":   "CONFIG_FILE",
	"toolchain-dir": "TOOLCHAIN_DIR",
	"skip":          "SKIP",
	"fail-on-error": "FAIL_ON_ERROR",
	"metrics-file":  "METRICS_FILE",
	"log-format":    "LOG_FORMAT",
}

// flagOverrides returns the settings set explicitly on the command line.
// Flags left at their default do not shadow the project file or environment.
func (o *rootOptions) flagOverrides(cmd *cobra.Command) (map[string]string, error) {
	values := map[string]string{
		"BASEDIR":       o.baseDir,
		"OUTPUT_DIR":    o.outputDir,
		"EXECUTABLE":    o.executable,
		"CONFIG_FILE":   o.configFile,
		"TOOLCHAIN_DIR": o.toolchainDir,
		"SKIP":          strconv.FormatBool(o.skip),
		"FAIL_ON_ERROR": strconv.FormatBool(o.failOnError),
		"METRICS_FILE":  o.metricsFile,
		"LOG_FORMAT":    o.logFormat,
	}

	out, err := configschema.ParseAssignments(o.sets)
	if err != nil {
		return nil, err
	}
	for flag, key := range flagKeys {
		if cmd.Flags().Changed(flag) {
			out[key] = values[key]
		}
	}
	if o.verbose {
		out["LOG_LEVEL"] = "debug"
	}
	return out, nil
}

// loadProject reads the project settings for cmd.
func (o *rootOptions) loadProject(cmd *cobra.Command) (*configschema.Project, error) {
	flags, err := o.flagOverrides(cmd)
	if err != nil {
		return nil, err
	}
	return configschema.Load(cmd.Context(), configschema.LoadOptions{
		File:         o.projectFile,
		FileRequired: cmd.Flags().Changed("project"),
		EnvPrefix:    configschema.DefaultEnvPrefix,
		Flags:        flags,
	})
}

// newLogger builds the build-log logger for settings.
// Levels are colored when w is a terminal and the format is logfmt.
func newLogger(s configschema.Settings, w io.Writer) log.Logger {
	format := logx.Format(s.LogFormat)
	return logx.New(
		logx.WithFormat(format),
		logx.WithLevelName(s.LogLevel),
		logx.WithWriter(w),
		logx.WithColor(format == logx.FormatLogfmt && isTerminal(w)),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runContext attaches run metadata for goal to ctx and returns the matching logger.
func runContext(ctx context.Context, s configschema.Settings, goal string, base log.Logger) (context.Context, log.Logger) {
	project := s.BaseDir
	if abs, err := filepath.Abs(s.BaseDir); err == nil {
		project = filepath.Base(abs)
	}
	ctx = identity.WithRun(ctx, &identity.RunMeta{
		RunID:   identity.NewRunID(),
		Project: project,
		Goal:    goal,
	})
	return ctx, logx.FromContext(ctx, base)
}
