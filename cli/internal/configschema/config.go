// Package configschema provides settings loading and validation for eggdoc projects.
//
// Overview:
//   - Responsibility: Load eggdoc.yaml, environment and flag layers, bind
//     settings, collect doxygen option overrides, produce diagnostics
//   - Key Types: Settings, Project, Diagnostics
//   - Concurrency Model: Immutable project after loading
//   - Error Semantics: Load returns structured errors; Validate returns
//     diagnostics with suggestions
//   - Performance Notes: Single pass over every layer
//
// Usage:
//
//	project, err := configschema.Load(ctx, configschema.LoadOptions{File: "eggdoc.yaml"})
//	if err != nil {
//	    return err
//	}
//	if diags := configschema.Validate(project); diags.HasErrors() {
//	    return diags
//	}
package configschema

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.eggybyte.com/eggdoc/configx"
	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/log"
	"go.eggybyte.com/eggdoc/core/utils"
	"go.eggybyte.com/eggdoc/doxygenx"
)

// Layer defaults.
const (
	DefaultProjectFile = "eggdoc.yaml"
	DefaultEnvPrefix   = "DOXYGEN_"
	DefaultOutputDir   = "target/site"

	// OptionsPrefix marks doxygen option overrides in the merged snapshot,
	// e.g. OPTIONS_TAB_SIZE from an "options:" mapping or DOXYGEN_OPTIONS_TAB_SIZE.
	OptionsPrefix = "OPTIONS_"
)

// Settings holds the non-option parameters of an eggdoc run.
//
// Parameters:
//   - BaseDir: Project directory; doxygen runs here
//   - OutputDir: Report output directory, relative to BaseDir unless absolute
//   - ConfigFile: Explicit configuration file, reused when it exists
//   - Executable: Doxygen program name or path
//   - ToolchainDir: Directory searched for the executable before PATH
//   - Skip: Do nothing
//   - FailOnError: Exit non-zero when generation fails
//   - LogLevel, LogFormat: Logger configuration
//   - MetricsFile: Prometheus textfile written after a run
//
// Concurrency:
//   - Immutable after loading
type Settings struct {
	BaseDir      string `env:"BASEDIR" default:"." validate:"required"`
	OutputDir    string `env:"OUTPUT_DIR" default:"target/site" validate:"required"`
	ConfigFile   string `env:"CONFIG_FILE"`
	Executable   string `env:"EXECUTABLE" default:"doxygen" validate:"required"`
	ToolchainDir string `env:"TOOLCHAIN_DIR"`
	Skip         bool   `env:"SKIP" default:"false"`
	FailOnError  bool   `env:"FAIL_ON_ERROR" default:"false"`
	LogLevel     string `env:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat    string `env:"LOG_FORMAT" default:"logfmt" validate:"oneof=logfmt json"`
	MetricsFile  string `env:"METRICS_FILE"`
}

// LoadOptions selects the layers Load reads.
type LoadOptions struct {
	File         string            // Project file (empty: no file layer)
	FileRequired bool              // Fail when File does not exist
	EnvPrefix    string            // Environment prefix (empty: no environment layer)
	Flags        map[string]string // Highest-precedence values keyed like Settings env tags
	Logger       log.Logger
}

// Project is a loaded eggdoc project.
type Project struct {
	Settings  Settings
	Overrides map[string]string // Doxygen option overrides, keyed by option key
	File      string            // Project file the settings were read from, if any
}

// Load reads every layer, binds Settings and validates its tags.
// Later layers win: file, then environment, then flags.
//
// Parameters:
//   - ctx: Context for source loading
//   - opts: Layer selection
//
// Returns:
//   - *Project: Loaded project
//   - error: CodeInvalidArgument for unreadable layers or invalid settings
func Load(ctx context.Context, opts LoadOptions) (*Project, error) {
	const op = "configschema.Load"

	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}

	sources := configx.LayeredSources(configx.LayerOptions{
		File:         opts.File,
		FileRequired: opts.FileRequired,
		EnvPrefix:    opts.EnvPrefix,
		Overrides:    opts.Flags,
	})
	if len(sources) == 0 {
		sources = append(sources, configx.NewMapSource(nil))
	}

	mgr, err := configx.NewManager(ctx, configx.Options{Logger: logger, Sources: sources})
	if err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, op, err)
	}

	var settings Settings
	if err := mgr.Bind(&settings); err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, op, err)
	}
	if err := configx.ValidateStruct(configx.NewValidator(), &settings); err != nil {
		return nil, errors.Wrap(errors.CodeInvalidArgument, op, err)
	}

	project := &Project{
		Settings:  settings,
		Overrides: mgr.Prefixed(OptionsPrefix),
	}
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err == nil {
			project.File = opts.File
		}
	}
	return project, nil
}

// Values converts the overrides into a doxygen value set.
func (p *Project) Values() (*doxygenx.Values, error) {
	values := doxygenx.NewValues()
	if err := values.Apply(p.Overrides); err != nil {
		return nil, err
	}
	return values, nil
}

// ReportSettings returns the doxygen report settings.
func (p *Project) ReportSettings() doxygenx.Settings {
	return doxygenx.Settings{
		BaseDir:     p.Settings.BaseDir,
		OutputDir:   p.Settings.OutputDir,
		ConfigFile:  p.Settings.ConfigFile,
		Executable:  p.Settings.Executable,
		Skip:        p.Settings.Skip,
		FailOnError: p.Settings.FailOnError,
	}
}

// Toolchain returns the lookup chain for the executable:
// the toolchain directory when configured, then PATH.
func (p *Project) Toolchain() doxygenx.Toolchain {
	var chain doxygenx.Toolchains
	if p.Settings.ToolchainDir != "" {
		chain = append(chain, doxygenx.DirToolchain{Dir: p.Settings.ToolchainDir})
	}
	return append(chain, doxygenx.PathToolchain{})
}

// OverrideKeys returns the override keys in sorted order.
func (p *Project) OverrideKeys() []string {
	keys := make([]string, 0, len(p.Overrides))
	for k := range p.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseAssignments parses KEY=VALUE pairs into option overrides keyed with
// OptionsPrefix, ready to be merged into LoadOptions.Flags.
func ParseAssignments(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Build(errors.CodeInvalidArgument).
				WithOp("configschema.ParseAssignments").
				WithMsgf("expected KEY=VALUE, got %q", pair).
				Err()
		}
		out[OptionsPrefix+configx.NormalizeKey(key)] = val
	}
	return out, nil
}

// Diagnostic represents a validation issue.
type Diagnostic struct {
	Severity   DiagnosticSeverity `json:"severity"`
	Message    string             `json:"message"`
	Path       string             `json:"path,omitempty"`
	Suggestion string             `json:"suggestion,omitempty"`
}

// DiagnosticSeverity represents the severity of a diagnostic.
type DiagnosticSeverity string

const (
	SeverityError   DiagnosticSeverity = "error"
	SeverityWarning DiagnosticSeverity = "warning"
	SeverityInfo    DiagnosticSeverity = "info"
)

// Diagnostics represents a collection of validation issues.
type Diagnostics struct {
	items []Diagnostic
}

// NewDiagnostics creates a new diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{items: make([]Diagnostic, 0)}
}

// Add adds a diagnostic to the collection.
//
// Parameters:
//   - severity: Diagnostic severity level
//   - message: Human-readable message
//   - path: Optional setting or option path
//   - suggestion: Optional fix suggestion
func (d *Diagnostics) Add(severity DiagnosticSeverity, message, path, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   severity,
		Message:    message,
		Path:       path,
		Suggestion: suggestion,
	})
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(message, path, suggestion string) {
	d.Add(SeverityError, message, path, suggestion)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(message, path, suggestion string) {
	d.Add(SeverityWarning, message, path, suggestion)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(message, path, suggestion string) {
	d.Add(SeverityInfo, message, path, suggestion)
}

// HasErrors returns true if there are any error-level diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return d.Count(SeverityError) > 0
}

// HasWarnings returns true if there are any warning-level diagnostics.
func (d *Diagnostics) HasWarnings() bool {
	return d.Count(SeverityWarning) > 0
}

// Count returns the number of diagnostics with severity.
func (d *Diagnostics) Count(severity DiagnosticSeverity) int {
	n := 0
	for _, item := range d.items {
		if item.Severity == severity {
			n++
		}
	}
	return n
}

// Items returns all diagnostics.
func (d *Diagnostics) Items() []Diagnostic {
	result := make([]Diagnostic, len(d.items))
	copy(result, d.items)
	return result
}

// Error summarizes the error diagnostics so a collection can be returned as an error.
func (d *Diagnostics) Error() string {
	var msgs []string
	for _, item := range d.items {
		if item.Severity == SeverityError {
			msgs = append(msgs, item.Message)
		}
	}
	return fmt.Sprintf("%d configuration error(s): %s", len(msgs), strings.Join(msgs, "; "))
}

// Validate checks a loaded project and reports problems with suggestions.
//
// Parameters:
//   - p: Loaded project
//
// Returns:
//   - *Diagnostics: Errors for unusable settings and overrides, warnings for
//     likely mistakes, info for behavior worth knowing
//
// Concurrency:
//   - Safe for concurrent use on distinct projects
func Validate(p *Project) *Diagnostics {
	diags := NewDiagnostics()
	s := p.Settings

	if info, err := os.Stat(s.BaseDir); err != nil || !info.IsDir() {
		diags.AddError(fmt.Sprintf("base directory %s does not exist", s.BaseDir), "BASEDIR", "point --basedir at the project root")
	}

	values := validateOverrides(p, diags)

	if s.Skip {
		diags.AddWarning("skip is set; eggdoc run will not generate documentation", "SKIP", "unset DOXYGEN_SKIP or drop --skip")
	}

	if s.ConfigFile != "" {
		path := s.ConfigFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.BaseDir, path)
		}
		if _, err := os.Stat(path); err == nil {
			if len(p.Overrides) > 0 {
				diags.AddWarning(fmt.Sprintf("configuration file %s exists and is reused; %d option override(s) are ignored", path, len(p.Overrides)), "CONFIG_FILE", "remove the file to regenerate it")
			} else {
				diags.AddInfo(fmt.Sprintf("configuration file %s exists and is reused as is", path), "CONFIG_FILE", "")
			}
		}
	}

	exe := doxygenx.NewRunner(s.Executable, doxygenx.WithToolchain(p.Toolchain())).ResolveExecutable()
	if !executableExists(exe) {
		diags.AddWarning(fmt.Sprintf("doxygen executable %q not found", s.Executable), "EXECUTABLE", "install doxygen or set DOXYGEN_EXECUTABLE to its path")
	}

	if values != nil && values.Bool("QUIET") {
		diags.AddInfo("QUIET is YES; doxygen output will not be relayed to the log", OptionsPrefix+"QUIET", "")
	}

	return diags
}

func validateOverrides(p *Project, diags *Diagnostics) *doxygenx.Values {
	values := doxygenx.NewValues()
	valid := true
	for _, key := range p.OverrideKeys() {
		path := OptionsPrefix + key
		if _, ok := doxygenx.Lookup(key); !ok {
			valid = false
			suggestion := "run 'eggdoc options' to list valid keys"
			if hint, found := utils.Closest(key, doxygenx.Keys(), 3); found {
				suggestion = fmt.Sprintf("did you mean %s?", hint)
			}
			diags.AddError(fmt.Sprintf("unknown doxygen option %s", key), path, suggestion)
			continue
		}
		if err := values.Set(key, p.Overrides[key]); err != nil {
			valid = false
			var e *errors.E
			msg := err.Error()
			if errors.As(err, &e) {
				msg = e.Msg
			}
			diags.AddError(msg, path, "")
		}
	}
	if !valid {
		return nil
	}
	return values
}

func executableExists(path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
