// Package internal provides tests for configx internal implementation.
package internal

import (
	"testing"
	"time"
)

type runnerSettings struct {
	Executable string        `env:"EXECUTABLE" default:"doxygen"`
	Skip       bool          `env:"SKIP" default:"false"`
	Retries    uint8         `env:"RETRIES"`
	Depth      int32         `env:"DEPTH" default:"3"`
	Ratio      float32       `env:"RATIO"`
	Timeout    time.Duration `env:"TIMEOUT" default:"0s"`
	Patterns   []string      `env:"PATTERNS"`
	Output     outputSettings
	internal   string `env:"INTERNAL"`
	Untagged   string
}

type outputSettings struct {
	Dir    string `env:"OUTPUT_DIR" default:"target/doxygen"`
	Config string `env:"CONFIG_FILE"`
}

func TestBindToStruct_Values(t *testing.T) {
	snapshot := map[string]string{
		"EXECUTABLE":  "/opt/doxygen/bin/doxygen",
		"SKIP":        "true",
		"RETRIES":     "2",
		"DEPTH":       "-1",
		"RATIO":       "0.5",
		"TIMEOUT":     "90s",
		"PATTERNS":    "*.h, *.c,,*.cpp",
		"OUTPUT_DIR":  "build/docs",
		"CONFIG_FILE": "Doxyfile",
		"INTERNAL":    "ignored",
		"UNTAGGED":    "ignored",
	}

	var cfg runnerSettings
	if err := BindToStruct(snapshot, &cfg); err != nil {
		t.Fatalf("BindToStruct() error = %v", err)
	}

	if cfg.Executable != "/opt/doxygen/bin/doxygen" {
		t.Errorf("Executable = %q", cfg.Executable)
	}
	if !cfg.Skip {
		t.Error("Skip = false, want true")
	}
	if cfg.Retries != 2 {
		t.Errorf("Retries = %d, want 2", cfg.Retries)
	}
	if cfg.Depth != -1 {
		t.Errorf("Depth = %d, want -1", cfg.Depth)
	}
	if cfg.Ratio != 0.5 {
		t.Errorf("Ratio = %f, want 0.5", cfg.Ratio)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
	if len(cfg.Patterns) != 3 || cfg.Patterns[0] != "*.h" || cfg.Patterns[2] != "*.cpp" {
		t.Errorf("Patterns = %#v", cfg.Patterns)
	}
	if cfg.Output.Dir != "build/docs" || cfg.Output.Config != "Doxyfile" {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.internal != "" || cfg.Untagged != "" {
		t.Error("unexported and untagged fields must not be bound")
	}
}

func TestBindToStruct_Defaults(t *testing.T) {
	var cfg runnerSettings
	if err := BindToStruct(map[string]string{}, &cfg); err != nil {
		t.Fatalf("BindToStruct() error = %v", err)
	}

	if cfg.Executable != "doxygen" {
		t.Errorf("Executable = %q, want default doxygen", cfg.Executable)
	}
	if cfg.Depth != 3 {
		t.Errorf("Depth = %d, want default 3", cfg.Depth)
	}
	if cfg.Output.Dir != "target/doxygen" {
		t.Errorf("Output.Dir = %q, want default", cfg.Output.Dir)
	}
	if cfg.Patterns != nil {
		t.Errorf("Patterns = %#v, want nil", cfg.Patterns)
	}
}

func TestBindToStruct_EmptyKeepsCurrent(t *testing.T) {
	cfg := runnerSettings{Output: outputSettings{Config: "preset.cfg"}}
	if err := BindToStruct(map[string]string{"CONFIG_FILE": ""}, &cfg); err != nil {
		t.Fatalf("BindToStruct() error = %v", err)
	}
	if cfg.Output.Config != "preset.cfg" {
		t.Errorf("Config = %q, want preset value kept", cfg.Output.Config)
	}
}

func TestBindToStruct_Errors(t *testing.T) {
	tests := []struct {
		name     string
		snapshot map[string]string
	}{
		{"invalid int", map[string]string{"DEPTH": "deep"}},
		{"invalid uint", map[string]string{"RETRIES": "-1"}},
		{"invalid bool", map[string]string{"SKIP": "sometimes"}},
		{"invalid float", map[string]string{"RATIO": "half"}},
		{"invalid duration", map[string]string{"TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg runnerSettings
			if err := BindToStruct(tt.snapshot, &cfg); err == nil {
				t.Error("BindToStruct() should return error")
			}
		})
	}
}

func TestBindToStruct_NestedError(t *testing.T) {
	type inner struct {
		Port int `env:"PORT"`
	}
	type outer struct {
		Inner inner
	}

	var cfg outer
	if err := BindToStruct(map[string]string{"PORT": "x"}, &cfg); err == nil {
		t.Error("BindToStruct() should report nested field errors")
	}
}

func TestBindToStruct_UnsupportedType(t *testing.T) {
	type withMap struct {
		Extra map[string]string `env:"EXTRA"`
	}
	type withIntSlice struct {
		Sizes []int `env:"SIZES"`
	}

	if err := BindToStruct(map[string]string{"EXTRA": "a"}, &withMap{}); err == nil {
		t.Error("map fields should be rejected")
	}
	if err := BindToStruct(map[string]string{"SIZES": "1,2"}, &withIntSlice{}); err == nil {
		t.Error("non-string slices should be rejected")
	}
}

func TestBindToStruct_InvalidTarget(t *testing.T) {
	var cfg runnerSettings
	tests := []struct {
		name   string
		target any
	}{
		{"non-pointer", cfg},
		{"pointer to non-struct", new(string)},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := BindToStruct(map[string]string{}, tt.target); err == nil {
				t.Error("BindToStruct() should reject invalid target")
			}
		})
	}
}
