// Package internal provides tests for configx internal sources implementation.
package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestEnvSource_Load(t *testing.T) {
	environ := []string{
		"DOXYGEN_EXECUTABLE=/usr/local/bin/doxygen",
		"DOXYGEN_OPTIONS_TAB_SIZE=9",
		"doxygen_lower=x",
		"DOXYGEN_=empty-key",
		"HOME=/root",
		"MALFORMED",
	}

	tests := []struct {
		name     string
		opts     EnvOptions
		expected map[string]string
	}{
		{
			name: "prefix stripped",
			opts: EnvOptions{Prefix: "DOXYGEN_"},
			expected: map[string]string{
				"EXECUTABLE":       "/usr/local/bin/doxygen",
				"OPTIONS_TAB_SIZE": "9",
			},
		},
		{
			name: "lowercase",
			opts: EnvOptions{Prefix: "DOXYGEN_", Lowercase: true},
			expected: map[string]string{
				"executable":       "/usr/local/bin/doxygen",
				"options_tab_size": "9",
			},
		},
		{
			name: "no prefix",
			opts: EnvOptions{Uppercase: true},
			expected: map[string]string{
				"DOXYGEN_EXECUTABLE":       "/usr/local/bin/doxygen",
				"DOXYGEN_OPTIONS_TAB_SIZE": "9",
				"DOXYGEN_LOWER":            "x",
				"DOXYGEN_":                 "empty-key",
				"HOME":                     "/root",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewEnvSource(tt.opts).(*EnvSource)
			src.environ = func() []string { return environ }

			got, err := src.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Errorf("Load() returned %d keys, want %d: %v", len(got), len(tt.expected), got)
			}
			for k, v := range tt.expected {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestEnvSource_LoadProcessEnv(t *testing.T) {
	t.Setenv("EGGDOC_TEST_SKIP", "true")

	got, err := NewEnvSource(EnvOptions{Prefix: "EGGDOC_TEST_"}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got["SKIP"] != "true" {
		t.Errorf("SKIP = %q, want true", got["SKIP"])
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSource_YAML(t *testing.T) {
	path := writeFile(t, "eggdoc.yaml", `
basedir: .
output-dir: target/doxygen
skip: false
log:
  level: debug
options:
  PROJECT_NAME: widgets
  TAB_SIZE: 9
  CREATE_SUBDIRS: true
  FILE_PATTERNS:
    - "*.h"
    - "*.cpp"
  PROJECT_NUMBER:
`)

	got, err := NewFileSource(path, FileOptions{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := map[string]string{
		"BASEDIR":                ".",
		"OUTPUT_DIR":             "target/doxygen",
		"SKIP":                   "false",
		"LOG_LEVEL":              "debug",
		"OPTIONS_PROJECT_NAME":   "widgets",
		"OPTIONS_TAB_SIZE":       "9",
		"OPTIONS_CREATE_SUBDIRS": "true",
		"OPTIONS_FILE_PATTERNS":  "*.h *.cpp",
		"OPTIONS_PROJECT_NUMBER": "",
	}
	if len(got) != len(expected) {
		t.Errorf("Load() returned %d keys, want %d: %v", len(got), len(expected), got)
	}
	for k, v := range expected {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
}

func TestFileSource_JSON(t *testing.T) {
	path := writeFile(t, "eggdoc.json", `{"executable": "doxygen", "options": {"DOT_FONTSIZE": 11, "ratio": 1.5}}`)

	got, err := NewFileSource(path, FileOptions{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got["EXECUTABLE"] != "doxygen" {
		t.Errorf("EXECUTABLE = %q", got["EXECUTABLE"])
	}
	if got["OPTIONS_DOT_FONTSIZE"] != "11" {
		t.Errorf("OPTIONS_DOT_FONTSIZE = %q, want 11", got["OPTIONS_DOT_FONTSIZE"])
	}
	if got["OPTIONS_RATIO"] != "1.5" {
		t.Errorf("OPTIONS_RATIO = %q, want 1.5", got["OPTIONS_RATIO"])
	}
}

func TestFileSource_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	got, err := NewFileSource(missing, FileOptions{}).Load(context.Background())
	if err != nil {
		t.Fatalf("optional missing file should not fail: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty snapshot, got %v", got)
	}

	if _, err := NewFileSource(missing, FileOptions{Required: true}).Load(context.Background()); err == nil {
		t.Error("required missing file should fail")
	}
}

func TestFileSource_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  string
	}{
		{"malformed yaml", "bad.yaml", "options: [unterminated", ""},
		{"top level list", "list.yaml", "- a\n- b\n", ""},
		{"nested list of maps", "deep.yaml", "options:\n  INPUT:\n    - {a: b}\n", ""},
		{"malformed json", "bad.json", "{", ""},
		{"unsupported format", "cfg.toml", "a = 1", "toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			if _, err := NewFileSource(path, FileOptions{Format: tt.format}).Load(context.Background()); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestFileSource_Empty(t *testing.T) {
	path := writeFile(t, "empty.yaml", "")

	got, err := NewFileSource(path, FileOptions{}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty snapshot, got %v", got)
	}
}

func TestMapSource_Copies(t *testing.T) {
	values := map[string]string{"SKIP": "true"}
	src := NewMapSource(values)
	values["SKIP"] = "false"

	got, _ := src.Load(context.Background())
	if got["SKIP"] != "true" {
		t.Error("MapSource should copy its input")
	}
	got["SKIP"] = "mutated"

	again, _ := src.Load(context.Background())
	if again["SKIP"] != "true" {
		t.Error("MapSource should return a fresh copy on every Load")
	}
}

func TestDetectFileFormat(t *testing.T) {
	tests := map[string]string{
		"eggdoc.yaml": "yaml",
		"eggdoc.yml":  "yaml",
		"eggdoc.JSON": "json",
		"eggdoc":      "yaml",
	}
	for path, want := range tests {
		if got := detectFileFormat(path); got != want {
			t.Errorf("detectFileFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"output-dir":   "OUTPUT_DIR",
		"log.level":    "LOG_LEVEL",
		" tab size ":   "TAB_SIZE",
		"PROJECT_NAME": "PROJECT_NAME",
	}
	for in, want := range tests {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildLayeredSources(t *testing.T) {
	tests := []struct {
		name string
		opts LayerOptions
		want int
	}{
		{"none", LayerOptions{}, 0},
		{"file only", LayerOptions{File: "eggdoc.yaml"}, 1},
		{"all layers", LayerOptions{File: "eggdoc.yaml", EnvPrefix: "DOXYGEN_", Overrides: map[string]string{"SKIP": "true"}}, 3},
		{"empty overrides skipped", LayerOptions{EnvPrefix: "DOXYGEN_", Overrides: map[string]string{}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildLayeredSources(tt.opts); len(got) != tt.want {
				t.Errorf("BuildLayeredSources() returned %d sources, want %d", len(got), tt.want)
			}
		})
	}

	sources := BuildLayeredSources(LayerOptions{File: "eggdoc.yaml", EnvPrefix: "DOXYGEN_", Overrides: map[string]string{"SKIP": "true"}})
	if _, ok := sources[0].(*FileSource); !ok {
		t.Error("file layer should come first")
	}
	if _, ok := sources[1].(*EnvSource); !ok {
		t.Error("env layer should come second")
	}
	if _, ok := sources[2].(*MapSource); !ok {
		t.Error("override layer should come last")
	}
}
