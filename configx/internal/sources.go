// Package internal provides internal implementation details for configx.
//
// Overview:
//   - Responsibility: Implement configuration sources (Env, File, Map)
//   - Key Types: EnvSource, FileSource, MapSource
//   - Concurrency Model: All sources are safe for concurrent use
//   - Error Semantics: Sources return errors for unreadable or malformed input
//   - Performance Notes: Sources are read once per manager load
//
// Usage:
//
//	envSource := configx.NewEnvSource(configx.EnvOptions{Prefix: "DOXYGEN_"})
//	fileSource := configx.NewFileSource("eggdoc.yaml", configx.FileOptions{})
//	flagSource := configx.NewMapSource(map[string]string{"SKIP": "true"})
package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvOptions configures environment variable source behavior.
type EnvOptions struct {
	Prefix    string // Prefix for environment variables (e.g., "DOXYGEN_")
	Lowercase bool   // Convert keys to lowercase
	Uppercase bool   // Convert keys to uppercase
}

// EnvSource loads configuration from environment variables.
type EnvSource struct {
	prefix    string
	lowercase bool
	uppercase bool
	environ   func() []string
}

// NewEnvSource creates a new environment variable source.
func NewEnvSource(opts EnvOptions) Source {
	return &EnvSource{
		prefix:    opts.Prefix,
		lowercase: opts.Lowercase,
		uppercase: opts.Uppercase,
		environ:   os.Environ,
	}
}

// Load reads configuration from environment variables.
func (s *EnvSource) Load(ctx context.Context) (map[string]string, error) {
	config := make(map[string]string)

	for _, env := range s.environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if s.prefix != "" {
			if !strings.HasPrefix(key, s.prefix) {
				continue
			}
			key = strings.TrimPrefix(key, s.prefix)
		}
		if key == "" {
			continue
		}

		if s.lowercase {
			key = strings.ToLower(key)
		} else if s.uppercase {
			key = strings.ToUpper(key)
		}

		config[key] = value
	}

	return config, nil
}

// FileOptions configures file source behavior.
type FileOptions struct {
	Format   string // File format: "json" or "yaml" (default: detected from extension)
	Required bool   // Fail when the file does not exist
}

// FileSource loads configuration from a YAML or JSON document.
// Nested mappings are flattened into upper-case keys joined with "_".
type FileSource struct {
	path     string
	format   string
	required bool
}

// NewFileSource creates a new file source.
func NewFileSource(path string, opts FileOptions) Source {
	format := opts.Format
	if format == "" {
		format = detectFileFormat(path)
	}

	return &FileSource{
		path:     path,
		format:   format,
		required: opts.Required,
	}
}

// Load reads configuration from the file.
// A missing optional file yields an empty snapshot.
func (s *FileSource) Load(ctx context.Context) (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !s.required {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read file %s: %w", s.path, err)
	}

	config, err := parseConfigFile(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", s.path, err)
	}
	return config, nil
}

// MapSource serves a fixed snapshot, typically built from command line flags.
type MapSource struct {
	values map[string]string
}

// NewMapSource creates a source over a copy of values.
func NewMapSource(values map[string]string) Source {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &MapSource{values: cp}
}

// Load returns a copy of the fixed snapshot.
func (s *MapSource) Load(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out, nil
}

// detectFileFormat detects file format from extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// parseConfigFile parses configuration file content into a flat map.
func parseConfigFile(data []byte, format string) (map[string]string, error) {
	var doc any
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	config := make(map[string]string)
	if doc == nil {
		return config, nil
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top level must be a mapping, got %T", doc)
	}
	if err := flatten("", root, config); err != nil {
		return nil, err
	}
	return config, nil
}

// flatten walks nested mappings, joining keys with "_".
func flatten(prefix string, node map[string]any, out map[string]string) error {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := NormalizeKey(k)
		if prefix != "" {
			key = prefix + "_" + key
		}

		switch v := node[k].(type) {
		case map[string]any:
			if err := flatten(key, v, out); err != nil {
				return err
			}
		case []any:
			parts := make([]string, 0, len(v))
			for i, item := range v {
				s, err := scalarString(item)
				if err != nil {
					return fmt.Errorf("%s[%d]: %w", key, i, err)
				}
				parts = append(parts, s)
			}
			out[key] = strings.Join(parts, " ")
		default:
			s, err := scalarString(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			out[key] = s
		}
	}
	return nil
}

func scalarString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case json.Number:
		return t.String(), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

// NormalizeKey upper-cases a key and maps '-', '.' and spaces to '_'.
func NormalizeKey(k string) string {
	k = strings.TrimSpace(k)
	k = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(k)
	return strings.ToUpper(k)
}
