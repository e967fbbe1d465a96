// Package testingx provides testing utilities for eggdoc packages.
//
// Overview:
//   - Responsibility: Testing helpers, mocks, and fixtures
//   - Key Types: MockLogger, CaptureLogger, T, helpers for run context, errors and fake executables
//   - Concurrency Model: Loggers are safe for concurrent use
//   - Error Semantics: Test failures via T
//   - Performance Notes: Optimized for test execution
//
// Usage:
//
//	logger := testingx.NewMockLogger(t)
//	ctx := testingx.NewContextWithRun(t, &identity.RunMeta{RunID: "r-1"})
//	exe := testingx.FakeExecutable(t, "echo hello\nexit 1")
package testingx

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/identity"
	"go.eggybyte.com/eggdoc/core/log"
)

// T is the subset of testing.TB used by the assertion helpers.
type T interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// MockLogger is a mock logger for testing.
// Loggers derived with With share the entry list and prepend their fields.
type MockLogger struct {
	t      T
	store  *entryStore
	fields []any
}

type entryStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a single log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// Field returns the value logged under key and whether it was present.
// Pairs built by log.Str and friends are looked through.
func (e LogEntry) Field(key string) (any, bool) {
	flat := flattenKV(e.Fields)
	for i := 0; i+1 < len(flat); i += 2 {
		if fmt.Sprint(flat[i]) == key {
			return flat[i+1], true
		}
	}
	return nil, false
}

func flattenKV(kv []any) []any {
	flat := make([]any, 0, len(kv))
	for _, item := range kv {
		if pair, ok := item.([]any); ok && len(pair) == 2 {
			flat = append(flat, pair[0], pair[1])
			continue
		}
		flat = append(flat, item)
	}
	return flat
}

// NewMockLogger creates a new mock logger.
func NewMockLogger(t T) *MockLogger {
	return &MockLogger{
		t:     t,
		store: &entryStore{},
	}
}

// With returns a logger that records the given fields on every entry.
func (m *MockLogger) With(kv ...any) log.Logger {
	fields := append(append([]any{}, m.fields...), kv...)
	return &MockLogger{t: m.t, store: m.store, fields: fields}
}

// Debug logs a debug message.
func (m *MockLogger) Debug(msg string, kv ...any) {
	m.log("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (m *MockLogger) Info(msg string, kv ...any) {
	m.log("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (m *MockLogger) Warn(msg string, kv ...any) {
	m.log("WARN", msg, nil, kv)
}

// Error logs an error message.
func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.log("ERROR", msg, err, kv)
}

func (m *MockLogger) log(level, msg string, err error, kv []any) {
	fields := append(append([]any{}, m.fields...), kv...)
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = append(m.store.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   err,
	})
}

// Entries returns all log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	entries := make([]LogEntry, len(m.store.entries))
	copy(entries, m.store.entries)
	return entries
}

// Messages returns the messages logged at level, in order.
func (m *MockLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range m.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// AssertLogged asserts that a message was logged.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	for _, entry := range m.Entries() {
		if entry.Level == level && entry.Message == msg {
			return
		}
	}
	m.t.Errorf("Expected log message not found: level=%s msg=%q", level, msg)
}

// AssertNotLogged asserts that no message containing substr was logged at level.
func (m *MockLogger) AssertNotLogged(level, substr string) {
	m.t.Helper()
	for _, entry := range m.Entries() {
		if entry.Level == level && strings.Contains(entry.Message, substr) {
			m.t.Errorf("Unexpected log message: level=%s msg=%q", level, entry.Message)
			return
		}
	}
}

// Clear clears all log entries.
func (m *MockLogger) Clear() {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = nil
}

// NewContextWithRun creates a context carrying run metadata for testing.
func NewContextWithRun(t T, meta *identity.RunMeta) context.Context {
	t.Helper()
	ctx := context.Background()
	if meta != nil {
		ctx = identity.WithRun(ctx, meta)
	}
	return ctx
}

// AssertError asserts that an error has the expected code.
func AssertError(t T, err error, expectedCode errors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error with code %s, got nil", expectedCode)
		return
	}

	code := errors.CodeOf(err)
	if code != expectedCode {
		t.Errorf("Expected error code %s, got %s (%v)", expectedCode, code, err)
	}
}

// AssertNoError asserts that no error occurred.
func AssertNoError(t T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

// FakeExecutable writes a POSIX shell script with the given body into a
// temporary directory and returns its absolute path.
// The test is skipped on Windows.
func FakeExecutable(t testing.TB, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script executables are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "fake-doxygen")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake executable: %v", err)
	}
	return path
}

// CaptureLogger is a logger that captures output to a buffer.
type CaptureLogger struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

// NewCaptureLogger creates a new capture logger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

// With returns the same logger; fields are not captured.
func (c *CaptureLogger) With(kv ...any) log.Logger {
	return c
}

// Debug logs a debug message.
func (c *CaptureLogger) Debug(msg string, kv ...any) {
	c.write("DEBUG", msg, nil, kv)
}

// Info logs an info message.
func (c *CaptureLogger) Info(msg string, kv ...any) {
	c.write("INFO", msg, nil, kv)
}

// Warn logs a warning message.
func (c *CaptureLogger) Warn(msg string, kv ...any) {
	c.write("WARN", msg, nil, kv)
}

// Error logs an error message.
func (c *CaptureLogger) Error(err error, msg string, kv ...any) {
	c.write("ERROR", msg, err, kv)
}

// write renders "LEVEL: msg k=v ... error=..." on one line.
func (c *CaptureLogger) write(level, msg string, err error, kv []any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer.WriteString(level)
	c.buffer.WriteString(": ")
	c.buffer.WriteString(msg)
	flat := flattenKV(kv)
	for i := 0; i+1 < len(flat); i += 2 {
		fmt.Fprintf(&c.buffer, " %v=%v", flat[i], flat[i+1])
	}
	if err != nil {
		c.buffer.WriteString(" error=")
		c.buffer.WriteString(err.Error())
	}
	c.buffer.WriteString("\n")
}

// String returns the captured output.
func (c *CaptureLogger) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer.String()
}

// Lines returns the captured output split into lines.
func (c *CaptureLogger) Lines() []string {
	s := strings.TrimSuffix(c.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Clear clears the buffer.
func (c *CaptureLogger) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buffer.Reset()
}
