package log

import (
	"testing"
	"time"
)

func TestStr(t *testing.T) {
	kv := Str("path", "doxygen.config")
	if kv == nil {
		t.Fatal("Str should return non-nil value")
	}

	// Verify it's a slice with two elements
	if slice, ok := kv.([]any); !ok {
		t.Fatal("Str should return []any")
	} else if len(slice) != 2 {
		t.Fatalf("Str should return slice with 2 elements, got %d", len(slice))
	} else if slice[0] != "path" || slice[1] != "doxygen.config" {
		t.Fatalf("Str should return [\"path\", \"doxygen.config\"], got %v", slice)
	}
}

func TestInt(t *testing.T) {
	kv := Int("exit_code", 42)
	if kv == nil {
		t.Fatal("Int should return non-nil value")
	}

	// Verify it's a slice with two elements
	if slice, ok := kv.([]any); !ok {
		t.Fatal("Int should return []any")
	} else if len(slice) != 2 {
		t.Fatalf("Int should return slice with 2 elements, got %d", len(slice))
	} else if slice[0] != "exit_code" || slice[1] != 42 {
		t.Fatalf("Int should return [\"exit_code\", 42], got %v", slice)
	}
}

func TestBool(t *testing.T) {
	kv := Bool("quiet", true)
	slice, ok := kv.([]any)
	if !ok || len(slice) != 2 || slice[0] != "quiet" || slice[1] != true {
		t.Fatalf("Bool should return [\"quiet\", true], got %v", kv)
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Info("ignored", Str("k", "v"))
	logger.Error(nil, "ignored")
	if logger.With("a", 1) == nil {
		t.Fatal("Nop().With should return a logger")
	}
}

func TestDur(t *testing.T) {
	duration := 5 * time.Second
	kv := Dur("latency", duration)
	if kv == nil {
		t.Fatal("Dur should return non-nil value")
	}

	// Verify it's a slice with two elements
	if slice, ok := kv.([]any); !ok {
		t.Fatal("Dur should return []any")
	} else if len(slice) != 2 {
		t.Fatalf("Dur should return slice with 2 elements, got %d", len(slice))
	} else if slice[0] != "latency" || slice[1] != duration {
		t.Fatalf("Dur should return [\"latency\", %v], got %v", duration, slice)
	}
}

// MockLogger is a test implementation of the Logger interface
type MockLogger struct {
	Messages []string
	Fields   [][]any
}

func (m *MockLogger) With(kv ...any) Logger {
	return m
}

func (m *MockLogger) Debug(msg string, kv ...any) {
	m.Messages = append(m.Messages, msg)
	m.Fields = append(m.Fields, kv)
}

func (m *MockLogger) Info(msg string, kv ...any) {
	m.Messages = append(m.Messages, msg)
	m.Fields = append(m.Fields, kv)
}

func (m *MockLogger) Warn(msg string, kv ...any) {
	m.Messages = append(m.Messages, msg)
	m.Fields = append(m.Fields, kv)
}

func (m *MockLogger) Error(err error, msg string, kv ...any) {
	m.Messages = append(m.Messages, msg)
	m.Fields = append(m.Fields, kv)
}

func TestLoggerInterface(t *testing.T) {
	logger := &MockLogger{}

	// Test all methods
	logger.Debug("toolchains are ignored", Str("executable", "/usr/bin/doxygen"))
	logger.Info("configuration written", Int("options", 200))
	logger.Warn("doxygen run was slow", Dur("elapsed", time.Second))
	logger.Error(nil, "documentation generation failed")

	if len(logger.Messages) != 4 {
		t.Fatalf("Expected 4 messages, got %d", len(logger.Messages))
	}

	expectedMessages := []string{
		"toolchains are ignored",
		"configuration written",
		"doxygen run was slow",
		"documentation generation failed",
	}
	for i, expected := range expectedMessages {
		if logger.Messages[i] != expected {
			t.Errorf("Expected message %q, got %q", expected, logger.Messages[i])
		}
	}
}
