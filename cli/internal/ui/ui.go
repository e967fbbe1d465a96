// Package ui provides unified output formatting for the eggdoc CLI.
//
// Overview:
//   - Responsibility: Standardized user-facing messages, headings and step indicators
//   - Key Types: Message, OutputLevel
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: User-friendly error messages with suggestions
//   - Performance Notes: One write per message, styles rendered with lipgloss
//
// Usage:
//
//	ui.Info("Configuration written to %s", path)
//	ui.Error("Documentation generation failed: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	verbose    bool
	jsonOutput bool
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
	mu         sync.RWMutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

var (
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)

// Message represents a structured output message.
//
// Parameters:
//   - Level: Message severity level
//   - Text: Human-readable message content
//   - Data: Optional structured data for JSON output
//   - Timestamp: When the message was created
//
// Concurrency:
//   - Safe for concurrent access
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Data      any         `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// SetVerbose enables or disables debug messages.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// SetJSONOutput enables JSON-formatted output.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetOutput redirects normal and error output.
// Nil writers leave the current destination unchanged.
//
// Parameters:
//   - out: Destination for everything but errors
//   - errOut: Destination for error messages
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout returns the current normal output destination.
func Stdout() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stdout
}

// IsJSON reports whether JSON output is enabled.
func IsJSON() bool {
	mu.RLock()
	defer mu.RUnlock()
	return jsonOutput
}

// output writes a message to the appropriate output stream.
//
// Parameters:
//   - level: Message severity level
//   - data: Optional structured payload, only written in JSON mode
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
func output(level OutputLevel, data any, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out, errOut := stdout, stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	if useJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(Message{Level: level, Text: text, Data: data, Timestamp: time.Now()}); err != nil {
			fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}
	fmt.Fprintf(writer, "%s %s\n", Prefix(level), text)
}

// Prefix returns the styled prefix printed before messages of level.
func Prefix(level OutputLevel) string {
	switch level {
	case LevelDebug:
		return debugStyle.Render("DEBUG:")
	case LevelInfo:
		return infoStyle.Render("INFO:")
	case LevelWarning:
		return warnStyle.Render("WARN:")
	case LevelError:
		return errorStyle.Render("ERROR:")
	case LevelSuccess:
		return successStyle.Render("OK:")
	default:
		return string(level) + ":"
	}
}

// Debug outputs a debug message. Only shown in verbose mode.
func Debug(format string, args ...any) {
	output(LevelDebug, nil, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...any) {
	output(LevelInfo, nil, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...any) {
	output(LevelWarning, nil, format, args...)
}

// Error outputs an error message to the error stream.
func Error(format string, args ...any) {
	output(LevelError, nil, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...any) {
	output(LevelSuccess, nil, format, args...)
}

// Result outputs an informational message carrying structured data.
// In JSON mode data is included in the encoded message.
//
// Parameters:
//   - data: Structured payload
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
func Result(data any, format string, args ...any) {
	output(LevelSuccess, data, format, args...)
}

// Heading outputs a section title. Suppressed in JSON mode.
func Heading(format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		return
	}
	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf(format, args...)))
}

// Step outputs a step indicator with message.
//
// Parameters:
//   - step: Step number
//   - total: Total number of steps
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - None
//
// Concurrency:
//   - Thread-safe
func Step(step, total int, format string, args ...any) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	text := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "  %s %s\n", stepStyle.Render(fmt.Sprintf("[%d/%d]", step, total)), text)
}
