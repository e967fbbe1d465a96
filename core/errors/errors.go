// Package errors provides coded errors for eggdoc runs.
//
// Overview:
//   - Responsibility: Classify failures of a documentation run by code and
//     carry the failing operation, cause and key/value details
//   - Key Types: Code, E, Builder
//   - Concurrency Model: Errors are immutable once built
//   - Error Semantics: E unwraps to its cause, so the standard library
//     errors.Is and errors.As work through it
//   - Performance Notes: One allocation per failure
//
// Usage:
//
//	err := errors.Build(errors.CodeLaunch).
//	    WithOp("doxygenx.Execute").
//	    WithErr(cause).
//	    WithMsgf("error while executing %s", exe).
//	    WithDetails("executable", exe).
//	    Err()
//	if errors.IsCode(err, errors.CodeLaunch) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a failure.
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"

	// CodeConfigBuild marks a configuration file that could not be created or written.
	CodeConfigBuild Code = "CONFIG_BUILD_FAILED"
	// CodeLaunch marks an external tool that could not be started at all.
	CodeLaunch Code = "LAUNCH_FAILED"
	// CodeGeneration marks an external tool that ran and exited non-zero.
	CodeGeneration Code = "GENERATION_FAILED"
)

// E is a coded error.
type E struct {
	Code    Code
	Op      string // package.Function that failed
	Err     error  // cause, may be nil
	Msg     string
	Details []any // alternating key/value pairs
}

// Error formats as "CODE: op: msg: cause", omitting empty parts.
func (e *E) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	for _, part := range []string{e.Op, e.Msg} {
		if part != "" {
			b.WriteString(": ")
			b.WriteString(part)
		}
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *E) Unwrap() error { return e.Err }

// Detail returns the value stored under key in Details.
func (e *E) Detail(key string) (any, bool) {
	for i := 0; i+1 < len(e.Details); i += 2 {
		if k, ok := e.Details[i].(string); ok && k == key {
			return e.Details[i+1], true
		}
	}
	return nil, false
}

// New returns an error with code and msg.
func New(code Code, msg string) error {
	return Build(code).WithMsg(msg).Err()
}

// Wrap returns err classified as code, failing in op.
func Wrap(code Code, op string, err error) error {
	return Build(code).WithOp(op).WithErr(err).Err()
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return Build(code).WithOp(op).WithErr(err).WithMsgf(format, args...).Err()
}

// CodeOf returns the code of the outermost E in err's chain, or "".
func CodeOf(err error) Code {
	var e *E
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries code.
func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// Fields returns the code, operation and details of err as logger key/value
// pairs. Errors without an E in their chain yield nil.
func Fields(err error) []any {
	var e *E
	if !errors.As(err, &e) {
		return nil
	}
	fields := []any{"code", string(e.Code)}
	if e.Op != "" {
		fields = append(fields, "op", e.Op)
	}
	return append(fields, e.Details...)
}

// As calls the standard library errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is calls the standard library errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Builder assembles an E.
type Builder struct {
	e E
}

// Build starts an error with code.
func Build(code Code) *Builder {
	return &Builder{e: E{Code: code}}
}

func (b *Builder) WithOp(op string) *Builder {
	b.e.Op = op
	return b
}

func (b *Builder) WithErr(err error) *Builder {
	b.e.Err = err
	return b
}

func (b *Builder) WithMsg(msg string) *Builder {
	b.e.Msg = msg
	return b
}

func (b *Builder) WithMsgf(format string, args ...any) *Builder {
	b.e.Msg = fmt.Sprintf(format, args...)
	return b
}

// WithDetails appends key/value pairs.
func (b *Builder) WithDetails(kv ...any) *Builder {
	b.e.Details = append(b.e.Details, kv...)
	return b
}

// Err returns the built error. The builder may be reused afterwards.
func (b *Builder) Err() error {
	e := b.e
	e.Details = append([]any(nil), b.e.Details...)
	return &e
}
