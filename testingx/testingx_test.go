package testingx

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"testing"

	"go.eggybyte.com/eggdoc/core/errors"
	"go.eggybyte.com/eggdoc/core/identity"
	"go.eggybyte.com/eggdoc/core/log"
)

// recorder implements T and records failures instead of stopping the test.
type recorder struct {
	errors []string
	fatals []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recorder) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recorder) failed() bool { return len(r.errors)+len(r.fatals) > 0 }

func TestMockLogger_Levels(t *testing.T) {
	logger := NewMockLogger(t)
	boom := fmt.Errorf("boom")

	logger.Debug("toolchains are ignored", "executable", "/usr/bin/doxygen")
	logger.Info("doxygen: Parsing file widget.h")
	logger.Warn("option ignored")
	logger.Error(boom, "An error has occurred in Doxygen report generation")

	entries := logger.Entries()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, level := range levels {
		if entries[i].Level != level {
			t.Errorf("entry %d level = %s, want %s", i, entries[i].Level, level)
		}
	}
	if entries[3].Error != boom {
		t.Error("error entry should carry the error")
	}
	if v, ok := entries[0].Field("executable"); !ok || v != "/usr/bin/doxygen" {
		t.Errorf("Field(executable) = %v, %v", v, ok)
	}

	logger.AssertLogged("INFO", "doxygen: Parsing file widget.h")
	logger.AssertNotLogged("INFO", "Skipping")
}

func TestMockLogger_WithSharesEntries(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("run_id", "r-1")
	child.Info("relay", log.Int("line", 3))

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("parent should see child entries, got %d", len(entries))
	}
	if v, _ := entries[0].Field("run_id"); v != "r-1" {
		t.Errorf("run_id = %v", v)
	}
	if v, _ := entries[0].Field("line"); v != 3 {
		t.Errorf("line = %v", v)
	}
	if _, ok := entries[0].Field("missing"); ok {
		t.Error("missing field should not be found")
	}
}

func TestMockLogger_Messages(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Info("doxygen: a")
	logger.Debug("hidden")
	logger.Info("doxygen: b")

	got := logger.Messages("INFO")
	if len(got) != 2 || got[0] != "doxygen: a" || got[1] != "doxygen: b" {
		t.Errorf("Messages(INFO) = %v", got)
	}
}

func TestMockLogger_Assertions(t *testing.T) {
	rec := &recorder{}
	logger := NewMockLogger(rec)
	logger.Info("present")

	logger.AssertLogged("INFO", "absent")
	if len(rec.errors) != 1 {
		t.Errorf("AssertLogged should report missing message, got %v", rec.errors)
	}

	logger.AssertNotLogged("INFO", "pres")
	if len(rec.errors) != 2 {
		t.Errorf("AssertNotLogged should report unexpected message, got %v", rec.errors)
	}
}

func TestMockLogger_Clear(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Info("a")
	logger.Clear()
	if len(logger.Entries()) != 0 {
		t.Error("Clear should remove all entries")
	}
}

func TestMockLogger_Concurrency(t *testing.T) {
	logger := NewMockLogger(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.With("worker", i).Info("tick")
		}(i)
	}
	wg.Wait()

	if n := len(logger.Entries()); n != 50 {
		t.Errorf("expected 50 entries, got %d", n)
	}
}

func TestCaptureLogger(t *testing.T) {
	logger := NewCaptureLogger()
	if logger.Lines() != nil {
		t.Error("new capture logger should be empty")
	}

	logger.With("ignored", true).Info("doxygen: done", log.Str("file", "index.html"))
	logger.Error(fmt.Errorf("exit status 1"), "failed", "code", 1)
	logger.Error(nil, "no cause")

	want := []string{
		"INFO: doxygen: done file=index.html",
		"ERROR: failed code=1 error=exit status 1",
		"ERROR: no cause",
	}
	got := logger.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	logger.Clear()
	if logger.String() != "" {
		t.Error("Clear should reset the buffer")
	}
}

func TestNewContextWithRun(t *testing.T) {
	ctx := NewContextWithRun(t, &identity.RunMeta{RunID: "r-9", Goal: "generate"})
	meta, ok := identity.RunFrom(ctx)
	if !ok || meta.RunID != "r-9" || meta.Goal != "generate" {
		t.Errorf("RunFrom() = %+v, %v", meta, ok)
	}

	if _, ok := identity.RunFrom(NewContextWithRun(t, nil)); ok {
		t.Error("nil meta should produce an empty context")
	}
}

func TestAssertError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       errors.Code
		wantFailed bool
	}{
		{"matching code", errors.New(errors.CodeGeneration, "failed"), errors.CodeGeneration, false},
		{"wrapped code", fmt.Errorf("outer: %w", errors.New(errors.CodeLaunch, "x")), errors.CodeLaunch, false},
		{"wrong code", errors.New(errors.CodeLaunch, "x"), errors.CodeGeneration, true},
		{"nil error", nil, errors.CodeConfigBuild, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			AssertError(rec, tt.err, tt.code)
			if rec.failed() != tt.wantFailed {
				t.Errorf("failed = %v, want %v (%v %v)", rec.failed(), tt.wantFailed, rec.errors, rec.fatals)
			}
		})
	}
}

func TestAssertNoError(t *testing.T) {
	rec := &recorder{}
	AssertNoError(rec, nil)
	if rec.failed() {
		t.Error("nil error should pass")
	}

	AssertNoError(rec, errors.New(errors.CodeInternal, "x"))
	if len(rec.fatals) != 1 {
		t.Error("non-nil error should be fatal")
	}
}

func TestFakeExecutable(t *testing.T) {
	path := FakeExecutable(t, `echo "hello $1"`)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		t.Error("fake executable should be executable")
	}

	out, err := exec.Command(path, "docs").CombinedOutput()
	if err != nil {
		t.Fatalf("run fake executable: %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello docs" {
		t.Errorf("output = %q", out)
	}
}
