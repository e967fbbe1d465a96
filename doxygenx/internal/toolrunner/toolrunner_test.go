package toolrunner

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
}

func TestExec_CombinedOutputInOrder(t *testing.T) {
	skipWithoutShell(t)

	r := NewRunner(t.TempDir())
	res, err := r.Exec(context.Background(), "sh", "-c", "echo out1; echo err1 1>&2; echo out2")
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if want := "out1\nerr1\nout2\n"; res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Duration <= 0 {
		t.Errorf("Duration = %v, want > 0", res.Duration)
	}
	if got := res.String(); got != "sh -c echo out1; echo err1 1>&2; echo out2" {
		t.Errorf("String() = %q", got)
	}
}

func TestExec_ExitError(t *testing.T) {
	skipWithoutShell(t)

	res, err := NewRunner("").Exec(context.Background(), "sh", "-c", "echo partial; exit 3")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Exec() error = %v, want *ExitError", err)
	}
	if exitErr.ExitCode != 3 || res.ExitCode != 3 {
		t.Errorf("exit codes = %d/%d, want 3", exitErr.ExitCode, res.ExitCode)
	}
	if res.Output != "partial\n" {
		t.Errorf("Output = %q", res.Output)
	}
}

func TestExec_LaunchError(t *testing.T) {
	res, err := NewRunner("").Exec(context.Background(), filepath.Join(t.TempDir(), "nope"))
	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Exec() error = %v, want *LaunchError", err)
	}
	if launchErr.Err == nil {
		t.Error("LaunchError.Err is nil")
	}
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", res.ExitCode)
	}
}

func TestExec_WorkDirAndEnv(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}

	base := NewRunner(dir)
	r := base.WithEnv("EGGDOC_TEST_VALUE=42")
	if r.WorkDir() != dir {
		t.Errorf("WorkDir() = %q, want %q", r.WorkDir(), dir)
	}

	res, err := r.Exec(context.Background(), "sh", "-c", `pwd -P; echo "$EGGDOC_TEST_VALUE"`)
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}
	if want := realDir + "\n42\n"; res.Output != want {
		t.Errorf("Output = %q, want %q", res.Output, want)
	}
	if len(base.env) != 0 {
		t.Errorf("WithEnv modified the receiver: %v", base.env)
	}
}

func TestExec_ContextCancelKillsProcess(t *testing.T) {
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner("")
	done := make(chan error, 1)
	go func() {
		_, err := r.Exec(ctx, "sleep", "30")
		done <- err
	}()
	cancel()

	err := <-done
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Exec() error = %v, want context.Canceled", err)
	}
}

func TestLookPath(t *testing.T) {
	skipWithoutShell(t)

	if _, ok := LookPath("sh"); !ok {
		t.Error("LookPath(sh) = false")
	}
	if _, ok := LookPath("eggdoc-test-no-such-tool"); ok {
		t.Error("LookPath(missing) = true")
	}
}
