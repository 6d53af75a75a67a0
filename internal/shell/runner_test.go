package shell

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestExecRunner_Run_ReturnsTrimmedStdout(t *testing.T) {
	r := NewExecRunner(nil)
	out, err := r.Run(context.Background(), "", "sh", "-c", "printf '  hello\\n\\n'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello" {
		t.Errorf("expected %q, got %q", "hello", out)
	}
}

func TestExecRunner_Run_UsesDir(t *testing.T) {
	dir := t.TempDir()
	r := NewExecRunner(nil)
	out, err := r.Run(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out, dirBase(dir)) {
		t.Errorf("expected pwd to end with %q, got %q", dirBase(dir), out)
	}
}

func TestExecRunner_Run_FailureIsCommandError(t *testing.T) {
	r := NewExecRunner(nil)
	_, err := r.Run(context.Background(), "", "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Output != "boom" {
		t.Errorf("expected output %q, got %q", "boom", cmdErr.Output)
	}
	if cmdErr.ExitCode() != 3 {
		t.Errorf("expected exit code 3, got %d", cmdErr.ExitCode())
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error message should include stderr, got %q", err.Error())
	}
}

func TestExecRunner_Run_FallsBackToStdoutInError(t *testing.T) {
	r := NewExecRunner(nil)
	_, err := r.Run(context.Background(), "", "sh", "-c", "echo only-stdout; exit 1")

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.Output != "only-stdout" {
		t.Errorf("expected output %q, got %q", "only-stdout", cmdErr.Output)
	}
}

func TestExecRunner_Run_MissingBinary(t *testing.T) {
	r := NewExecRunner(nil)
	_, err := r.Run(context.Background(), "", "gpr-definitely-not-a-binary")

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if cmdErr.ExitCode() != -1 {
		t.Errorf("expected exit code -1 for missing binary, got %d", cmdErr.ExitCode())
	}
}

func TestExecRunner_Run_Trace(t *testing.T) {
	var traced []string
	r := NewExecRunner(func(cmdline string) { traced = append(traced, cmdline) })

	if _, err := r.Run(context.Background(), "", "true"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Run(context.Background(), "", "echo", "a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"true", "echo a b"}
	if len(traced) != len(want) {
		t.Fatalf("expected %d traced commands, got %v", len(want), traced)
	}
	for i := range want {
		if traced[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, traced[i], want[i])
		}
	}
}

func dirBase(p string) string {
	i := strings.LastIndex(p, "/")
	return p[i+1:]
}
