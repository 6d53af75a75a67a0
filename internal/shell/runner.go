// Package shell runs external commands (git, gh) and reports failures as CommandError.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner executes external commands.
// This interface allows replacing command execution in tests.
type Runner interface {
	// Run executes name with args in dir and returns the trimmed stdout.
	// An empty dir means the current working directory.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}

// ExecRunner is the default Runner using exec.CommandContext.
type ExecRunner struct {
	// Trace, if set, is called with the command line before each command runs.
	Trace func(cmdline string)
}

// NewExecRunner creates a new ExecRunner that reports each command to trace.
func NewExecRunner(trace func(cmdline string)) *ExecRunner {
	return &ExecRunner{Trace: trace}
}

// Run executes the command and returns its trimmed stdout.
// On failure the returned error is a *CommandError carrying the trimmed stderr.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	if r.Trace != nil {
		r.Trace(CommandLine(name, args...))
	}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // name is always git or gh
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		return "", &CommandError{
			Command: name,
			Args:    args,
			Dir:     dir,
			Output:  output,
			Err:     err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}

// CommandLine renders a command for display.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
