package shell

import (
	"errors"
	"fmt"
	"os/exec"
)

// CommandError is returned when an external command exits non-zero or cannot be started.
type CommandError struct {
	Command string
	Args    []string
	Dir     string
	Output  string // trimmed stderr, or stdout when stderr was empty
	Err     error
}

func (e *CommandError) Error() string {
	cmdline := CommandLine(e.Command, e.Args...)
	if e.Output != "" {
		return fmt.Sprintf("command failed: %s: %s", cmdline, e.Output)
	}
	return fmt.Sprintf("command failed: %s: %v", cmdline, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 if the command never ran to completion.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
