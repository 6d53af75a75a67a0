package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
	"time"
)

// executeOptions configures a blocking agent invocation.
type executeOptions struct {
	Command string
	Args    []string
	WorkDir string
	Stdout  io.Writer
	Stderr  io.Writer
}

// executeCommand runs the agent in its own process group, streams its output,
// and waits for it to exit. If ctx is canceled the process group is killed.
func executeCommand(ctx context.Context, opts executeOptions) (*Result, error) {
	// #nosec G204 - Command comes from gpr configuration, not PR content.
	cmd := exec.CommandContext(ctx, opts.Command, opts.Args...)
	cmd.Dir = opts.WorkDir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// Negative PID targets the whole group; the process may already be gone.
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		return nil
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", opts.Command, err)
	}

	err := cmd.Wait()
	res := &Result{Duration: time.Since(start)}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s interrupted: %w", opts.Command, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed waiting for %s: %w", opts.Command, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	return res, nil
}
