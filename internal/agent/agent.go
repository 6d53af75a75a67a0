package agent

import (
	"context"
	"time"
)

// DefaultCommand is the review agent CLI used when none is configured.
const DefaultCommand = "gemini"

// Agent is an external review backend.
type Agent interface {
	// Name returns the agent's identifier (the command it runs).
	Name() string

	// IsAvailable checks that the agent's CLI is installed and executable.
	IsAvailable() error

	// Review runs the agent with prompt in workDir and blocks until it exits.
	// A non-zero exit is reported in Result, not as an error; err is non-nil
	// only if the process could not be started or ctx was canceled.
	Review(ctx context.Context, workDir, prompt string) (*Result, error)
}

// Result describes a finished agent run.
type Result struct {
	ExitCode int
	Duration time.Duration
}
