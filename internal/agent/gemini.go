package agent

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Compile-time interface check
var _ Agent = (*GeminiAgent)(nil)

// GeminiAgent runs the gemini CLI in non-interactive, auto-approve mode:
// `gemini -y -p <prompt>`.
type GeminiAgent struct {
	// Command is the executable to run; a bare name is looked up on PATH.
	Command string
	// Stdout and Stderr receive the agent's output. Nil means os.Stdout / os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewGeminiAgent creates a GeminiAgent. An empty command means DefaultCommand.
func NewGeminiAgent(command string) *GeminiAgent {
	if command == "" {
		command = DefaultCommand
	}
	return &GeminiAgent{Command: command}
}

// Name returns the agent's identifier.
func (g *GeminiAgent) Name() string {
	return g.Command
}

// IsAvailable checks if the agent CLI is installed and accessible.
func (g *GeminiAgent) IsAvailable() error {
	if _, err := exec.LookPath(g.Command); err != nil {
		return fmt.Errorf("%s CLI not found in PATH: %w", g.Command, err)
	}
	return nil
}

// Review runs the agent with prompt in workDir and waits for it to exit.
func (g *GeminiAgent) Review(ctx context.Context, workDir, prompt string) (*Result, error) {
	stdout, stderr := g.Stdout, g.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return executeCommand(ctx, executeOptions{
		Command: g.Command,
		Args:    g.args(prompt),
		WorkDir: workDir,
		Stdout:  stdout,
		Stderr:  stderr,
	})
}

func (g *GeminiAgent) args(prompt string) []string {
	return []string{"-y", "-p", prompt}
}
