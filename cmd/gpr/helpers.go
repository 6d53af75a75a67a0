package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/richhaase/gemini-pr-review/internal/domain"
	"github.com/richhaase/gemini-pr-review/internal/github"
	"github.com/richhaase/gemini-pr-review/internal/terminal"
)

// exitCodeError is a wrapper type for returning exit codes via error interface.
type exitCodeError struct {
	code domain.ExitCode
}

func (e exitCodeError) Error() string {
	switch e.code {
	case domain.ExitError:
		return "review failed with error"
	case domain.ExitNoReport:
		return "review report was not written"
	case domain.ExitInterrupted:
		return "review was interrupted"
	default:
		return fmt.Sprintf("exit code %d", e.code)
	}
}

func exitCode(code domain.ExitCode) error {
	if code == domain.ExitSuccess {
		return nil
	}
	return exitCodeError{code: code}
}

// exitCodeFor maps a pipeline error to the process exit code.
// Cancellation wins over whatever error the interrupted step produced.
func exitCodeFor(ctx context.Context, err error) domain.ExitCode {
	switch {
	case err == nil:
		return domain.ExitSuccess
	case ctx.Err() != nil, errors.Is(err, context.Canceled):
		return domain.ExitInterrupted
	case errors.Is(err, domain.ErrMissingReport):
		return domain.ExitNoReport
	default:
		return domain.ExitError
	}
}

// reportFailure logs a single user-facing line for a failed run.
func reportFailure(logger *terminal.Logger, prID string, code domain.ExitCode, err error) {
	switch {
	case code == domain.ExitInterrupted:
		logger.Log("Review interrupted", terminal.StyleWarning)
	case code == domain.ExitNoReport:
		// The pipeline already logged which file is missing.
		logger.Logf(terminal.StyleDim, "%v", err)
	case errors.Is(err, github.ErrNoPRFound):
		logger.Logf(terminal.StyleError, "PR #%s not found", prID)
	case errors.Is(err, github.ErrAuthFailed):
		logger.Log("GitHub authentication failed. Run 'gh auth login' to authenticate.", terminal.StyleError)
	default:
		logger.Logf(terminal.StyleError, "%v", err)
	}
}
