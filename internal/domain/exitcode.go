// Package domain provides core types for the PR review pipeline.
package domain

// ExitCode represents the exit status of a gpr run.
type ExitCode int

const (
	// ExitSuccess indicates the report was produced and relocated.
	ExitSuccess ExitCode = 0
	// ExitError indicates the run aborted on a command, metadata, or config failure.
	ExitError ExitCode = 1
	// ExitNoReport indicates the review agent exited without writing its report.
	ExitNoReport ExitCode = 2
	// ExitInterrupted indicates the run was interrupted by a signal.
	ExitInterrupted ExitCode = 130
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}
