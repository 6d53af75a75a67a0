// Package git provides the git operations gpr needs: repository discovery,
// remote registration, fetching, and worktree management.
package git

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/richhaase/gemini-pr-review/internal/shell"
)

// Repo is a git repository rooted at Root. All commands run from Root.
type Repo struct {
	Root   string
	runner shell.Runner
}

// New returns a Repo for an already-known root directory.
func New(root string, runner shell.Runner) *Repo {
	return &Repo{Root: root, runner: runner}
}

// Open locates the top level of the repository containing dir.
// An empty dir means the current working directory.
func Open(ctx context.Context, runner shell.Runner, dir string) (*Repo, error) {
	out, err := runner.Run(ctx, dir, "git", "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("not inside a git repository: %w", err)
	}
	return New(out, runner), nil
}

// Name returns the repository directory name, used for worktree and fork URL naming.
func (r *Repo) Name() string {
	return filepath.Base(r.Root)
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	return r.runner.Run(ctx, r.Root, "git", args...)
}
