package git

import (
	"context"
	"fmt"
)

// AddWorktree checks out ref into a new worktree at path.
func (r *Repo) AddWorktree(ctx context.Context, path, ref string) error {
	if _, err := r.git(ctx, "worktree", "add", path, ref); err != nil {
		return fmt.Errorf("failed to create worktree for '%s': %w", ref, err)
	}
	return nil
}

// RemoveWorktree force-removes the worktree at path, discarding local changes.
func (r *Repo) RemoveWorktree(ctx context.Context, path string) error {
	if _, err := r.git(ctx, "worktree", "remove", path, "--force"); err != nil {
		return fmt.Errorf("failed to remove worktree %s: %w", path, err)
	}
	return nil
}

// HeadCommit returns the commit checked out in dir.
func (r *Repo) HeadCommit(ctx context.Context, dir string) (string, error) {
	out, err := r.runner.Run(ctx, dir, "git", "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD in %s: %w", dir, err)
	}
	return out, nil
}

// ResolveCommit returns the commit a ref points to.
func (r *Repo) ResolveCommit(ctx context.Context, ref string) (string, error) {
	out, err := r.git(ctx, "rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("failed to resolve '%s': %w", ref, err)
	}
	return out, nil
}
