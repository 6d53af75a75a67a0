package git

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Remotes returns the names of the configured remotes.
func (r *Repo) Remotes(ctx context.Context) ([]string, error) {
	out, err := r.git(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// HasRemote reports whether a remote with exactly this name is configured.
func (r *Repo) HasRemote(ctx context.Context, name string) (bool, error) {
	names, err := r.Remotes(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

// AddRemote adds a new git remote.
func (r *Repo) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.git(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote '%s': %w", name, err)
	}
	return nil
}

// Fetch fetches from remote. An empty remote runs a plain `git fetch`,
// which uses the current branch's upstream or origin.
func (r *Repo) Fetch(ctx context.Context, remote string) error {
	args := []string{"fetch"}
	if remote != "" {
		args = append(args, remote)
	}
	if _, err := r.git(ctx, args...); err != nil {
		if remote == "" {
			return fmt.Errorf("failed to fetch: %w", err)
		}
		return fmt.Errorf("failed to fetch from '%s': %w", remote, err)
	}
	return nil
}
