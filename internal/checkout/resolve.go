package checkout

import (
	"context"
	"fmt"

	"github.com/richhaase/gemini-pr-review/internal/git"
	"github.com/richhaase/gemini-pr-review/internal/github"
	"github.com/richhaase/gemini-pr-review/internal/terminal"
)

// Resolver turns a BranchSource into a branch reference that exists locally.
type Resolver struct {
	Repo         *git.Repo
	Host         string // hosting service SSH host for fork URLs
	RemotePrefix string // prepended to the fork owner to name its remote
	Logger       *terminal.Logger
}

// NewResolver creates a Resolver using the default host and remote prefix.
func NewResolver(repo *git.Repo, logger *terminal.Logger) *Resolver {
	return &Resolver{
		Repo:         repo,
		Host:         github.DefaultHost,
		RemotePrefix: github.DefaultRemotePrefix,
		Logger:       logger,
	}
}

// Resolve fetches whatever the source needs and returns its branch reference.
//
// Direct sources fetch the default remote and resolve to the branch name.
// Fork sources register the fork remote if it is missing, always fetch it,
// and resolve to "<remote>/<branch>". Registration happens before the fetch;
// a failed fetch leaves the registered remote in place.
func (r *Resolver) Resolve(ctx context.Context, src BranchSource) (string, error) {
	if src.Kind == SourceDirect {
		if err := r.Repo.Fetch(ctx, ""); err != nil {
			return "", err
		}
		return src.Branch, nil
	}

	fork := r.ForkRemote(src.Owner)
	r.Logger.Logf(terminal.StyleInfo, "Fork owner: %s", fork.Owner)
	r.Logger.Logf(terminal.StyleInfo, "Fork remote: %s", fork.RemoteName)

	if _, err := r.EnsureRemote(ctx, fork); err != nil {
		return "", err
	}

	r.Logger.Logf(terminal.StyleInfo, "Fetching from fork remote: %s", fork.RemoteName)
	if err := r.Repo.Fetch(ctx, fork.RemoteName); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", fork.RemoteName, src.Branch), nil
}

// ForkRemote returns the remote naming for owner's fork of this repository.
func (r *Resolver) ForkRemote(owner string) github.ForkRemote {
	return github.NewForkRemote(r.Host, r.RemotePrefix, owner, r.Repo.Name())
}

// EnsureRemote adds the fork remote unless a remote with the same name is
// already configured. It reports whether a remote was added. An existing
// remote is kept as-is even if its URL differs.
func (r *Resolver) EnsureRemote(ctx context.Context, fork github.ForkRemote) (bool, error) {
	exists, err := r.Repo.HasRemote(ctx, fork.RemoteName)
	if err != nil {
		return false, err
	}
	if exists {
		r.Logger.Logf(terminal.StyleDim, "Remote %s already configured", fork.RemoteName)
		return false, nil
	}

	r.Logger.Logf(terminal.StyleInfo, "Adding fork remote: %s", fork.URL)
	if err := r.Repo.AddRemote(ctx, fork.RemoteName, fork.URL); err != nil {
		return false, err
	}
	return true, nil
}
