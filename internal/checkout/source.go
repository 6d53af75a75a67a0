package checkout

import (
	"fmt"

	"github.com/richhaase/gemini-pr-review/internal/domain"
)

// SourceKind identifies where a PR's head branch lives.
type SourceKind int

const (
	// SourceDirect is a branch in the primary repository.
	SourceDirect SourceKind = iota
	// SourceFork is a branch in a fork owned by another account.
	SourceFork
)

func (k SourceKind) String() string {
	if k == SourceFork {
		return "fork"
	}
	return "direct"
}

// BranchSource is the tagged variant Direct(branch) | Fork(owner, branch).
type BranchSource struct {
	Kind   SourceKind
	Branch string
	Owner  string // set only for SourceFork
}

// Direct returns a source for a branch in the primary repository.
func Direct(branch string) BranchSource {
	return BranchSource{Kind: SourceDirect, Branch: branch}
}

// Fork returns a source for a branch in owner's fork.
func Fork(owner, branch string) BranchSource {
	return BranchSource{Kind: SourceFork, Branch: branch, Owner: owner}
}

// SourceFor classifies a pull request. A fork PR without an owner login is
// rejected with domain.ErrMalformedPullRequest.
func SourceFor(pr *domain.PullRequest) (BranchSource, error) {
	if !pr.IsFork {
		return Direct(pr.Branch), nil
	}
	if pr.ForkOwner == "" {
		return BranchSource{}, fmt.Errorf("%w: PR #%s is from a fork but has no head repository owner",
			domain.ErrMalformedPullRequest, pr.ID)
	}
	return Fork(pr.ForkOwner, pr.Branch), nil
}
