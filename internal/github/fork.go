package github

import "fmt"

// Default fork remote conventions.
const (
	DefaultHost         = "github.com"
	DefaultRemotePrefix = "fork-"
)

// ForkRemote describes the git remote that tracks a PR author's fork.
type ForkRemote struct {
	Owner      string // fork owner login, e.g. "yunidbauza"
	RemoteName string // e.g. "fork-yunidbauza"
	URL        string // e.g. "git@github.com:yunidbauza/repo.git"
}

// NewForkRemote derives the remote for owner's fork of repoName.
// The fork is assumed to keep the upstream repository name; renamed forks
// resolve to a URL that does not exist and fail at fetch time.
func NewForkRemote(host, prefix, owner, repoName string) ForkRemote {
	return ForkRemote{
		Owner:      owner,
		RemoteName: prefix + owner,
		URL:        fmt.Sprintf("git@%s:%s/%s.git", host, owner, repoName),
	}
}
