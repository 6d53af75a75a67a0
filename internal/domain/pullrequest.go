package domain

// ChangedFile is a file touched by a pull request.
type ChangedFile struct {
	Path string
}

// PullRequest holds the metadata gpr needs from the hosting service.
// It is fetched once per run and not modified afterwards.
type PullRequest struct {
	ID        string
	Branch    string // head branch name, e.g. "feature/x"
	Title     string
	IsFork    bool
	ForkOwner string // login of the head repository owner; empty if not reported
	Files     []ChangedFile
}

// FilePaths returns the changed file paths in hosting-service order.
func (p *PullRequest) FilePaths() []string {
	paths := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		paths = append(paths, f.Path)
	}
	return paths
}
