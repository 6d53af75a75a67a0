package checkout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/richhaase/gemini-pr-review/internal/git"
	"github.com/richhaase/gemini-pr-review/internal/terminal"
)

// DefaultDir is the directory under the repository root that holds review worktrees.
const DefaultDir = "temp"

// Path returns the worktree location for branch:
// <repoRoot>/<dir>/<repoName>-<branch with "/" replaced by "-">.
func Path(repoRoot, dir, repoName, branch string) string {
	safeBranch := strings.ReplaceAll(branch, "/", "-")
	return filepath.Join(repoRoot, dir, fmt.Sprintf("%s-%s", repoName, safeBranch))
}

// Action is what Prepare did to the worktree directory.
type Action int

const (
	// ActionCreate added a new worktree where none existed.
	ActionCreate Action = iota
	// ActionRecreate removed an existing worktree and added it again.
	ActionRecreate
	// ActionReuse left an existing worktree untouched.
	ActionReuse
)

func (a Action) String() string {
	switch a {
	case ActionRecreate:
		return "recreate"
	case ActionReuse:
		return "reuse"
	default:
		return "create"
	}
}

// planWorktree is the reuse × exists decision table.
func planWorktree(reuse, exists bool) Action {
	switch {
	case !exists:
		return ActionCreate
	case reuse:
		return ActionReuse
	default:
		return ActionRecreate
	}
}

// Handle is a prepared worktree.
type Handle struct {
	Path   string
	Ref    string
	Action Action
}

// Manager prepares review worktrees under Repo.Root/Dir.
type Manager struct {
	Repo   *git.Repo
	Dir    string
	Logger *terminal.Logger
}

// NewManager creates a Manager using DefaultDir.
func NewManager(repo *git.Repo, logger *terminal.Logger) *Manager {
	return &Manager{Repo: repo, Dir: DefaultDir, Logger: logger}
}

// PathFor returns the worktree path for branch.
func (m *Manager) PathFor(branch string) string {
	return Path(m.Repo.Root, m.Dir, m.Repo.Name(), branch)
}

// Prepare makes sure the worktree for branch exists and, unless reuse is set
// and the directory already exists, has ref freshly checked out. A reused
// worktree may be stale relative to ref.
func (m *Manager) Prepare(ctx context.Context, branch, ref string, reuse bool) (*Handle, error) {
	path := m.PathFor(branch)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create worktree directory: %w", err)
	}

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}

	action := planWorktree(reuse, exists)
	switch action {
	case ActionReuse:
		m.Logger.Log("Using existing worktree...", terminal.StyleInfo)
		m.warnIfStale(ctx, path, ref)
	case ActionRecreate:
		m.Logger.Log("Removing existing worktree...", terminal.StyleInfo)
		if err := m.Repo.RemoveWorktree(ctx, path); err != nil {
			return nil, err
		}
		fallthrough
	case ActionCreate:
		m.Logger.Logf(terminal.StyleInfo, "Creating worktree from: %s", ref)
		if err := m.Repo.AddWorktree(ctx, path, ref); err != nil {
			return nil, err
		}
	}

	return &Handle{Path: path, Ref: ref, Action: action}, nil
}

// warnIfStale logs a warning when a reused worktree is not at ref's commit.
// Reuse never fails, so lookup errors are only shown in verbose mode.
func (m *Manager) warnIfStale(ctx context.Context, path, ref string) {
	head, err := m.Repo.HeadCommit(ctx, path)
	if err != nil {
		m.Logger.Debugf("Could not read worktree HEAD: %v", err)
		return
	}
	want, err := m.Repo.ResolveCommit(ctx, ref)
	if err != nil {
		m.Logger.Debugf("Could not resolve %s: %v", ref, err)
		return
	}
	if head != want {
		m.Logger.Logf(terminal.StyleWarning, "Existing worktree is at %s but %s is at %s; review may be stale",
			shortSHA(head), ref, shortSHA(want))
	}
}

func shortSHA(sha string) string {
	if len(sha) > 8 {
		return sha[:8]
	}
	return sha
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check worktree path %s: %w", path, err)
}
