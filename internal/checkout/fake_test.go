package checkout

import (
	"context"
	"os"
	"slices"
	"strings"

	"github.com/richhaase/gemini-pr-review/internal/shell"
)

// fakeGit simulates the git commands used by Resolver and Manager.
// It keeps a remote list and creates/removes worktree directories so that
// repeated runs see the state earlier runs left behind.
type fakeGit struct {
	remotes []string
	calls   []string
	fail    map[string]string // cmdline prefix → stderr to fail with
	revs    map[string]string // rev-parse cmdline → output
}

func newFakeGit(remotes ...string) *fakeGit {
	return &fakeGit{remotes: remotes, fail: map[string]string{}, revs: map[string]string{}}
}

func (f *fakeGit) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	cmdline := shell.CommandLine(name, args...)
	f.calls = append(f.calls, cmdline)

	for prefix, stderr := range f.fail {
		if strings.HasPrefix(cmdline, prefix) {
			return "", &shell.CommandError{Command: name, Args: args, Dir: dir, Output: stderr}
		}
	}

	switch {
	case len(args) > 0 && args[0] == "rev-parse":
		return f.revs[cmdline], nil
	case cmdline == "git remote":
		return strings.Join(f.remotes, "\n"), nil
	case len(args) >= 4 && args[0] == "remote" && args[1] == "add":
		if slices.Contains(f.remotes, args[2]) {
			return "", &shell.CommandError{Command: name, Args: args, Output: "error: remote " + args[2] + " already exists."}
		}
		f.remotes = append(f.remotes, args[2])
	case len(args) >= 3 && args[0] == "worktree" && args[1] == "add":
		if err := os.MkdirAll(args[2], 0755); err != nil {
			return "", err
		}
	case len(args) >= 3 && args[0] == "worktree" && args[1] == "remove":
		if err := os.RemoveAll(args[2]); err != nil {
			return "", err
		}
	}
	return "", nil
}

// count returns how many recorded calls start with prefix.
func (f *fakeGit) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// index returns the position of the first call starting with prefix, or -1.
func (f *fakeGit) index(prefix string) int {
	for i, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}
