// Package review picks the directory the review agent runs in, builds its
// instructions, and moves the report it writes.
package review

import (
	"os"
	"path/filepath"
	"strings"
)

// Default review areas: top-level directories of the reviewed repository.
const (
	DefaultPrimaryArea  = "cli"
	DefaultFallbackArea = "webapp"
)

// Areas are the two top-level directories the selector chooses between.
// Fallback wins ties, including the no-changes case.
type Areas struct {
	Primary  string
	Fallback string
}

// DefaultAreas returns the cli/webapp pair.
func DefaultAreas() Areas {
	return Areas{Primary: DefaultPrimaryArea, Fallback: DefaultFallbackArea}
}

// Counts holds the number of changed files under each area.
type Counts struct {
	Primary  int
	Fallback int
}

// CountChanges counts paths under each area. A path counts for at most one area.
func CountChanges(paths []string, areas Areas) Counts {
	var c Counts
	primary := areas.Primary + "/"
	fallback := areas.Fallback + "/"
	for _, p := range paths {
		switch {
		case strings.HasPrefix(p, primary):
			c.Primary++
		case strings.HasPrefix(p, fallback):
			c.Fallback++
		}
	}
	return c
}

// PickArea returns the primary area only when it has strictly more changes.
func PickArea(c Counts, areas Areas) string {
	if c.Primary > c.Fallback {
		return areas.Primary
	}
	return areas.Fallback
}

// Selection is the outcome of Select.
type Selection struct {
	Dir      string // directory the agent runs in
	Wanted   string // override or picked area, before the existence check
	Override bool   // Wanted came from an explicit override
	Counts   Counts // zero when Override is set
	FellBack bool   // Wanted did not exist; Dir is the worktree root
}

// Select chooses the review directory inside worktree. A non-empty override
// always wins over the change-count heuristic; relative overrides are
// resolved against the worktree. If the chosen directory does not exist the
// worktree root is used instead. Select never fails.
func Select(worktree, override string, paths []string, areas Areas) Selection {
	var s Selection
	if override != "" {
		s.Wanted = override
		s.Override = true
	} else {
		s.Counts = CountChanges(paths, areas)
		s.Wanted = PickArea(s.Counts, areas)
	}

	dir := s.Wanted
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(worktree, dir)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		s.Dir = worktree
		s.FellBack = true
		return s
	}

	s.Dir = dir
	return s
}
