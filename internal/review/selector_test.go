package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickArea_Heuristic(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"cli majority", []string{"cli/a.go", "cli/b.go", "webapp/c.ts"}, "cli"},
		{"webapp only", []string{"webapp/a.ts"}, "webapp"},
		{"no files", nil, "webapp"},
		{"tie goes to fallback", []string{"cli/a.go", "webapp/b.ts"}, "webapp"},
		{"unrelated paths ignored", []string{"docs/readme.md", "cli/a.go"}, "cli"},
		{"prefix must be a directory", []string{"client/a.go", "cli.go"}, "webapp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			areas := DefaultAreas()
			assert.Equal(t, tt.want, PickArea(CountChanges(tt.paths, areas), areas))
		})
	}
}

func TestCountChanges(t *testing.T) {
	c := CountChanges([]string{"cli/a.go", "cli/sub/b.go", "webapp/c.ts", "README.md"}, DefaultAreas())
	assert.Equal(t, Counts{Primary: 2, Fallback: 1}, c)
}

func TestCountChanges_CustomAreas(t *testing.T) {
	areas := Areas{Primary: "server", Fallback: "ui"}
	c := CountChanges([]string{"server/main.go", "ui/app.tsx", "ui/index.ts", "cli/x.go"}, areas)

	assert.Equal(t, Counts{Primary: 1, Fallback: 2}, c)
	assert.Equal(t, "ui", PickArea(c, areas))
}

func makeWorktree(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
	return root
}

func TestSelect_HeuristicDirExists(t *testing.T) {
	wt := makeWorktree(t, "cli", "webapp")

	s := Select(wt, "", []string{"cli/a.go", "cli/b.go", "webapp/c.ts"}, DefaultAreas())

	assert.Equal(t, filepath.Join(wt, "cli"), s.Dir)
	assert.Equal(t, "cli", s.Wanted)
	assert.False(t, s.Override)
	assert.False(t, s.FellBack)
	assert.Equal(t, Counts{Primary: 2, Fallback: 1}, s.Counts)
}

func TestSelect_HeuristicDirMissingFallsBackToRoot(t *testing.T) {
	wt := makeWorktree(t)

	s := Select(wt, "", nil, DefaultAreas())

	assert.Equal(t, wt, s.Dir)
	assert.Equal(t, "webapp", s.Wanted)
	assert.True(t, s.FellBack)
}

func TestSelect_OverrideWins(t *testing.T) {
	wt := makeWorktree(t, "cli", "docs")

	s := Select(wt, "docs", []string{"cli/a.go", "cli/b.go"}, DefaultAreas())

	assert.Equal(t, filepath.Join(wt, "docs"), s.Dir)
	assert.True(t, s.Override)
	assert.False(t, s.FellBack)
	assert.Equal(t, Counts{}, s.Counts, "heuristic is not evaluated for overrides")
}

func TestSelect_OverrideMissingFallsBackWithoutFailing(t *testing.T) {
	wt := makeWorktree(t, "cli")

	s := Select(wt, "does-not-exist", []string{"cli/a.go"}, DefaultAreas())

	assert.Equal(t, wt, s.Dir, "missing override falls back to the worktree root, not the heuristic")
	assert.Equal(t, "does-not-exist", s.Wanted)
	assert.True(t, s.Override)
	assert.True(t, s.FellBack)
}

func TestSelect_OverrideNestedPath(t *testing.T) {
	wt := makeWorktree(t, "services/api")

	s := Select(wt, "services/api", nil, DefaultAreas())

	assert.Equal(t, filepath.Join(wt, "services", "api"), s.Dir)
	assert.False(t, s.FellBack)
}

func TestSelect_AbsoluteOverride(t *testing.T) {
	wt := makeWorktree(t)
	elsewhere := t.TempDir()

	s := Select(wt, elsewhere, nil, DefaultAreas())

	assert.Equal(t, elsewhere, s.Dir)
	assert.False(t, s.FellBack)
}

func TestSelect_FileIsNotADirectory(t *testing.T) {
	wt := makeWorktree(t)
	require.NoError(t, os.WriteFile(filepath.Join(wt, "cli"), []byte("not a dir"), 0644))

	s := Select(wt, "cli", nil, DefaultAreas())

	assert.Equal(t, wt, s.Dir)
	assert.True(t, s.FellBack)
}
