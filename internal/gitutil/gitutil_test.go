package gitutil

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireGit skips the test when no git binary is on PATH.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// initRepo creates a git repository in dir with one committed file and
// returns the tracked file's name.
func initRepo(t *testing.T, dir string) string {
	t.Helper()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tracked.txt"), []byte("hello\n"), 0644))
	run("add", "tracked.txt")
	return "tracked.txt"
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir))

	// Any .git entry counts as a marker, valid repository or not.
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0755))
	assert.True(t, IsRepo(dir))
}

func TestIsRepoFileMarker(t *testing.T) {
	// Worktrees use a .git file instead of a directory.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere\n"), 0644))
	assert.True(t, IsRepo(dir))
}

func TestTrackedFiles(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	name := initRepo(t, dir)

	// An untracked file must not appear in the set.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x\n"), 0644))

	tracked, err := TrackedFiles(context.Background(), dir)
	require.NoError(t, err)

	assert.Contains(t, tracked, filepath.Join(dir, name))
	assert.NotContains(t, tracked, filepath.Join(dir, "untracked.txt"))
}

func TestTrackedFilesNotARepository(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()

	_, err := TrackedFiles(context.Background(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "git ls-files")
	assert.Contains(t, err.Error(), "exited with code")
}
