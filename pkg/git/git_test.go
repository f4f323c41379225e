package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gitAvailable reports whether the git binary can be invoked at all.
func gitAvailable() bool {
	return exec.Command("git", "--version").Run() == nil
}

// initRepo creates a git repository with a configured identity in a
// temp dir and returns its path.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cmds := [][]string{
		{"git", "init"},
		{"git", "config", "user.email", "test@example.com"},
		{"git", "config", "user.name", "Test User"},
	}
	for _, args := range cmds {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "%v: %s", args, out)
	}
	return dir
}

func TestWorkingTreeStatusUnavailable(t *testing.T) {
	// A plain temp dir is not a repository.
	repo := New(t.TempDir())
	assert.Equal(t, StatusUnavailable, repo.WorkingTreeStatus())
}

func TestWorkingTreeStatus(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git is not available on system")
	}
	dir := initRepo(t)
	repo := New(dir)

	assert.Equal(t, StatusClean, repo.WorkingTreeStatus())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("hello\n"), 0644))
	assert.Equal(t, StatusDirty, repo.WorkingTreeStatus())
}

func TestCommitAndTag(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git is not available on system")
	}
	dir := initRepo(t)
	repo := New(dir)

	path := filepath.Join(dir, "package.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0.1"}`+"\n"), 0644))

	err := repo.CommitAndTag("chore: bump version to 1.0.1", "v1.0.1", []string{"package.json"})
	require.NoError(t, err)

	// Verify the commit message.
	logCmd := exec.Command("git", "log", "-1", "--pretty=%s")
	logCmd.Dir = dir
	out, err := logCmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "chore: bump version to 1.0.1", strings.TrimSpace(string(out)))

	// Verify the tag exists.
	tagCmd := exec.Command("git", "tag", "--list", "v1.0.1")
	tagCmd.Dir = dir
	out, err = tagCmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "v1.0.1", strings.TrimSpace(string(out)))
}

func TestCommitAndTagFailure(t *testing.T) {
	if !gitAvailable() {
		t.Skip("git is not available on system")
	}
	dir := initRepo(t)
	repo := New(dir)

	// Committing a nonexistent path fails at the add step.
	err := repo.CommitAndTag("msg", "v0.0.1", []string{"does-not-exist.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git add")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "clean", StatusClean.String())
	assert.Equal(t, "dirty", StatusDirty.String())
	assert.Equal(t, "unavailable", StatusUnavailable.String())
}
