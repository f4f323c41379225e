// Package git wraps the git command line for the few operations a
// version bump needs: a working-tree cleanliness check and a
// stage/commit/tag sequence. Everything here is best-effort from the
// caller's point of view; a missing git binary or a non-repository
// directory surfaces as StatusUnavailable rather than an error.
package git

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Status reports the state of the working tree as an explicit variant
// rather than a boolean, so callers branch on each case.
type Status int

const (
	// StatusClean means git is usable and reports no pending changes.
	StatusClean Status = iota
	// StatusDirty means git reports uncommitted changes.
	StatusDirty
	// StatusUnavailable means git could not be invoked at all: not
	// installed, or the directory is not a repository.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusDirty:
		return "dirty"
	case StatusUnavailable:
		return "unavailable"
	}
	return "unknown"
}

// Repo runs git commands rooted at Dir.
type Repo struct {
	Dir string
}

// New returns a Repo rooted at dir.
func New(dir string) *Repo {
	return &Repo{Dir: dir}
}

// WorkingTreeStatus queries git for pending changes.
func (r *Repo) WorkingTreeStatus() Status {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		return StatusUnavailable
	}
	if len(bytes.TrimSpace(out)) > 0 {
		return StatusDirty
	}
	return StatusClean
}

// CommitAndTag stages the given paths, commits with message, and
// creates a lightweight tag. The first failing command aborts the
// sequence; the caller decides how fatal that is.
func (r *Repo) CommitAndTag(message, tag string, paths []string) error {
	addArgs := append([]string{"add"}, paths...)
	if err := r.run(addArgs...); err != nil {
		return err
	}
	if err := r.run("commit", "-m", message); err != nil {
		return err
	}
	return r.run("tag", tag)
}

func (r *Repo) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return errors.Wrapf(err, "git %s: %s", args[0], detail)
		}
		return errors.Wrapf(err, "git %s", args[0])
	}
	return nil
}
