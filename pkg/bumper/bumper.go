// Package bumper orchestrates a version bump across the manifest, the
// source annotation file, extra bump files, and git.
//
// The mutation sequence is deliberately non-transactional: each step
// reports its own outcome and nothing is rolled back. A failed commit
// after a successful manifest write leaves the bump applied; that is
// the accepted behavior, it matches what a human running the three
// steps by hand would get.
package bumper

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bumpver/bumpver/pkg/git"
	"github.com/bumpver/bumpver/pkg/manifest"
	"github.com/bumpver/bumpver/pkg/report"
	"github.com/bumpver/bumpver/pkg/semver"
	"github.com/bumpver/bumpver/pkg/sourcefile"
)

// versionPlaceholder is replaced with the new version inside the commit
// message template.
const versionPlaceholder = "{version}"

// SourceControl is the capability the bumper needs from a repository.
// *git.Repo satisfies it; tests substitute fakes.
type SourceControl interface {
	WorkingTreeStatus() git.Status
	CommitAndTag(message, tag string, paths []string) error
}

// Options configure a single bump run.
type Options struct {
	ManifestPath  string
	SourcePath    string
	BumpFiles     []string
	DryRun        bool
	NoGit         bool
	TagPrefix     string
	CommitMessage string // template; {version} expands to the new version
}

// Result records what a run did (or, for a dry run, would have done).
type Result struct {
	OldVersion   string
	NewVersion   string
	Kind         semver.Kind
	DryRun       bool
	UpdatedFiles []string
	Committed    bool
	Tag          string
}

// Bumper sequences a version bump.
type Bumper struct {
	opts Options
	rep  *report.Reporter
	repo SourceControl
}

// New returns a Bumper. repo may be nil when opts.NoGit is set.
func New(opts Options, rep *report.Reporter, repo SourceControl) *Bumper {
	if opts.TagPrefix == "" {
		opts.TagPrefix = "v"
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = "chore: bump version to " + versionPlaceholder
	}
	return &Bumper{opts: opts, rep: rep, repo: repo}
}

// Current reads and validates the version stored in the manifest.
func (b *Bumper) Current() (semver.Version, error) {
	raw, err := manifest.ReadVersion(b.opts.ManifestPath)
	if err != nil {
		return semver.Version{}, err
	}
	cur, err := semver.Parse(raw)
	if err != nil {
		return semver.Version{}, errors.Wrapf(err, "manifest %s", b.opts.ManifestPath)
	}
	return cur, nil
}

// Run performs the bump named by kind. Parsing and manifest I/O errors
// abort the run; the source rewrite, extra file rewrites, and git
// integration are best-effort and degrade to warnings.
func (b *Bumper) Run(kind semver.Kind) (Result, error) {
	res := Result{Kind: kind, DryRun: b.opts.DryRun}

	cur, err := b.Current()
	if err != nil {
		return res, err
	}
	res.OldVersion = cur.String()

	next, err := semver.Bump(cur, kind)
	if err != nil {
		return res, err
	}
	res.NewVersion = next.String()

	if b.opts.DryRun {
		b.rep.Infof("dry run: %s -> %s (%s); no files modified", res.OldVersion, res.NewVersion, kind)
		return res, nil
	}

	// Decide up front whether git integration is usable for this run,
	// before any file is touched.
	useGit := false
	if !b.opts.NoGit {
		switch b.repo.WorkingTreeStatus() {
		case git.StatusClean:
			useGit = true
		case git.StatusDirty:
			b.rep.Warnf("working tree has uncommitted changes; skipping commit and tag")
		case git.StatusUnavailable:
			b.rep.Warnf("git is unavailable; skipping commit and tag")
		}
	}

	if err := manifest.WriteVersion(b.opts.ManifestPath, res.NewVersion); err != nil {
		return res, err
	}
	res.UpdatedFiles = append(res.UpdatedFiles, b.opts.ManifestPath)

	if b.opts.SourcePath != "" {
		outcome, err := sourcefile.UpdateVersionLiteral(b.opts.SourcePath, res.NewVersion)
		switch {
		case err != nil:
			b.rep.Warnf("source file %s: %v", b.opts.SourcePath, err)
		case outcome == sourcefile.Updated:
			res.UpdatedFiles = append(res.UpdatedFiles, b.opts.SourcePath)
		default:
			b.rep.Infof("source file %s: %s", b.opts.SourcePath, outcome)
		}
	}

	for _, path := range b.opts.BumpFiles {
		outcome, err := sourcefile.BumpExtraFile(path, res.NewVersion)
		switch {
		case err != nil:
			b.rep.Warnf("bump file %s: %v", path, err)
		case outcome == sourcefile.Updated:
			res.UpdatedFiles = append(res.UpdatedFiles, path)
		default:
			b.rep.Infof("bump file %s: %s", path, outcome)
		}
	}

	if useGit {
		message := strings.ReplaceAll(b.opts.CommitMessage, versionPlaceholder, res.NewVersion)
		tag := b.opts.TagPrefix + res.NewVersion
		if err := b.repo.CommitAndTag(message, tag, res.UpdatedFiles); err != nil {
			// Files are already mutated; the bump itself succeeded.
			b.rep.Warnf("commit/tag failed: %v", err)
		} else {
			res.Committed = true
			res.Tag = tag
		}
	}

	return res, nil
}
