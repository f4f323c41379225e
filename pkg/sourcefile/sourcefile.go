// Package sourcefile performs best-effort version rewrites inside
// source text files.
//
// The primary target is a version-returning literal of the shape
//
//	return "1.2.3"
//
// Only the quoted literal is replaced; the rest of the file stays
// byte-identical. A missing file or an absent pattern is a skip, not an
// error: keeping a source annotation in sync is a courtesy, not a
// contract.
package sourcefile

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	modsemver "golang.org/x/mod/semver"
)

// Outcome classifies the result of a rewrite attempt.
type Outcome int

const (
	// Updated means the literal was found and rewritten.
	Updated Outcome = iota
	// SkippedMissing means the target file does not exist.
	SkippedMissing
	// SkippedNoMatch means the file exists but no pattern matched.
	SkippedNoMatch
)

func (o Outcome) String() string {
	switch o {
	case Updated:
		return "updated"
	case SkippedMissing:
		return "skipped (file missing)"
	case SkippedNoMatch:
		return "skipped (no version literal found)"
	}
	return "unknown"
}

// returnLiteralPattern matches a returned quoted version-like literal:
// dotted numerics with an optional trailing qualifier. Loose on
// purpose; the surrounding return keyword is the real anchor.
var returnLiteralPattern = regexp.MustCompile(`(return\s+")(\d+(?:\.\d+)+(?:[-+][0-9A-Za-z.-]+)?)(")`)

// extraFilePatterns mirror common version declarations in manifests and
// scripts: a JSON field, a TOML field, and a VERSION assignment. Used
// for the opt-in extra bump files, where the file shape is unknown.
var extraFilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^([ \t]*"version"[ \t]*:[ \t]*")v?([^"]+)(")`),
	regexp.MustCompile(`(?m)^([ \t]*version[ \t]*=[ \t]*")v?([^"]+)(")`),
	regexp.MustCompile(`(?mi)^([ \t]*VERSION[ \t]*[:=][ \t]*["']?)v?(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)(["']?)`),
}

// UpdateVersionLiteral rewrites the first returned version literal in
// the file at path. Missing files and unmatched files are reported
// through the Outcome, never as errors.
func UpdateVersionLiteral(path, newVersion string) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SkippedMissing, nil
		}
		return SkippedMissing, errors.Wrapf(err, "reading source file %s", path)
	}

	loc := returnLiteralPattern.FindSubmatchIndex(data)
	if loc == nil {
		return SkippedNoMatch, nil
	}

	out := splice(data, loc, newVersion)
	info, err := os.Stat(path)
	if err != nil {
		return SkippedNoMatch, errors.Wrapf(err, "stat source file %s", path)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return SkippedNoMatch, errors.Wrapf(err, "writing source file %s", path)
	}
	return Updated, nil
}

// BumpExtraFile rewrites the first recognized version declaration in an
// arbitrary file. Candidates are validated as semver before being
// accepted so that stray dotted numbers are left alone.
func BumpExtraFile(path, newVersion string) (Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return SkippedMissing, nil
		}
		return SkippedMissing, errors.Wrapf(err, "reading file %s", path)
	}

	for _, pattern := range extraFilePatterns {
		loc := pattern.FindSubmatchIndex(data)
		if loc == nil {
			continue
		}
		candidate := string(data[loc[4]:loc[5]])
		if !modsemver.IsValid("v" + candidate) {
			continue
		}
		out := splice(data, loc, newVersion)
		info, err := os.Stat(path)
		if err != nil {
			return SkippedNoMatch, errors.Wrapf(err, "stat file %s", path)
		}
		if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
			return SkippedNoMatch, errors.Wrapf(err, "writing file %s", path)
		}
		return Updated, nil
	}
	return SkippedNoMatch, nil
}

// splice replaces the second capture group of a three-group match with
// newVersion, leaving every other byte untouched.
func splice(data []byte, loc []int, newVersion string) []byte {
	var out []byte
	out = append(out, data[:loc[4]]...)
	out = append(out, newVersion...)
	out = append(out, data[loc[5]:]...)
	return out
}
