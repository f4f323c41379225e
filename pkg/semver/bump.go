package semver

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind names a bump rule.
type Kind string

// Supported bump kinds.
const (
	KindMajor      Kind = "major"
	KindMinor      Kind = "minor"
	KindPatch      Kind = "patch"
	KindPremajor   Kind = "premajor"
	KindPreminor   Kind = "preminor"
	KindPrepatch   Kind = "prepatch"
	KindPrerelease Kind = "prerelease"
)

// PrereleaseSeed is the prerelease attached by the pre* kinds and by the
// prerelease fallback branch.
const PrereleaseSeed = "alpha.0"

// ErrUnknownKind is returned by ParseKind for tokens outside the
// enumeration.
var ErrUnknownKind = errors.New("unknown bump kind")

// ErrUnsupportedKind is returned by Bump for a Kind value outside the
// enumeration. Unreachable through ParseKind, but Bump stays total.
var ErrUnsupportedKind = errors.New("unsupported bump kind")

// Kinds returns all bump kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindMajor, KindMinor, KindPatch,
		KindPremajor, KindPreminor, KindPrepatch,
		KindPrerelease,
	}
}

// ParseKind converts a command token into a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if s == string(k) {
			return k, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownKind, "%q", s)
}

// Bump applies the named rule to cur and returns the successor version.
// It is a pure function; cur is never modified.
func Bump(cur Version, kind Kind) (Version, error) {
	next := cur
	switch kind {
	case KindMajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
		next.Prerelease = ""
	case KindMinor:
		next.Minor++
		next.Patch = 0
		next.Prerelease = ""
	case KindPatch:
		next.Patch++
		next.Prerelease = ""
	case KindPremajor:
		next.Major++
		next.Minor = 0
		next.Patch = 0
		next.Prerelease = PrereleaseSeed
	case KindPreminor:
		next.Minor++
		next.Patch = 0
		next.Prerelease = PrereleaseSeed
	case KindPrepatch:
		next.Patch++
		next.Prerelease = PrereleaseSeed
	case KindPrerelease:
		if label, n, ok := splitPrerelease(cur.Prerelease); ok {
			next.Prerelease = label + "." + strconv.Itoa(n+1)
		} else {
			// No prerelease, or a shape other than <label>.<integer>:
			// fall back to a plain patch bump seeded with a fresh
			// prerelease counter.
			next.Patch++
			next.Prerelease = PrereleaseSeed
		}
	default:
		return Version{}, errors.Wrapf(ErrUnsupportedKind, "%q", kind)
	}
	return next, nil
}

// splitPrerelease decomposes a prerelease of the exact two-part shape
// <label>.<integer> into its label and counter.
func splitPrerelease(pre string) (label string, n int, ok bool) {
	if pre == "" {
		return "", 0, false
	}
	parts := strings.Split(pre, ".")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 0 {
		return "", 0, false
	}
	return parts[0], n, true
}
