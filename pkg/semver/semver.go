package semver

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// ErrInvalidFormat is returned when a version string does not match the
// major.minor.patch[-prerelease] grammar.
var ErrInvalidFormat = errors.New("invalid version format")

// versionPattern matches exactly three dot-separated numeric components
// with an optional prerelease suffix after a hyphen. No "v" prefix is
// accepted; the manifest stores bare versions.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:-(\S+))?$`)

// Version is a structured semantic version. An empty Prerelease means a
// final (non-pre-release) version.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
}

// Parse converts a version string into a Version. The whole string must
// match the grammar; no partial parse is accepted.
func Parse(text string) (Version, error) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "version %q", text)
	}
	var v Version
	var err error
	// The pattern guarantees pure decimal digits; Atoi can only fail on
	// overflow-sized components.
	if v.Major, err = strconv.Atoi(m[1]); err != nil {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "version %q", text)
	}
	if v.Minor, err = strconv.Atoi(m[2]); err != nil {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "version %q", text)
	}
	if v.Patch, err = strconv.Atoi(m[3]); err != nil {
		return Version{}, errors.Wrapf(ErrInvalidFormat, "version %q", text)
	}
	v.Prerelease = m[4]
	return v, nil
}

// String renders the canonical form: major.minor.patch, with
// "-prerelease" appended when a prerelease is set. Parse(v.String()) == v
// for every valid v.
func (v Version) String() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		return base + "-" + v.Prerelease
	}
	return base
}

// IsValid reports whether text parses as a version.
func IsValid(text string) bool {
	_, err := Parse(text)
	return err == nil
}
