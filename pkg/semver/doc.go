// Package semver parses, formats, and bumps semantic versions of the
// shape major.minor.patch with an optional -prerelease suffix.
//
// The package deliberately stops short of a general semver library:
// there is no comparison, no range handling, and no prerelease
// precedence ordering. It models exactly what a version-bump tool
// needs: a structured Version value, a round-tripping Parse/String
// pair, and a Bump function implementing the conventional bump rules
// (major, minor, patch, premajor, preminor, prepatch, prerelease).
package semver
