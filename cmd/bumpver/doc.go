// Command bumpver automates semantic version bumping for a project.
//
// It reads the current version from a JSON manifest (default
// "package.json"), bumps it according to a named rule, writes it back
// without disturbing any other byte of the manifest, rewrites a version
// literal in a source file (default "version.go") when one is present,
// and finally commits the change with the message
// "chore: bump version to <version>" and tags it "v<version>" when the
// git working tree is clean.
//
// Command usage:
//
//	bumpver <major|minor|patch|premajor|preminor|prepatch|prerelease> [flags]
//	bumpver current [-o text|json|yaml]
//	bumpver version
//
// Flags:
//
//	--manifest:    Path to the JSON manifest holding the version field.
//	--source-file: Source file whose version literal is kept in sync.
//	--bump-file:   Additional file to scan for a version declaration and
//	               bump. May be repeated.
//	--dry-run:     Compute and report the bump without writing anything.
//	--no-git:      Skip git integration entirely.
//	--no-color:    Disable colorized output.
//
// Examples:
//
//	# Bump the patch version (1.2.3 -> 1.2.4)
//	bumpver patch
//
//	# Start a prerelease from the next patch (1.0.0 -> 1.0.1-alpha.0)
//	bumpver prepatch
//
//	# Increment an existing prerelease (1.0.1-alpha.0 -> 1.0.1-alpha.1)
//	bumpver prerelease
//
//	# Preview a major bump without touching any file
//	bumpver major --dry-run
//
//	# Bump without committing or tagging
//	bumpver minor --no-git
//
//	# Keep extra files in sync
//	bumpver patch --bump-file Cargo.toml --bump-file VERSION.txt
//
// A .bumpver.yaml file in the working directory can set per-project
// defaults for the manifest path, source file, extra bump files, tag
// prefix, and commit message template. Flags win over the config file.
//
// The mutation steps are independent and not transactional: a commit or
// tag failure after the files were written is reported as a warning,
// and the bump itself still counts as successful.
package main
