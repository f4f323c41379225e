// Package manifest reads and rewrites the version field of a JSON
// manifest file (a package.json-style document).
//
// Reads go through a JSON decoder so a malformed document or a missing
// field is detected up front. Writes deliberately do not re-marshal the
// document: only the matched version field is spliced in the raw bytes,
// so key order, indentation, and every other byte of the manifest
// survive the rewrite.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// versionFieldPattern matches a top-level-looking "version" field: at
// most two columns of indentation, the way package.json formats it.
var versionFieldPattern = regexp.MustCompile(`(?m)^([ \t]{0,2}"version"[ \t]*:[ \t]*")([^"]*)(")`)

// ReadError reports a failure to load the version from a manifest.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading manifest %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the version to a manifest.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing manifest %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadVersion loads the manifest and returns the raw text of its
// top-level version field.
func ReadVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", &ReadError{Path: path, Err: err}
	}

	raw, ok := doc["version"]
	if !ok {
		return "", &ReadError{Path: path, Err: fmt.Errorf("no version field")}
	}
	var version string
	if err := json.Unmarshal(raw, &version); err != nil {
		return "", &ReadError{Path: path, Err: fmt.Errorf("version field is not a string: %w", err)}
	}
	return version, nil
}

// WriteVersion rewrites only the version field of the manifest in
// place, preserving every other byte, and ensures the file ends with a
// newline.
func WriteVersion(path, newVersion string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	loc := versionFieldPattern.FindSubmatchIndex(data)
	if loc == nil {
		return &WriteError{Path: path, Err: fmt.Errorf("no version field")}
	}

	// Splice the new version between the captured prefix and the
	// closing quote. loc[3] ends the prefix group, loc[5] ends the old
	// version group.
	var out []byte
	out = append(out, data[:loc[3]]...)
	out = append(out, newVersion...)
	out = append(out, data[loc[5]:]...)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	info, err := os.Stat(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
