// Package config loads optional per-project defaults from a
// .bumpver.yaml file in the working directory. Flags override config
// values; config values override the built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FileName is the per-project config file looked up in the working
// directory.
const FileName = ".bumpver.yaml"

// Config holds per-project defaults.
type Config struct {
	Manifest      string   `yaml:"manifest"`
	SourceFile    string   `yaml:"source_file"`
	BumpFiles     []string `yaml:"bump_files"`
	TagPrefix     string   `yaml:"tag_prefix"`
	CommitMessage string   `yaml:"commit_message"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Manifest:      "package.json",
		SourceFile:    "version.go",
		TagPrefix:     "v",
		CommitMessage: "chore: bump version to {version}",
	}
}

// Load reads .bumpver.yaml from dir, filling unset fields with the
// built-in defaults. A missing file yields the defaults; a malformed
// file is an error.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading %s", path)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}

	if loaded.Manifest != "" {
		cfg.Manifest = loaded.Manifest
	}
	if loaded.SourceFile != "" {
		cfg.SourceFile = loaded.SourceFile
	}
	if len(loaded.BumpFiles) > 0 {
		cfg.BumpFiles = loaded.BumpFiles
	}
	if loaded.TagPrefix != "" {
		cfg.TagPrefix = loaded.TagPrefix
	}
	if loaded.CommitMessage != "" {
		cfg.CommitMessage = loaded.CommitMessage
	}
	return cfg, nil
}
