// Package cli wires the bumpver command tree.
package cli

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bumpver/bumpver/internal/config"
	"github.com/bumpver/bumpver/pkg/bumper"
	"github.com/bumpver/bumpver/pkg/report"
)

// options collect the persistent flag values. Empty string means "not
// set"; the config file and built-in defaults fill the gaps.
type options struct {
	manifest   string
	sourceFile string
	bumpFiles  []string
	dryRun     bool
	noGit      bool
	noColor    bool
}

// NewRootCmd builds the bumpver command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "bumpver",
		Short: "Bump the semantic version across a manifest and a source file",
		Long: `bumpver reads the version from a JSON manifest (default: package.json),
bumps it according to the named rule, writes it back, synchronizes a
version literal in a source file (default: version.go), and commits and
tags the change when the git working tree is clean.`,
		// Errors are printed once, with severity styling, in Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.WithStack(cmd.Help())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.manifest, "manifest", "", "path to the JSON manifest (default: from .bumpver.yaml, else package.json)")
	pf.StringVar(&opts.sourceFile, "source-file", "", "source file holding a version literal to keep in sync (default: from .bumpver.yaml, else version.go)")
	pf.StringArrayVar(&opts.bumpFiles, "bump-file", nil, "additional file to scan for a version declaration and bump; may be repeated")
	pf.BoolVar(&opts.dryRun, "dry-run", false, "compute and report the bump without modifying any file")
	pf.BoolVar(&opts.noGit, "no-git", false, "skip git integration entirely")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")

	root.AddCommand(bumpCmds(opts)...)
	root.AddCommand(currentCmd(opts))
	root.AddCommand(versionCmd())
	return root
}

// resolveOptions merges flags over the per-project config over the
// built-in defaults.
func resolveOptions(opts *options) (bumper.Options, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return bumper.Options{}, errors.WithStack(err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return bumper.Options{}, err
	}

	resolved := bumper.Options{
		ManifestPath:  cfg.Manifest,
		SourcePath:    cfg.SourceFile,
		BumpFiles:     cfg.BumpFiles,
		DryRun:        opts.dryRun,
		NoGit:         opts.noGit,
		TagPrefix:     cfg.TagPrefix,
		CommitMessage: cfg.CommitMessage,
	}
	if opts.manifest != "" {
		resolved.ManifestPath = opts.manifest
	}
	if opts.sourceFile != "" {
		resolved.SourcePath = opts.sourceFile
	}
	resolved.BumpFiles = append(resolved.BumpFiles, opts.bumpFiles...)
	return resolved, nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		rep := report.Default()
		rep.Errorf("%v", err)
		if strings.Contains(err.Error(), "unknown command") {
			rep.Infof("Run 'bumpver --help' for usage.")
		}
		return 1
	}
	return 0
}
