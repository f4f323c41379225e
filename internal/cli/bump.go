package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bumpver/bumpver/pkg/bumper"
	"github.com/bumpver/bumpver/pkg/git"
	"github.com/bumpver/bumpver/pkg/report"
	"github.com/bumpver/bumpver/pkg/semver"
)

var kindShorts = map[semver.Kind]string{
	semver.KindMajor:      "Bump the major version (1.2.3 -> 2.0.0)",
	semver.KindMinor:      "Bump the minor version (1.2.3 -> 1.3.0)",
	semver.KindPatch:      "Bump the patch version (1.2.3 -> 1.2.4)",
	semver.KindPremajor:   "Bump the major version and start a prerelease (1.2.3 -> 2.0.0-alpha.0)",
	semver.KindPreminor:   "Bump the minor version and start a prerelease (1.2.3 -> 1.3.0-alpha.0)",
	semver.KindPrepatch:   "Bump the patch version and start a prerelease (1.2.3 -> 1.2.4-alpha.0)",
	semver.KindPrerelease: "Increment the prerelease counter (1.2.4-alpha.0 -> 1.2.4-alpha.1)",
}

// bumpCmds returns one subcommand per bump kind.
func bumpCmds(opts *options) []*cobra.Command {
	var cmds []*cobra.Command
	for _, kind := range semver.Kinds() {
		kind := kind
		cmds = append(cmds, &cobra.Command{
			Use:   string(kind),
			Short: kindShorts[kind],
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runBump(cmd, opts, kind)
			},
		})
	}
	return cmds
}

func runBump(cmd *cobra.Command, opts *options, kind semver.Kind) error {
	rep := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	resolved, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return errors.WithStack(err)
	}

	b := bumper.New(resolved, rep, git.New(cwd))
	res, err := b.Run(kind)
	if err != nil {
		return err
	}

	printSummary(rep, res)
	return nil
}

func printSummary(rep *report.Reporter, res bumper.Result) {
	if res.DryRun {
		rep.Infof("Dry run complete. No files were modified.")
	} else {
		rep.Successf("Version bump successful!")
	}
	rep.Infof("Old version: %s", res.OldVersion)
	rep.Infof("New version: %s", res.NewVersion)
	rep.Infof("Bump kind:   %s", res.Kind)
	if len(res.UpdatedFiles) > 0 {
		rep.Infof("Files updated:")
		for _, f := range res.UpdatedFiles {
			rep.Infof("  %s", f)
		}
	}
	if res.Committed {
		rep.Infof("Committed and tagged %s", res.Tag)
	}
}
