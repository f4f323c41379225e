package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bumpver/bumpver/pkg/bumper"
	"github.com/bumpver/bumpver/pkg/report"
	"github.com/bumpver/bumpver/pkg/semver"
)

// versionInfo is the structured form of the current version for
// machine-readable output.
type versionInfo struct {
	Version    string `json:"version" yaml:"version"`
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
}

func currentCmd(opts *options) *cobra.Command {
	output := "text"

	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the version currently stored in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveOptions(opts)
			if err != nil {
				return err
			}
			rep := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
			b := bumper.New(resolved, rep, nil)
			cur, err := b.Current()
			if err != nil {
				return err
			}
			return printCurrent(cmd, cur, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json, or yaml")
	return cmd
}

func printCurrent(cmd *cobra.Command, cur semver.Version, output string) error {
	info := versionInfo{
		Version:    cur.String(),
		Major:      cur.Major,
		Minor:      cur.Minor,
		Patch:      cur.Patch,
		Prerelease: cur.Prerelease,
	}
	out := cmd.OutOrStdout()

	switch output {
	case "text":
		fmt.Fprintln(out, info.Version)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return errors.WithStack(err)
		}
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprint(out, string(data))
	default:
		return errors.Errorf("unknown output format %q (expected text, json, or yaml)", output)
	}
	return nil
}
