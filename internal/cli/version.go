package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const binaryName = "bumpver"

// Version reports the CLI's own release version.
func Version() string {
	return "0.1.0"
}

func versionCmd() *cobra.Command {
	shortFlag := false

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the bumpver CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shortFlag {
				fmt.Fprintln(cmd.OutOrStdout(), Version())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", binaryName, Version())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&shortFlag, "short", "s", false, "print only the version number")
	return cmd
}
