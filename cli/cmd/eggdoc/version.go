package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.eggybyte.com/eggdoc/cli/internal/version"
)

// newVersionCmd returns the version command.
// The root command also answers --version with the short version line.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show eggdoc version information",
		Long: `Display version information for the eggdoc CLI tool.

This command shows:
  • CLI version, git commit hash, and build timestamp
  • Size of the doxygen option catalog
  • Go runtime version`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetFullVersionInfo())
		},
	}
}
