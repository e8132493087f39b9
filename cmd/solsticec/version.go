package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"solstice/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print solsticec version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		if version.GitCommit != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.GitCommit)
		}
		return nil
	},
}
