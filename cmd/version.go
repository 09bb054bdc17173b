package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version of the current build, overridden by the build system.
var Version = "dev"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of this build",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("data-roster %s\n", Version)
			return nil
		},
	}
}
