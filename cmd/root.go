package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "data-roster <command> [flags]",
		Short:         "Data product aggregation service",
		Long:          "Read-only aggregation API over a metadata catalog, data scans, lineage and a tabular warehouse.",
		SilenceErrors: true,
		SilenceUsage:  false,
		Example: heredoc.Doc(`
		$ data-roster serve
		$ data-roster version
		`),
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	return rootCmd
}
