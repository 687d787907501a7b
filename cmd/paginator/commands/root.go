package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paginator",
		Short:         "Split record counts into limit/offset windows",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		NewChunksCommand(),
		NewPageCommand(),
	)

	return rootCmd
}
