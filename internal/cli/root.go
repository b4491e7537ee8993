// Package cli provides the command-line interface for standardcheck.
package cli

import (
	"github.com/spf13/cobra"
)

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "standardcheck",
		Short:         "Python style and documentation checker",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd.Execute()
}
