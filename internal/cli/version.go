package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version information. These variables can be overridden at build time via
// -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = ""
	BuildDate = ""
)

var versionColor = color.New(color.FgYellow, color.Bold)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the standardcheck version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "standardcheck %s\n", versionColor.Sprint(Version)); err != nil {
				return err
			}
			if GitCommit != "" {
				if _, err := fmt.Fprintf(out, "commit: %s\n", GitCommit); err != nil {
					return err
				}
			}
			if BuildDate != "" {
				if _, err := fmt.Fprintf(out, "built: %s\n", BuildDate); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
