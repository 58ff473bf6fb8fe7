package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display puzzlelint version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "puzzlelint v%s\n", version)
			if commit != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s built %s\n", commit, date)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Consistency checker for Kotlin puzzle directories")
		},
	}
}
