package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the wfam command tree. Without a subcommand it runs check.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wfam",
		Short: "Find files missing from a sorted archive",
		Long: `wfam (Which Files Are Missing) lists the files of an unsorted folder that are
absent from a set of base folders, or present there only with another size.
The base folder may contain '*' and '?' wildcards, e.g. "/photos/20*/*".

Exit codes: 0 all files present, 1 missing or different files found,
2 error, 3 interrupted.`,
		Example: `  wfam -b "/photos/20*" -u ~/Downloads/camera -e .jpg,.jpeg -m missing.txt -d diff.txt`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate),
		Args:          cobra.NoArgs,
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	AddGlobalFlags(rootCmd)
	AddCheckFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
