package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knave/internal/domain"
	m "github.com/mouse-blink/knave/internal/model"
)

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()
var cleanExcludeFlags []string

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Delete saved rename reports",
		Long:  "Delete the saved reports of the given files, or every report when no path is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []m.Path
			if len(args) > 0 {
				paths = parsePaths(args)
			}

			return workflowFor(cmd, false).Clean(domain.CleanArgs{
				ListArgs: domain.ListArgs{Paths: paths, Exclude: cleanExcludeFlags},
				Reports:  m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&cleanExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
