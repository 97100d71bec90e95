package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knave/internal/domain"
	m "github.com/mouse-blink/knave/internal/model"
)

// scrubCmd represents the scrub command.
var scrubCmd = newScrubCmd()
var scrubExcludeFlags []string
var scrubLangFlag string

func newScrubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub [paths...]",
		Short: "Print sources with strings and comments blanked out",
		Long: `Print each selected file the way the identifier extractor sees it: every
string literal and comment is replaced by a single space while line breaks
are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflowFor(cmd, true).Scrub(domain.ScrubArgs{
				ListArgs: domain.ListArgs{
					Paths:    parsePaths(args),
					Exclude:  scrubExcludeFlags,
					Language: m.LanguageID(scrubLangFlag),
				},
				Output: cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&scrubExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&scrubLangFlag, "lang", "l", "", "language of every input (python or c); default from file extension")

	return cmd
}

func init() {
	rootCmd.AddCommand(scrubCmd)
}
