package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knave/internal/domain"
	m "github.com/mouse-blink/knave/internal/model"
)

const listLongDescription = `List the identifiers that rename would replace in each selected file,
without changing anything.`

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string
var listLangFlag string
var listEngine engineFlags

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List rename candidates per file",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := listEngine.options(cmd)
			if err != nil {
				return err
			}

			return workflowFor(cmd, false, opts...).List(domain.ListArgs{
				Paths:    parsePaths(args),
				Exclude:  listExcludeFlags,
				Language: m.LanguageID(listLangFlag),
			})
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&listLangFlag, "lang", "l", "", "language of every input (python or c); default from file extension")
	listEngine.register(cmd.Flags())

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
