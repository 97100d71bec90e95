package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/knave/internal/domain"
	m "github.com/mouse-blink/knave/internal/model"
)

const renameLongDescription = `Rename the identifiers of every selected file and print the mapping.

Files are left untouched unless --write is given; --diff shows what would
change. A report per file is saved to the reports directory.

With --stdin the source is read from standard input and the renamed text is
written to standard output, while the mapping (or a nothing-to-rename notice)
goes to standard error. The language then comes from --lang or from the
extension of the single path argument.`

var renameParallelFlag int
var renameExcludeFlags []string
var renameLangFlag string
var renameWriteFlag bool
var renameDiffFlag bool
var renameStdinFlag bool
var renameEngine engineFlags

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [paths...]",
		Short: "Rename identifiers to insults",
		Long:  renameLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := renameEngine.options(cmd)
			if err != nil {
				return err
			}

			wf := workflowFor(cmd, renameStdinFlag, opts...)

			if renameStdinFlag {
				var path m.Path
				if len(args) > 0 {
					path = m.Path(args[0])
				}

				return wf.RenameStream(domain.StreamArgs{
					Input:     cmd.InOrStdin(),
					Output:    cmd.OutOrStdout(),
					ErrOutput: cmd.ErrOrStderr(),
					Language:  m.LanguageID(renameLangFlag),
					Path:      path,
				})
			}

			return wf.Rename(domain.RenameArgs{
				ListArgs: domain.ListArgs{
					Paths:    parsePaths(args),
					Exclude:  renameExcludeFlags,
					Language: m.LanguageID(renameLangFlag),
				},
				Reports: m.Path(reportsOutputDirFlag),
				Threads: renameParallelFlag,
				Diff:    renameDiffFlag,
				Write:   renameWriteFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&renameParallelFlag, "parallel", "p", 1, "number of parallel workers")
	cmd.Flags().StringArrayVarP(&renameExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVarP(&renameLangFlag, "lang", "l", "", "language of every input (python or c); default from file extension")
	cmd.Flags().BoolVarP(&renameWriteFlag, "write", "w", false, "write renamed sources back to disk")
	cmd.Flags().BoolVarP(&renameDiffFlag, "diff", "d", false, "show a unified diff per file")
	cmd.Flags().BoolVar(&renameStdinFlag, "stdin", false, "read source from stdin and write the result to stdout")
	renameEngine.register(cmd.Flags())

	return cmd
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
