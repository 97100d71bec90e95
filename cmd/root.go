// Package cmd provides the root command and CLI setup for knave.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mouse-blink/knave/internal/adapter"
	"github.com/mouse-blink/knave/internal/controller"
	"github.com/mouse-blink/knave/internal/domain"
	"github.com/mouse-blink/knave/internal/domain/extract"
	"github.com/mouse-blink/knave/internal/domain/insult"
	m "github.com/mouse-blink/knave/internal/model"
)

const defaultReportsDir = ".knave-reports"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var differ adapter.Differ

// workflow replaces the per-invocation workflow when set.
var workflow domain.Workflow

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	differ = adapter.NewDiffer()
}

var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knave",
		Short: "Rename identifiers in source code to Shakespearean insults",
		Long: `Knave finds the user-defined identifiers of Python and C source files and
renames each of them, consistently across the file, to a generated
Shakespearean insult such as artless_base_court_knave.

Strings and comments are never modified. Library symbols are left alone on a
best-effort basis.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - a.py b.c       individual files`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", defaultReportsDir, "directory for rename reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// workflowFor builds the workflow for one command invocation. data is set
// by commands whose stdout carries source text.
func workflowFor(cmd *cobra.Command, data bool, opts ...domain.RenamerOption) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	ui := controller.NewUI(cmd, controller.OutputOf(cmd, data))
	renamer := domain.NewRenamer(opts...)
	orchestrator := domain.NewOrchestrator(fsAdapter, differ, renamer)

	return domain.NewWorkflow(fsAdapter, reportStore, ui, orchestrator, renamer)
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// engineFlags are the renaming engine settings shared by several commands.
type engineFlags struct {
	strategy string
	style    string
	seed     uint64
	keep     []string
	maxBytes int
}

func (f *engineFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.strategy, "strategy", string(extract.StrategyPattern), "identifier extraction strategy: pattern, broad or combined")
	flags.StringVar(&f.style, "style", string(insult.StyleSnake), "replacement casing: snake or camel")
	flags.Uint64Var(&f.seed, "seed", 0, "seed for reproducible replacements")
	flags.StringArrayVarP(&f.keep, "keep", "k", nil, "identifier that is never renamed (can be repeated)")
	flags.IntVar(&f.maxBytes, "max-bytes", domain.DefaultMaxBytes, "largest input accepted, in bytes (0 disables the limit)")
}

func (f *engineFlags) options(cmd *cobra.Command) ([]domain.RenamerOption, error) {
	strategy, err := extract.ParseStrategy(f.strategy)
	if err != nil {
		return nil, err
	}

	style, err := insult.ParseStyle(f.style)
	if err != nil {
		return nil, err
	}

	opts := []domain.RenamerOption{
		domain.WithStrategy(strategy),
		domain.WithStyle(style),
		domain.WithMaxBytes(f.maxBytes),
		domain.WithKeep(f.keep...),
	}

	if cmd.Flags().Changed("seed") {
		opts = append(opts, domain.WithSeed(f.seed))
	}

	if strategy == extract.StrategyBroad {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "warning: the broad strategy renames library calls and attributes; prefer pattern")
	}

	return opts, nil
}
