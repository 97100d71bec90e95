package domain

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/knave/internal/adapter"
	"github.com/mouse-blink/knave/internal/controller"
	"github.com/mouse-blink/knave/internal/domain/grammar"
	m "github.com/mouse-blink/knave/internal/model"
)

var (
	// ErrNilOrigin is returned for a source without a file.
	ErrNilOrigin = errors.New("source origin is nil")
	// ErrFilesFailed is returned when at least one file could not be renamed.
	ErrFilesFailed = errors.New("some files failed")
	// ErrNoLanguage is returned when stream input has neither a language nor
	// a file name to infer one from.
	ErrNoLanguage = errors.New("language not set")
)

// ListArgs selects the source files to work on.
type ListArgs struct {
	Paths    []m.Path
	Exclude  []string
	Language m.LanguageID
}

// RenameArgs configures a rename run over files.
type RenameArgs struct {
	ListArgs
	Reports m.Path
	Threads int
	Diff    bool
	Write   bool
}

// StreamArgs configures renaming a single text read from Input.
type StreamArgs struct {
	Input  io.Reader
	Output io.Writer
	// ErrOutput receives the mapping, one "original → replacement" line per
	// pair, or a nothing-to-rename notice. Output carries only the text.
	ErrOutput io.Writer
	Language  m.LanguageID
	// Path is only used to infer the language from its extension.
	Path m.Path
}

// ScrubArgs configures printing scrubbed sources.
type ScrubArgs struct {
	ListArgs
	Output io.Writer
}

// ViewArgs locates saved reports.
type ViewArgs struct {
	Reports m.Path
}

// CleanArgs selects saved reports to delete.
type CleanArgs struct {
	ListArgs
	Reports m.Path
}

// Workflow defines the file-level rename operations behind the CLI.
type Workflow interface {
	List(args ListArgs) error
	Rename(args RenameArgs) error
	RenameStream(args StreamArgs) error
	Scrub(args ScrubArgs) error
	View(args ViewArgs) error
	Clean(args CleanArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	orch        Orchestrator
	renamer     Renamer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	orchestrator Orchestrator,
	renamer Renamer,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		orch:        orchestrator,
		renamer:     renamer,
	}
}

// List extracts the rename candidates of every selected file.
func (w *workflow) List(args ListArgs) error {
	sources, err := w.sources(args)
	if err != nil {
		return err
	}

	reports := make([]m.Report, 0, len(sources))

	for _, source := range sources {
		reports = append(reports, w.listSource(source, args.Language))
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayIdentifiers(reports)
	w.ui.Wait()

	return nil
}

func (w *workflow) listSource(source m.Source, lang m.LanguageID) m.Report {
	report := m.Report{Path: sourcePath(source), Language: languageOf(source, lang), Hash: source.Origin.Hash}

	content, err := w.fsAdapter.ReadFile(source.Origin.Path)
	if err != nil {
		report.Status = m.StatusFailed
		report.Error = err.Error()

		return report
	}

	ids, err := w.renamer.Identifiers(string(content), report.Language)
	if err != nil {
		report.Status = m.StatusFailed
		report.Error = err.Error()

		return report
	}

	report.Identifiers = ids.Names()
	report.Status = m.StatusNothingToRename

	if len(report.Identifiers) > 0 {
		report.Status = m.StatusRenamed
	}

	return report
}

// Rename processes every selected file on a bounded worker pool. A failing
// file is reported and the remaining files still run.
func (w *workflow) Rename(args RenameArgs) error {
	sources, err := w.sources(args.ListArgs)
	if err != nil {
		return err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(controller.WithRenameMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, len(sources))

	reports := w.processAll(sources, threads, ProcessOptions{
		Language: args.Language,
		Diff:     args.Diff,
		Write:    args.Write,
	})

	if args.Diff {
		for _, report := range reports {
			if report.Diff != "" {
				w.ui.DisplayDiff(report.Path, report.Diff)
			}
		}
	}

	w.ui.DisplaySummary(reports)

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}

		if err := w.reportStore.RegenerateIndex(args.Reports); err != nil {
			return fmt.Errorf("regenerate index: %w", err)
		}
	}

	w.ui.Wait()

	failed := 0

	for _, report := range reports {
		if report.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(reports))
	}

	return nil
}

func (w *workflow) processAll(sources []m.Source, threads int, opts ProcessOptions) []m.Report {
	reports := make([]m.Report, len(sources))

	workers := make(chan int, threads)
	for i := range threads {
		workers <- i
	}

	var g errgroup.Group

	g.SetLimit(threads)

	for i, source := range sources {
		g.Go(func() error {
			worker := <-workers
			defer func() { workers <- worker }()

			w.ui.DisplayStartingFile(sourcePath(source), worker)

			report, err := w.orch.Process(source, opts)
			if err != nil && report.Status != m.StatusFailed {
				report.Status = m.StatusFailed
				report.Error = err.Error()
			}

			reports[i] = report

			w.ui.DisplayCompletedFile(report)

			return nil
		})
	}

	_ = g.Wait()

	return reports
}

// RenameStream renames one text from Input and writes the result to Output.
// On failure the original text is written and the error returned.
func (w *workflow) RenameStream(args StreamArgs) error {
	content, err := io.ReadAll(args.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	lang, err := streamLanguage(args)
	if err != nil {
		return err
	}

	result, renameErr := w.renamer.Rename(string(content), lang)

	if _, err := io.WriteString(args.Output, result.Text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if renameErr != nil {
		return fmt.Errorf("rename input: %w", renameErr)
	}

	if err := reportStream(args.ErrOutput, result); err != nil {
		return fmt.Errorf("write status: %w", err)
	}

	return nil
}

func reportStream(w io.Writer, result m.RewriteResult) error {
	if w == nil {
		return nil
	}

	switch result.Status {
	case m.StatusRenamed:
		for _, pair := range result.Mapping.Pairs() {
			if _, err := fmt.Fprintf(w, "%s → %s\n", pair.Original, pair.Replacement); err != nil {
				return err
			}
		}

		return nil
	case m.StatusIgnored:
		_, err := fmt.Fprintln(w, "nothing to rename: input is marked knave:ignore")
		return err
	default:
		_, err := fmt.Fprintln(w, "nothing to rename")
		return err
	}
}

func streamLanguage(args StreamArgs) (m.LanguageID, error) {
	if args.Language != "" {
		return args.Language, nil
	}

	if args.Path == "" {
		return "", ErrNoLanguage
	}

	g, err := grammar.ForPath(args.Path)
	if err != nil {
		return "", err
	}

	return g.ID, nil
}

// Scrub writes every selected file with strings and comments blanked out.
func (w *workflow) Scrub(args ScrubArgs) error {
	sources, err := w.sources(args.ListArgs)
	if err != nil {
		return err
	}

	for _, source := range sources {
		content, err := w.fsAdapter.ReadFile(source.Origin.Path)
		if err != nil {
			return fmt.Errorf("read %s: %w", sourcePath(source), err)
		}

		scrubbed, err := w.renamer.Scrub(string(content), languageOf(source, args.Language))
		if err != nil {
			return fmt.Errorf("scrub %s: %w", sourcePath(source), err)
		}

		if len(sources) > 1 {
			if _, err := fmt.Fprintf(args.Output, "==> %s <==\n", sourcePath(source)); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(args.Output, scrubbed); err != nil {
			return err
		}
	}

	return nil
}

// View displays the reports saved by a previous rename run.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplaySummary(reports)
	w.ui.Wait()

	return nil
}

// Clean deletes saved reports, limited to the selected files when paths are
// given.
func (w *workflow) Clean(args CleanArgs) error {
	var sources []m.Source

	if len(args.Paths) > 0 {
		selected, err := w.sources(args.ListArgs)
		if err != nil {
			return err
		}

		if len(selected) == 0 {
			return nil
		}

		sources = selected
	}

	if err := w.reportStore.CleanReports(args.Reports, sources); err != nil {
		return fmt.Errorf("clean reports: %w", err)
	}

	return nil
}

func (w *workflow) sources(args ListArgs) ([]m.Source, error) {
	if args.Language != "" {
		if _, err := grammar.Lookup(args.Language); err != nil {
			return nil, err
		}
	}

	sources, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	return filterSources(sources, args.Exclude)
}

// filterSources drops sources whose path matches any exclude pattern.
func filterSources(sources []m.Source, exclude []string) ([]m.Source, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, raw := range exclude {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}

		patterns = append(patterns, re)
	}

	filtered := make([]m.Source, 0, len(sources))

	for _, source := range sources {
		if source.Origin == nil {
			continue
		}

		if excluded(source, patterns) {
			continue
		}

		filtered = append(filtered, source)
	}

	return filtered, nil
}

func excluded(source m.Source, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(string(source.Origin.Path)) || re.MatchString(string(source.Origin.ShortPath)) {
			return true
		}
	}

	return false
}

func languageOf(source m.Source, override m.LanguageID) m.LanguageID {
	if override != "" {
		return override
	}

	return source.Language
}
