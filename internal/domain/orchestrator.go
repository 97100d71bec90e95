package domain

import (
	"fmt"

	"github.com/mouse-blink/knave/internal/adapter"
	m "github.com/mouse-blink/knave/internal/model"
)

// ProcessOptions controls what Process does with a renamed file.
type ProcessOptions struct {
	// Language overrides the grammar chosen from the file extension.
	Language m.LanguageID
	// Diff attaches a unified diff to the report.
	Diff bool
	// Write replaces the file on disk with the renamed text.
	Write bool
}

// Orchestrator runs the rename engine over a single source file: read,
// rename, diff and optionally write back.
type Orchestrator interface {
	Process(source m.Source, opts ProcessOptions) (m.Report, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	differ    adapter.Differ
	renamer   Renamer
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter, differ and renamer.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, differ adapter.Differ, renamer Renamer) Orchestrator {
	return &orchestrator{
		fsAdapter: fsAdapter,
		differ:    differ,
		renamer:   renamer,
	}
}

// Process never leaves a partially written file: the file is only replaced
// when the engine reports StatusRenamed. On error the returned report is
// already marked failed.
func (o *orchestrator) Process(source m.Source, opts ProcessOptions) (m.Report, error) {
	if source.Origin == nil {
		return m.Report{Status: m.StatusFailed, Error: ErrNilOrigin.Error()}, ErrNilOrigin
	}

	report := m.Report{
		Path:     sourcePath(source),
		Language: source.Language,
		Hash:     source.Origin.Hash,
	}
	if opts.Language != "" {
		report.Language = opts.Language
	}

	fail := func(err error) (m.Report, error) {
		report.Status = m.StatusFailed
		report.Error = err.Error()

		return report, err
	}

	content, err := o.fsAdapter.ReadFile(source.Origin.Path)
	if err != nil {
		return fail(fmt.Errorf("read %s: %w", report.Path, err))
	}

	result, err := o.renamer.Rename(string(content), report.Language)
	if err != nil {
		return fail(fmt.Errorf("rename %s: %w", report.Path, err))
	}

	report.Status = result.Status
	report.Renames = result.Mapping.Pairs()

	for _, r := range report.Renames {
		report.Identifiers = append(report.Identifiers, r.Original)
	}

	if !result.Changed() {
		return report, nil
	}

	if opts.Diff {
		diff, err := o.differ.Diff(string(report.Path), string(content), result.Text)
		if err != nil {
			return fail(err)
		}

		report.Diff = diff
	}

	if opts.Write {
		if err := o.fsAdapter.WriteFile(source.Origin.Path, []byte(result.Text)); err != nil {
			return fail(fmt.Errorf("write %s: %w", report.Path, err))
		}

		report.Written = true
	}

	return report, nil
}

func sourcePath(source m.Source) m.Path {
	if source.Origin.ShortPath != "" {
		return source.Origin.ShortPath
	}

	return source.Origin.Path
}
