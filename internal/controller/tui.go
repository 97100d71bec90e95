package controller

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/knave/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	switch cfg.mode {
	case ModeRename:
		return t.startWithModel(newRenameModel())
	case ModeView:
		return t.startWithModel(newRenameModel().asViewer())
	default:
		return t.startWithModel(newListModel())
	}
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	if _, ok := t.output.(*os.File); ok {
		opts = append(opts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	} else {
		opts = append(opts, tea.WithInput(nil))
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		if _, err := p.Run(); err != nil {
			t.mu.Lock()
			t.runErr = err
			t.mu.Unlock()
		}
	}(t.program, t.done)

	return nil
}

// Close stops the program and waits for it to release the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done

	t.mu.Lock()
	err := t.runErr
	t.mu.Unlock()

	if err != nil {
		_, _ = fmt.Fprintf(t.output, "ui error: %v\n", err)
	}
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program, started := t.program, t.started
	t.mu.Unlock()

	if program == nil || !started {
		return
	}

	program.Send(msg)
}

// DisplayIdentifiers fills the file list with rename candidates.
func (t *TUI) DisplayIdentifiers(reports []m.Report) {
	t.ensureStarted()

	sorted := sortedReports(reports)
	files := make([]fileItem, 0, len(sorted))
	total := 0

	for _, report := range sorted {
		files = append(files, fileItem{
			path:  string(report.Path),
			count: len(report.Identifiers),
			names: strings.Join(report.Identifiers, ", "),
		})
		total += len(report.Identifiers)
	}

	t.send(identifiersMsg{files: files, total: total})
}

// DisplayConcurrencyInfo shows concurrency settings.
func (t *TUI) DisplayConcurrencyInfo(threads int, files int) {
	t.ensureStarted()
	t.send(concurrencyMsg{threads: threads, files: files})
}

// DisplayStartingFile marks a worker as busy with path.
func (t *TUI) DisplayStartingFile(path m.Path, worker int) {
	t.ensureStarted()
	t.send(startFileMsg{path: string(path), worker: worker})
}

// DisplayCompletedFile records a finished file.
func (t *TUI) DisplayCompletedFile(report m.Report) {
	t.ensureStarted()
	t.send(completedFileFromReport(report))
}

// DisplayDiff attaches a diff to a finished file.
func (t *TUI) DisplayDiff(path m.Path, diff string) {
	t.ensureStarted()
	t.send(diffMsg{path: string(path), diff: diff})
}

// DisplaySummary switches to the results view. Reports that were not
// announced through DisplayCompletedFile, as in view mode, are added first.
func (t *TUI) DisplaySummary(reports []m.Report) {
	t.ensureStarted()

	for _, report := range sortedReports(reports) {
		t.send(completedFileFromReport(report))
	}

	t.send(summaryMsg{files: len(reports)})
}

func completedFileFromReport(report m.Report) completedFileMsg {
	renames := make([]string, 0, len(report.Renames))
	for _, r := range report.Renames {
		renames = append(renames, r.Original+" → "+r.Replacement)
	}

	return completedFileMsg{
		path:    string(report.Path),
		status:  string(report.Status),
		err:     report.Error,
		renames: renames,
		diff:    report.Diff,
	}
}
