package controller

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// TestListModelIntegration tests the full lifecycle of listModel with Bubble Tea
func TestListModelIntegration(t *testing.T) {
	model := newListModel()

	if cmd := model.Init(); cmd == nil {
		t.Fatalf("Init() returned nil")
	}

	if view := model.View(); !strings.Contains(view, "Collecting identifiers") {
		t.Fatalf("View before data = %q", view)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(listModel)

	// ticks before data do not animate
	_, cmd := model.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("tick before data returned a command")
	}

	updated, _ = model.Update(identifiersMsg{
		files: []fileItem{
			{path: "pkg/tool.py", count: 2, names: "limit, width"},
			{path: "pkg/helper.c", count: 1, names: "helper_value"},
		},
		total: 3,
	})
	model = updated.(listModel)

	view := model.View()
	for _, want := range []string{"Knave Rename Candidates", "Identifiers:", "pkg/tool.py", "limit, width"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q\n%s", want, view)
		}
	}

	updated, cmd = model.Update(tickMsg(time.Now()))
	model = updated.(listModel)
	if cmd == nil {
		t.Fatalf("Update tick did not return cmd")
	}
	if model.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", model.animOffset)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(listModel)
	if model.lastSelected != 1 || model.animOffset != 0 {
		t.Fatalf("selection change did not reset animation: selected=%d offset=%d", model.lastSelected, model.animOffset)
	}

	if view := model.View(); !strings.Contains(view, "helper_value") {
		t.Fatalf("View does not show names of the selected file\n%s", view)
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("Quit key did not return tea.Quit")
	}
}

// TestRenameModelIntegration tests progress, results and details of renameModel
func TestRenameModelIntegration(t *testing.T) {
	model := newRenameModel()

	if view := model.View(); !strings.Contains(view, "Preparing files") {
		t.Fatalf("View before data = %q", view)
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model = updated.(renameModel)

	updated, _ = model.Update(concurrencyMsg{threads: 2, files: 2})
	model = updated.(renameModel)

	updated, _ = model.Update(startFileMsg{path: "pkg/tool.py", worker: 0})
	model = updated.(renameModel)

	view := model.View()
	for _, want := range []string{"Knave Rename", "Progress:", "Worker 0:", "pkg/tool.py", "Worker 1: idle"} {
		if !strings.Contains(view, want) {
			t.Fatalf("progress view missing %q\n%s", want, view)
		}
	}

	// keys other than quit are ignored while running
	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(renameModel)
	if cmd != nil || model.showDetail {
		t.Fatalf("enter toggled details before the run finished")
	}

	updated, _ = model.Update(completedFileMsg{path: "pkg/tool.py", status: "renamed", renames: []string{"limit → artless_base_court_knave"}})
	model = updated.(renameModel)

	if _, busy := model.workerFiles[0]; busy {
		t.Fatalf("worker 0 still busy after completion")
	}
	if model.finished {
		t.Fatalf("finished after 1 of 2 files")
	}

	updated, _ = model.Update(completedFileMsg{path: "pkg/broken.c", status: "failed", err: "input too large"})
	model = updated.(renameModel)

	if !model.finished {
		t.Fatalf("not finished after all files completed")
	}

	updated, _ = model.Update(diffMsg{path: "pkg/tool.py", diff: "--- a/pkg/tool.py\n+++ b/pkg/tool.py\n"})
	model = updated.(renameModel)

	// summary resends completions; they must not be counted twice
	updated, _ = model.Update(completedFileMsg{path: "pkg/tool.py", status: "renamed", renames: []string{"limit → artless_base_court_knave"}})
	model = updated.(renameModel)
	updated, _ = model.Update(summaryMsg{files: 2})
	model = updated.(renameModel)

	if len(model.results) != 2 || model.completedCount != 2 {
		t.Fatalf("results = %d, completed = %d, want 2 and 2", len(model.results), model.completedCount)
	}
	if model.results[0].diff == "" {
		t.Fatalf("resent completion dropped the diff")
	}

	view = model.View()
	for _, want := range []string{"Files:", "Renamed:", "Failed:", "pkg/tool.py", "pkg/broken.c"} {
		if !strings.Contains(view, want) {
			t.Fatalf("results view missing %q\n%s", want, view)
		}
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model = updated.(renameModel)
	if !model.showDetail {
		t.Fatalf("enter did not open details")
	}

	view = model.View()
	for _, want := range []string{"Details", "limit → artless_base_court_knave", "+++ b/pkg/tool.py"} {
		if !strings.Contains(view, want) {
			t.Fatalf("detail view missing %q\n%s", want, view)
		}
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(renameModel)
	if model.showDetail {
		t.Fatalf("moving the selection did not close details")
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(renameModel)
	if view := model.View(); !strings.Contains(view, "input too large") {
		t.Fatalf("detail view missing error\n%s", view)
	}

	updated, cmd = model.Update(tickMsg(time.Now()))
	model = updated.(renameModel)
	if cmd == nil || model.animOffset != 1 {
		t.Fatalf("tick after finish did not animate")
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c did not return tea.Quit")
	}
}

func TestRenameModel_ViewerStartsOnResults(t *testing.T) {
	model := newRenameModel().asViewer()

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model = updated.(renameModel)

	updated, _ = model.Update(completedFileMsg{path: "a.py", status: "ignored"})
	model = updated.(renameModel)
	updated, _ = model.Update(summaryMsg{files: 1})
	model = updated.(renameModel)

	view := model.View()
	for _, want := range []string{"Knave Report", "Ignored:", "a.py"} {
		if !strings.Contains(view, want) {
			t.Fatalf("viewer missing %q\n%s", want, view)
		}
	}

	updated, _ = model.Update(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	model = updated.(renameModel)
	if !model.showDetail {
		t.Fatalf("click did not open details")
	}

	if view := model.View(); !strings.Contains(view, "no changes") {
		t.Fatalf("detail of unchanged file missing placeholder\n%s", view)
	}
}

func TestRenameModel_FilteringKeepsDetailsClosed(t *testing.T) {
	model := newRenameModel()

	updated, _ := model.Update(summaryMsg{})
	model = updated.(renameModel)
	updated, _ = model.Update(completedFileMsg{path: "a.py", status: "renamed"})
	model = updated.(renameModel)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	model = updated.(renameModel)

	if model.resultsList.FilterState() != list.Filtering {
		t.Fatalf("filter did not start, state = %v", model.resultsList.FilterState())
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace})
	model = updated.(renameModel)
	if model.showDetail {
		t.Fatalf("space while filtering toggled details")
	}
}

func TestAnimateScroll(t *testing.T) {
	if got := animateScroll("short", 10, 100); got != "short" {
		t.Fatalf("animateScroll(short) = %q", got)
	}

	if got := animateScroll("abcdefghij", 5, 0); got != "abcd…" {
		t.Fatalf("animateScroll before pause = %q", got)
	}

	if got := animateScroll("abcdefghij", 5, 6); got != "bcdef" {
		t.Fatalf("animateScroll after pause = %q", got)
	}

	if got := animateScroll("abc", 0, 0); got != "" {
		t.Fatalf("animateScroll zero width = %q", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}

	for _, tt := range tests {
		if got := truncateToWidth(tt.text, tt.width); got != tt.want {
			t.Fatalf("truncateToWidth(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
