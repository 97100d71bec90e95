package domain_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/knave/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/knave/internal/controller/mocks"
	"github.com/mouse-blink/knave/internal/domain"
	domainmocks "github.com/mouse-blink/knave/internal/domain/mocks"
	"github.com/mouse-blink/knave/internal/domain/grammar"
	m "github.com/mouse-blink/knave/internal/model"
)

type workflowDeps struct {
	fs       *adaptermocks.MockSourceFSAdapter
	store    *adaptermocks.MockReportStore
	ui       *controllermocks.MockUI
	orch     *domainmocks.MockOrchestrator
	renamer  *domainmocks.MockRenamer
	workflow domain.Workflow
}

func newWorkflowDeps(t *testing.T) workflowDeps {
	t.Helper()

	d := workflowDeps{
		fs:      adaptermocks.NewMockSourceFSAdapter(t),
		store:   adaptermocks.NewMockReportStore(t),
		ui:      controllermocks.NewMockUI(t),
		orch:    domainmocks.NewMockOrchestrator(t),
		renamer: domainmocks.NewMockRenamer(t),
	}
	d.workflow = domain.NewWorkflow(d.fs, d.store, d.ui, d.orch, d.renamer)

	return d
}

func pySource(path string) m.Source {
	return m.Source{
		Origin:   &m.File{Path: m.Path("/project/" + path), ShortPath: m.Path(path)},
		Language: m.LanguagePython,
	}
}

func cSource(path string) m.Source {
	return m.Source{
		Origin:   &m.File{Path: m.Path("/project/" + path), ShortPath: m.Path(path)},
		Language: m.LanguageC,
	}
}

func expectUISession(d workflowDeps) {
	d.ui.EXPECT().Start(mock.Anything).Return(nil)
	d.ui.EXPECT().Wait().Return()
	d.ui.EXPECT().Close().Return()
}

func TestWorkflow_List(t *testing.T) {
	d := newWorkflowDeps(t)
	paths := []m.Path{"./..."}
	tool, helper := pySource("tool.py"), cSource("nested/helper.c")

	d.fs.EXPECT().Get(paths).Return([]m.Source{tool, {Origin: nil}, helper}, nil)
	d.fs.EXPECT().ReadFile(tool.Origin.Path).Return([]byte("limit = 1\n"), nil)
	d.fs.EXPECT().ReadFile(helper.Origin.Path).Return([]byte("int main(void) { return 0; }\n"), nil)
	d.renamer.EXPECT().Identifiers("limit = 1\n", m.LanguagePython).Return(m.NewIdentifierSet("limit"), nil)
	d.renamer.EXPECT().Identifiers("int main(void) { return 0; }\n", m.LanguageC).Return(m.NewIdentifierSet(), nil)

	expectUISession(d)
	d.ui.EXPECT().DisplayIdentifiers(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 &&
			reports[0].Path == "tool.py" &&
			reports[0].Status == m.StatusRenamed &&
			len(reports[0].Identifiers) == 1 &&
			reports[1].Path == "nested/helper.c" &&
			reports[1].Status == m.StatusNothingToRename
	})).Return()

	require.NoError(t, d.workflow.List(domain.ListArgs{Paths: paths}))
}

func TestWorkflow_List_ReadFailureIsReported(t *testing.T) {
	d := newWorkflowDeps(t)
	tool := pySource("tool.py")

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{tool}, nil)
	d.fs.EXPECT().ReadFile(tool.Origin.Path).Return(nil, errors.New("gone"))

	expectUISession(d)
	d.ui.EXPECT().DisplayIdentifiers(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 1 && reports[0].Failed() && reports[0].Error == "gone"
	})).Return()

	require.NoError(t, d.workflow.List(domain.ListArgs{Paths: []m.Path{"."}}))
}

func TestWorkflow_List_LanguageOverride(t *testing.T) {
	d := newWorkflowDeps(t)
	tool := pySource("tool.py")

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{tool}, nil)
	d.fs.EXPECT().ReadFile(tool.Origin.Path).Return([]byte("int x;"), nil)
	d.renamer.EXPECT().Identifiers("int x;", m.LanguageC).Return(m.NewIdentifierSet("x"), nil)

	expectUISession(d)
	d.ui.EXPECT().DisplayIdentifiers(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 1 && reports[0].Language == m.LanguageC
	})).Return()

	require.NoError(t, d.workflow.List(domain.ListArgs{Paths: []m.Path{"."}, Language: m.LanguageC}))
}

func TestWorkflow_List_UnknownLanguage(t *testing.T) {
	d := newWorkflowDeps(t)

	err := d.workflow.List(domain.ListArgs{Paths: []m.Path{"."}, Language: "cobol"})
	require.ErrorIs(t, err, grammar.ErrUnsupportedGrammar)
}

func TestWorkflow_List_GetError(t *testing.T) {
	d := newWorkflowDeps(t)

	d.fs.EXPECT().Get([]m.Path{"missing"}).Return(nil, errors.New("no such file"))

	err := d.workflow.List(domain.ListArgs{Paths: []m.Path{"missing"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get sources")
}

func TestWorkflow_List_Exclude(t *testing.T) {
	d := newWorkflowDeps(t)
	keep, skip := pySource("tool.py"), cSource("nested/helper.c")

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{keep, skip}, nil)
	d.fs.EXPECT().ReadFile(keep.Origin.Path).Return([]byte("a = 1\n"), nil)
	d.renamer.EXPECT().Identifiers("a = 1\n", m.LanguagePython).Return(m.NewIdentifierSet("a"), nil)

	expectUISession(d)
	d.ui.EXPECT().DisplayIdentifiers(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 1 && reports[0].Path == "tool.py"
	})).Return()

	require.NoError(t, d.workflow.List(domain.ListArgs{Paths: []m.Path{"."}, Exclude: []string{`^nested/`}}))
}

func TestWorkflow_List_InvalidExclude(t *testing.T) {
	d := newWorkflowDeps(t)

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{pySource("tool.py")}, nil)

	err := d.workflow.List(domain.ListArgs{Paths: []m.Path{"."}, Exclude: []string{"("}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestWorkflow_Rename(t *testing.T) {
	d := newWorkflowDeps(t)
	tool, helper := pySource("tool.py"), cSource("helper.c")
	opts := domain.ProcessOptions{Diff: true, Write: true}

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{tool, helper}, nil)
	d.orch.EXPECT().Process(tool, opts).Return(m.Report{
		Path:   "tool.py",
		Status: m.StatusRenamed,
		Diff:   "--- a/tool.py\n",
	}, nil)
	d.orch.EXPECT().Process(helper, opts).Return(m.Report{Path: "helper.c", Status: m.StatusNothingToRename}, nil)

	expectUISession(d)
	d.ui.EXPECT().DisplayConcurrencyInfo(2, 2).Return()
	d.ui.EXPECT().DisplayStartingFile(mock.Anything, mock.Anything).Return().Times(2)
	d.ui.EXPECT().DisplayCompletedFile(mock.Anything).Return().Times(2)
	d.ui.EXPECT().DisplayDiff(m.Path("tool.py"), "--- a/tool.py\n").Return()
	d.ui.EXPECT().DisplaySummary(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 && reports[0].Path == "tool.py" && reports[1].Path == "helper.c"
	})).Return()
	d.store.EXPECT().SaveReports(m.Path(".knave-reports"), mock.Anything).Return(nil)
	d.store.EXPECT().RegenerateIndex(m.Path(".knave-reports")).Return(nil)

	err := d.workflow.Rename(domain.RenameArgs{
		ListArgs: domain.ListArgs{Paths: []m.Path{"."}},
		Reports:  ".knave-reports",
		Threads:  2,
		Diff:     true,
		Write:    true,
	})
	require.NoError(t, err)
}

func TestWorkflow_Rename_FailedFileIsReportedAndOthersRun(t *testing.T) {
	d := newWorkflowDeps(t)
	bad, good := pySource("bad.py"), pySource("good.py")

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{bad, good}, nil)
	d.orch.EXPECT().Process(bad, domain.ProcessOptions{}).Return(m.Report{Path: "bad.py"}, errors.New("boom"))
	d.orch.EXPECT().Process(good, domain.ProcessOptions{}).Return(m.Report{Path: "good.py", Status: m.StatusRenamed}, nil)

	expectUISession(d)
	d.ui.EXPECT().DisplayConcurrencyInfo(1, 2).Return()
	d.ui.EXPECT().DisplayStartingFile(mock.Anything, 0).Return().Times(2)
	d.ui.EXPECT().DisplayCompletedFile(mock.Anything).Return().Times(2)
	d.ui.EXPECT().DisplaySummary(mock.MatchedBy(func(reports []m.Report) bool {
		return len(reports) == 2 &&
			reports[0].Status == m.StatusFailed &&
			reports[0].Error == "boom" &&
			reports[1].Status == m.StatusRenamed
	})).Return()

	err := d.workflow.Rename(domain.RenameArgs{ListArgs: domain.ListArgs{Paths: []m.Path{"."}}})
	require.ErrorIs(t, err, domain.ErrFilesFailed)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestWorkflow_Rename_SaveReportsError(t *testing.T) {
	d := newWorkflowDeps(t)
	tool := pySource("tool.py")

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{tool}, nil)
	d.orch.EXPECT().Process(tool, domain.ProcessOptions{}).Return(m.Report{Path: "tool.py", Status: m.StatusRenamed}, nil)

	d.ui.EXPECT().Start(mock.Anything).Return(nil)
	d.ui.EXPECT().Close().Return()
	d.ui.EXPECT().DisplayConcurrencyInfo(1, 1).Return()
	d.ui.EXPECT().DisplayStartingFile(m.Path("tool.py"), 0).Return()
	d.ui.EXPECT().DisplayCompletedFile(mock.Anything).Return()
	d.ui.EXPECT().DisplaySummary(mock.Anything).Return()
	d.store.EXPECT().SaveReports(m.Path("out"), mock.Anything).Return(errors.New("read-only"))

	err := d.workflow.Rename(domain.RenameArgs{ListArgs: domain.ListArgs{Paths: []m.Path{"."}}, Reports: "out"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save reports")
}

func TestWorkflow_Rename_UIStartError(t *testing.T) {
	d := newWorkflowDeps(t)

	d.fs.EXPECT().Get([]m.Path{"."}).Return(nil, nil)
	d.ui.EXPECT().Start(mock.Anything).Return(errors.New("no tty"))

	err := d.workflow.Rename(domain.RenameArgs{ListArgs: domain.ListArgs{Paths: []m.Path{"."}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start ui")
}

func TestWorkflow_RenameStream(t *testing.T) {
	d := newWorkflowDeps(t)
	var out, status bytes.Buffer

	d.renamer.EXPECT().Rename("int a, b;\n", m.LanguageC).
		Return(renamedResult("int lout, knave;\n", "a", "lout", "b", "knave"), nil)

	err := d.workflow.RenameStream(domain.StreamArgs{
		Input:     strings.NewReader("int a, b;\n"),
		Output:    &out,
		ErrOutput: &status,
		Path:      "src/point.c",
	})
	require.NoError(t, err)
	assert.Equal(t, "int lout, knave;\n", out.String())
	assert.Equal(t, "a → lout\nb → knave\n", status.String())
}

func TestWorkflow_RenameStream_ExplicitLanguageWins(t *testing.T) {
	d := newWorkflowDeps(t)
	var out bytes.Buffer

	d.renamer.EXPECT().Rename("x = 1\n", m.LanguagePython).
		Return(renamedResult("lout = 1\n", "x", "lout"), nil)

	err := d.workflow.RenameStream(domain.StreamArgs{
		Input:    strings.NewReader("x = 1\n"),
		Output:   &out,
		Language: m.LanguagePython,
		Path:     "ignored.c",
	})
	require.NoError(t, err)
	assert.Equal(t, "lout = 1\n", out.String())
}

func TestWorkflow_RenameStream_ReportsNoOp(t *testing.T) {
	tests := []struct {
		name   string
		status m.RewriteStatus
		want   string
	}{
		{"nothing to rename", m.StatusNothingToRename, "nothing to rename\n"},
		{"ignored", m.StatusIgnored, "nothing to rename: input is marked knave:ignore\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newWorkflowDeps(t)
			var out, status bytes.Buffer

			d.renamer.EXPECT().Rename("print(\"hi\")\n", m.LanguagePython).
				Return(m.RewriteResult{Text: "print(\"hi\")\n", Mapping: m.NewRenameMap(), Status: tt.status}, nil)

			err := d.workflow.RenameStream(domain.StreamArgs{
				Input:     strings.NewReader("print(\"hi\")\n"),
				Output:    &out,
				ErrOutput: &status,
				Language:  m.LanguagePython,
			})
			require.NoError(t, err)
			assert.Equal(t, "print(\"hi\")\n", out.String())
			assert.Equal(t, tt.want, status.String())
		})
	}
}

func TestWorkflow_RenameStream_NoLanguage(t *testing.T) {
	d := newWorkflowDeps(t)
	var out bytes.Buffer

	err := d.workflow.RenameStream(domain.StreamArgs{Input: strings.NewReader("x"), Output: &out})
	require.ErrorIs(t, err, domain.ErrNoLanguage)
	assert.Empty(t, out.String())
}

func TestWorkflow_RenameStream_FailureEchoesOriginal(t *testing.T) {
	d := newWorkflowDeps(t)
	var out, status bytes.Buffer

	d.renamer.EXPECT().Rename("huge", m.LanguagePython).
		Return(m.RewriteResult{Text: "huge", Status: m.StatusFailed}, domain.ErrInputTooLarge)

	err := d.workflow.RenameStream(domain.StreamArgs{
		Input:     strings.NewReader("huge"),
		Output:    &out,
		ErrOutput: &status,
		Language:  m.LanguagePython,
	})
	require.ErrorIs(t, err, domain.ErrInputTooLarge)
	assert.Equal(t, "huge", out.String())
	assert.Empty(t, status.String())
}

func TestWorkflow_Scrub(t *testing.T) {
	d := newWorkflowDeps(t)
	var out bytes.Buffer
	tool, helper := pySource("tool.py"), cSource("helper.c")

	d.fs.EXPECT().Get([]m.Path{"."}).Return([]m.Source{tool, helper}, nil)
	d.fs.EXPECT().ReadFile(tool.Origin.Path).Return([]byte("x = 'a'\n"), nil)
	d.fs.EXPECT().ReadFile(helper.Origin.Path).Return([]byte("int y; // c\n"), nil)
	d.renamer.EXPECT().Scrub("x = 'a'\n", m.LanguagePython).Return("x =  \n", nil)
	d.renamer.EXPECT().Scrub("int y; // c\n", m.LanguageC).Return("int y;  \n", nil)

	err := d.workflow.Scrub(domain.ScrubArgs{ListArgs: domain.ListArgs{Paths: []m.Path{"."}}, Output: &out})
	require.NoError(t, err)
	assert.Equal(t, "==> tool.py <==\nx =  \n==> helper.c <==\nint y;  \n", out.String())
}

func TestWorkflow_Scrub_SingleFileHasNoHeader(t *testing.T) {
	d := newWorkflowDeps(t)
	var out bytes.Buffer
	tool := pySource("tool.py")

	d.fs.EXPECT().Get([]m.Path{"tool.py"}).Return([]m.Source{tool}, nil)
	d.fs.EXPECT().ReadFile(tool.Origin.Path).Return([]byte("x = 1\n"), nil)
	d.renamer.EXPECT().Scrub("x = 1\n", m.LanguagePython).Return("x = 1\n", nil)

	err := d.workflow.Scrub(domain.ScrubArgs{ListArgs: domain.ListArgs{Paths: []m.Path{"tool.py"}}, Output: &out})
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", out.String())
}

func TestWorkflow_View(t *testing.T) {
	d := newWorkflowDeps(t)
	reports := []m.Report{{Path: "tool.py", Status: m.StatusRenamed}}

	d.store.EXPECT().LoadReports(m.Path(".knave-reports")).Return(reports, nil)
	expectUISession(d)
	d.ui.EXPECT().DisplaySummary(reports).Return()

	require.NoError(t, d.workflow.View(domain.ViewArgs{Reports: ".knave-reports"}))
}

func TestWorkflow_View_LoadError(t *testing.T) {
	d := newWorkflowDeps(t)

	d.store.EXPECT().LoadReports(m.Path("broken")).Return(nil, errors.New("bad yaml"))

	err := d.workflow.View(domain.ViewArgs{Reports: "broken"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load reports")
}

func TestWorkflow_Clean_All(t *testing.T) {
	d := newWorkflowDeps(t)

	d.store.EXPECT().CleanReports(m.Path(".knave-reports"), []m.Source(nil)).Return(nil)

	require.NoError(t, d.workflow.Clean(domain.CleanArgs{Reports: ".knave-reports"}))
}

func TestWorkflow_Clean_SelectedFiles(t *testing.T) {
	d := newWorkflowDeps(t)
	tool := pySource("tool.py")

	d.fs.EXPECT().Get([]m.Path{"tool.py"}).Return([]m.Source{tool}, nil)
	d.store.EXPECT().CleanReports(m.Path("out"), []m.Source{tool}).Return(nil)

	err := d.workflow.Clean(domain.CleanArgs{ListArgs: domain.ListArgs{Paths: []m.Path{"tool.py"}}, Reports: "out"})
	require.NoError(t, err)
}

func TestWorkflow_Clean_NoMatchingFiles(t *testing.T) {
	d := newWorkflowDeps(t)

	d.fs.EXPECT().Get([]m.Path{"tool.py"}).Return([]m.Source{pySource("tool.py")}, nil)

	err := d.workflow.Clean(domain.CleanArgs{
		ListArgs: domain.ListArgs{Paths: []m.Path{"tool.py"}, Exclude: []string{"tool"}},
		Reports:  "out",
	})
	require.NoError(t, err)
}
