package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/knave/internal/domain"
	domainmocks "github.com/mouse-blink/knave/internal/domain/mocks"
	m "github.com/mouse-blink/knave/internal/model"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestCleanCmd_AllReports(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _, _ := newTestRoot(newCleanCmd())

	mockWorkflow.On("Clean", mock.MatchedBy(func(args domain.CleanArgs) bool {
		return args.Paths == nil && args.Reports == m.Path(".knave-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"clean"})
	require.NoError(t, cmd.Execute())
}

func TestCleanCmd_SelectedPaths(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _, _ := newTestRoot(newCleanCmd())

	mockWorkflow.On("Clean", mock.MatchedBy(func(args domain.CleanArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./pkg/...") &&
			len(args.Exclude) == 1 && args.Exclude[0] == "_gen" &&
			args.Reports == m.Path("reports")
	})).Return(nil)

	cmd.SetArgs([]string{"clean", "./pkg/...", "-x", "_gen", "--reports", "reports"})
	require.NoError(t, cmd.Execute())
}
