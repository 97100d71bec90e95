package controller

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/knave/internal/model"
)

// SimpleUI implements UI by printing plain tables through the cobra command.
// Display methods may be called from several workers at once.
type SimpleUI struct {
	cmd *cobra.Command
	// out replaces the command's stdout when set.
	out io.Writer
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {}

// DisplayIdentifiers prints the rename candidates of every file.
func (s *SimpleUI) DisplayIdentifiers(reports []m.Report) {
	sorted := sortedReports(reports)

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Path", "Language", "Identifiers", "Names"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	total := 0

	for _, report := range sorted {
		names := strings.Join(report.Identifiers, ", ")
		if report.Failed() {
			names = "error: " + report.Error
		}

		table.Append([]string{
			string(report.Path),
			string(report.Language),
			fmt.Sprintf("%d", len(report.Identifiers)),
			names,
		})

		total += len(report.Identifiers)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		"",
		fmt.Sprintf("%d", total),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// DisplayConcurrencyInfo shows how the work is spread.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, files int) {
	s.printf("Renaming %d file(s) with %d worker(s)\n", files, threads)
}

// DisplayStartingFile prints nothing; progress is reported on completion.
func (s *SimpleUI) DisplayStartingFile(_ m.Path, _ int) {}

// DisplayCompletedFile prints one line per finished file.
func (s *SimpleUI) DisplayCompletedFile(report m.Report) {
	switch {
	case report.Failed():
		s.printf("%s: %s (%s)\n", report.Path, report.Status, report.Error)
	case len(report.Renames) > 0:
		s.printf("%s: %s %d identifier(s)\n", report.Path, report.Status, len(report.Renames))
	default:
		s.printf("%s: %s\n", report.Path, report.Status)
	}
}

// DisplayDiff prints a unified diff.
func (s *SimpleUI) DisplayDiff(_ m.Path, diff string) {
	if diff == "" {
		return
	}

	s.printf("\n%s", diff)

	if !strings.HasSuffix(diff, "\n") {
		s.printf("\n")
	}
}

// DisplaySummary prints the per-file status table followed by every rename.
func (s *SimpleUI) DisplaySummary(reports []m.Report) {
	sorted := sortedReports(reports)

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Renames", "Written"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	renames, failed := 0, 0

	for _, report := range sorted {
		written := "no"
		if report.Written {
			written = "yes"
		}

		if report.Failed() {
			failed++
		}

		renames += len(report.Renames)
		table.Append([]string{
			string(report.Path),
			string(report.Status),
			fmt.Sprintf("%d", len(report.Renames)),
			written,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("Failed %d", failed),
		fmt.Sprintf("%d", renames),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if renames == 0 {
		return
	}

	var mappingBuffer bytes.Buffer

	mapping := newTable(&mappingBuffer)
	mapping.SetHeader([]string{"Path", "From", "To"})

	for _, report := range sorted {
		for _, r := range report.Renames {
			mapping.Append([]string{string(report.Path), r.Original, r.Replacement})
		}
	}

	mapping.Render()
	s.printf("\n%s", mappingBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.out
	if out == nil {
		out = s.cmd.OutOrStdout()
	}

	_, _ = fmt.Fprintf(out, format, args...)
}

func newTable(buf *bytes.Buffer) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func sortedReports(reports []m.Report) []m.Report {
	sorted := make([]m.Report, len(reports))
	copy(sorted, reports)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	return sorted
}
