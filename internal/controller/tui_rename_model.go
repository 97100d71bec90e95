package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fileResult is one processed file in the results list.
type fileResult struct {
	path    string
	status  string
	err     string
	renames []string
	diff    string
}

func (r fileResult) FilterValue() string {
	return r.path + " " + r.status + " " + strings.Join(r.renames, " ")
}

var statusColors = map[string]lipgloss.Color{
	"renamed":           lipgloss.Color("2"),
	"nothing-to-rename": lipgloss.Color("8"),
	"ignored":           lipgloss.Color("5"),
	"failed":            lipgloss.Color("1"),
}

type resultDelegate struct {
	offset int
}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(fileResult)
	if !ok {
		return
	}

	pathWidth := m.Width() - 30 // status (18) + count (6) + spacing

	color, ok := statusColors[result.status]
	if !ok {
		color = lipgloss.Color("8")
	}

	statusStyle := lipgloss.NewStyle().Foreground(color).Bold(true).Width(18)
	countStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(6).Align(lipgloss.Right)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	displayPath := truncateToWidth(result.path, pathWidth)

	if index == m.Index() {
		statusStyle = selectedStyle().Width(18)
		countStyle = selectedStyle().Width(6).Align(lipgloss.Right)
		pathStyle = selectedStyle()
		displayPath = animateScroll(result.path, pathWidth, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		statusStyle.Render(result.status),
		countStyle.Render(fmt.Sprintf("%d", len(result.renames))),
		pathStyle.Render(displayPath),
	)
}

// renameModel shows worker progress while files are renamed and then the
// browsable results. View mode starts directly on the results.
type renameModel struct {
	width          int
	height         int
	progressBar    progress.Model
	totalFiles     int
	completedCount int
	threads        int
	workerFiles    map[int]string
	rendered       bool
	finished       bool
	results        []fileResult
	resultsList    list.Model
	delegate       resultDelegate
	animOffset     int
	lastSelected   int
	showDetail     bool
	title          string
}

func newRenameModel() renameModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := resultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return renameModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		workerFiles:  make(map[int]string),
		lastSelected: -1,
		title:        "🃏 Knave Rename",
	}
}

func (m renameModel) asViewer() renameModel {
	m.title = "🃏 Knave Report"

	return m
}

func (m renameModel) Init() tea.Cmd {
	return tick(100 * time.Millisecond)
}

func (m renameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTick()

	case concurrencyMsg:
		m.threads = msg.threads
		m.totalFiles = msg.files
		m.completedCount = 0
		m.rendered = true

	case startFileMsg:
		m.workerFiles[msg.worker] = msg.path
		m.rendered = true

	case completedFileMsg:
		m = m.handleCompleted(msg)

	case diffMsg:
		m = m.handleDiff(msg)

	case summaryMsg:
		m.finished = true
		m.rendered = true
	}

	return m, cmd
}

func (m renameModel) handleCompleted(msg completedFileMsg) renameModel {
	result := fileResult{
		path:    msg.path,
		status:  msg.status,
		err:     msg.err,
		renames: msg.renames,
		diff:    msg.diff,
	}

	replaced := false

	for i, r := range m.results {
		if r.path == msg.path {
			if result.diff == "" {
				result.diff = r.diff
			}

			m.results[i] = result
			replaced = true

			break
		}
	}

	if !replaced {
		m.results = append(m.results, result)
		m.completedCount++

		for worker, path := range m.workerFiles {
			if path == msg.path {
				delete(m.workerFiles, worker)
			}
		}
	}

	m.syncItems()
	m.rendered = true

	if m.totalFiles > 0 && m.completedCount >= m.totalFiles {
		m.finished = true
	}

	return m
}

func (m renameModel) handleDiff(msg diffMsg) renameModel {
	for i, r := range m.results {
		if r.path == msg.path {
			m.results[i].diff = msg.diff
		}
	}

	m.syncItems()

	return m
}

func (m *renameModel) syncItems() {
	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)
}

func (m renameModel) progressPercent() float64 {
	if m.totalFiles == 0 {
		return 0
	}

	return float64(m.completedCount) / float64(m.totalFiles)
}

func (m renameModel) View() string {
	if !m.rendered {
		return "Preparing files…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m renameModel) header(summary string) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2).
		Render(m.title)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2).Render(summary),
	)
}

func accent(v int) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(fmt.Sprintf("%d", v))
}

func (m renameModel) viewProgress() string {
	summary := fmt.Sprintf("Progress: %s / %s  •  Workers: %s",
		accent(m.completedCount), accent(m.totalFiles), accent(m.threads))

	progressView := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent()))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(summary),
		progressView,
		m.renderWorkers(),
		footer,
	)
}

func (m renameModel) renderWorkers() string {
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	available := m.width - 8 // border (2) + padding (2) + margin (4)

	lines := make([]string, 0, m.threads)

	for i := range m.threads {
		label := fmt.Sprintf("Worker %d: ", i)

		file := m.workerFiles[i]
		if file == "" {
			lines = append(lines, label+"idle")
			continue
		}

		lines = append(lines, label+fileStyle.Render(truncateToWidth(file, available-len(label))))
	}

	if len(lines) == 0 {
		lines = append(lines, "idle")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m renameModel) viewResults() string {
	summary := fmt.Sprintf("Files: %s  •  Renamed: %s  •  Unchanged: %s  •  Ignored: %s  •  Failed: %s",
		accent(len(m.results)),
		accent(m.countStatus("renamed")),
		accent(m.countStatus("nothing-to-rename")),
		accent(m.countStatus("ignored")),
		accent(m.countStatus("failed")),
	)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • / filter • enter/click details • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header(summary),
		m.renderResults(),
		footer,
	)
}

func (m renameModel) renderResults() string {
	listWidth := m.width - 4

	detail := m.renderDetail(listWidth)

	listHeight := m.height - 9 - lipgloss.Height(detail)
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headers := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth).
		Render(fmt.Sprintf("%-18s  %6s  %s", "Status", "Names", "File"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))

	if detail == "" {
		return box
	}

	return lipgloss.JoinVertical(lipgloss.Left, box, detail)
}

func (m renameModel) countStatus(status string) int {
	count := 0

	for _, r := range m.results {
		if r.status == status {
			count++
		}
	}

	return count
}

func (m renameModel) detailMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

// renderDetail shows the renames, error and diff of the selected file.
func (m renameModel) renderDetail(width int) string {
	if !m.showDetail {
		return ""
	}

	result, ok := m.resultsList.SelectedItem().(fileResult)
	if !ok {
		return ""
	}

	contentWidth := max(width-4, 10)

	var lines []string
	if result.err != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(truncateToWidth(result.err, contentWidth)))
	}

	for _, r := range result.renames {
		lines = append(lines, truncateToWidth(r, contentWidth))
	}

	if diff := strings.TrimSpace(result.diff); diff != "" {
		for _, line := range strings.Split(diff, "\n") {
			lines = append(lines, renderDiffLine(line, contentWidth))
		}
	}

	if len(lines) == 0 {
		lines = append(lines, "no changes")
	}

	if maxLines := m.detailMaxLines(); len(lines) > maxLines {
		lines = append(lines[:maxLines-1], "…")
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth("Details • "+result.path, contentWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...))
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	}

	return style.Render(truncateToWidth(line, width))
}

func (m renameModel) handleKeyMsg(msg tea.KeyMsg) (renameModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if !m.finished {
		return m, nil
	}

	if (msg.String() == "enter" || msg.String() == " ") && m.resultsList.FilterState() != list.Filtering {
		m.showDetail = !m.showDetail
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)
	m.trackSelection()

	return m, cmd
}

func (m renameModel) handleMouseMsg(msg tea.MouseMsg) (renameModel, tea.Cmd) {
	if !m.finished {
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)
	m.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.resultsList.FilterState() != list.Filtering {
		m.showDetail = !m.showDetail
	}

	return m, cmd
}

func (m *renameModel) trackSelection() {
	if m.resultsList.Index() == m.lastSelected {
		return
	}

	m.lastSelected = m.resultsList.Index()
	m.animOffset = 0
	m.delegate.offset = 0
	m.resultsList.SetDelegate(m.delegate)
	m.showDetail = false
}

func (m renameModel) handleWindowSize(msg tea.WindowSizeMsg) renameModel {
	m.width = msg.Width
	m.height = msg.Height
	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m renameModel) handleTick() (renameModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tick(150 * time.Millisecond)
}
