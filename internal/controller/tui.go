package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	patchedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	skippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

const tuiTitle = "autotestfix"

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	mode    StartMode
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress view for fix and watch modes. List and view modes render
// on demand and start nothing.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = cfg.mode

	if cfg.mode != ModeFix && cfg.mode != ModeWatch {
		return nil
	}

	if t.program != nil {
		return nil
	}

	model := newProgressModel(cfg.mode == ModeWatch)
	program := tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	done := make(chan struct{})

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			slog.Error("Progress view stopped", "error", err)
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the progress view and waits for it to restore the terminal.
func (t *TUI) Close(ctx context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Wait blocks until the progress view exits on its own.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayUnavailable reports that there is nothing to fix.
func (t *TUI) DisplayUnavailable(ctx context.Context, view m.ResultsView) {
	if err := ctx.Err(); err != nil {
		return
	}

	text := fmt.Sprintf("No test results available in %s (%s)", view.Dir, view.Format)
	if !t.send(noticeMsg(text)) {
		_, _ = fmt.Fprintln(t.output, skippedStyle.Render(text))
	}
}

// DisplayRunInfo shows what the fix run operates on.
func (t *TUI) DisplayRunInfo(ctx context.Context, view m.ResultsView, cfg m.RunConfiguration, records int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(runInfoMsg{view: view, config: cfg.Name, total: records})
}

// DisplayRecordResult adds one processed record to the progress view.
func (t *TUI) DisplayRecordResult(ctx context.Context, index int, result m.RecordResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !t.send(recordMsg{index: index, result: result}) {
		_, _ = fmt.Fprintln(t.output, renderRecordSummary(result))
	}
}

// DisplaySummary shows the outcome table; in fix mode the progress view exits afterwards.
func (t *TUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !t.send(summaryMsg{report: report}) {
		_, _ = fmt.Fprint(t.output, renderReportTable(report))
	}
}

// DisplayWatching shows the watched directory.
func (t *TUI) DisplayWatching(ctx context.Context, dir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.send(watchingMsg{dir: dir})
}

// DisplayFailures shows the failed tests, paging when they do not fit the terminal.
func (t *TUI) DisplayFailures(ctx context.Context, tests []m.FailedTest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(tuiTitle+" - failed tests") + "\n\n")

	if len(tests) == 0 {
		b.WriteString("  No failed tests\n")
	} else {
		b.WriteString(renderFailuresTable(tests))
	}

	return t.page(ctx, b.String())
}

// DisplayReport shows a stored run report, paging when it does not fit the terminal.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(tuiTitle+" - last run") + "\n\n")
	b.WriteString(infoStyle.Render(renderReportHeader(report)) + "\n\n")
	b.WriteString(renderReportTable(report))

	for _, result := range report.Results {
		if result.Diff != "" {
			b.WriteString("\n" + renderRecordSummary(result) + "\n")
			b.WriteString(result.Diff)
		}
	}

	return t.page(ctx, b.String())
}

// page prints short content directly and opens a scrollable pager otherwise.
func (t *TUI) page(ctx context.Context, content string) error {
	width, height := t.size()

	if height == 0 || strings.Count(content, "\n") < height-1 {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(content, width, height),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

func (t *TUI) size() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func renderRecordSummary(result m.RecordResult) string {
	label := testLabel(result.Test)

	if result.Outcome.Skipped() {
		line := skippedStyle.Render(fmt.Sprintf("%s %s  %s", skippedMarker, label, describeOutcome(result)))
		if result.SaveError != "" {
			return line + "  " + errorStyle.Render(result.SaveError)
		}

		return line
	}

	line := fmt.Sprintf("%s %s  %s:%s  %s", patchedMarker, label, result.File, planLine(result.Plan), planChange(result.Plan))
	if result.RerunError != "" {
		return line + "  " + errorStyle.Render(result.RerunError)
	}

	return patchedStyle.Render(line)
}

type (
	runInfoMsg struct {
		view   m.ResultsView
		config string
		total  int
	}
	recordMsg struct {
		index  int
		result m.RecordResult
	}
	summaryMsg struct {
		report m.RunReport
	}
	watchingMsg struct {
		dir m.Path
	}
	noticeMsg string
)

// progressModel renders fix progress: a spinner while records are processed, then the summary.
type progressModel struct {
	spinner  spinner.Model
	watch    bool
	view     m.ResultsView
	config   string
	total    int
	lines    []string
	notice   string
	summary  string
	watching m.Path
	runs     int
	done     bool
}

func newProgressModel(watch bool) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return progressModel{
		spinner: s,
		watch:   watch,
	}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd

		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd

	case runInfoMsg:
		pm.view = msg.view
		pm.config = msg.config
		pm.total = msg.total
		pm.lines = nil
		pm.notice = ""
		pm.summary = ""

		return pm, nil

	case recordMsg:
		pm.lines = append(pm.lines, renderRecordSummary(msg.result))

		return pm, nil

	case summaryMsg:
		pm.summary = renderReportTable(msg.report)
		pm.runs++

		if !pm.watch {
			pm.done = true
			return pm, tea.Quit
		}

		return pm, nil

	case watchingMsg:
		pm.watching = msg.dir

		return pm, nil

	case noticeMsg:
		pm.notice = string(msg)

		if !pm.watch {
			pm.done = true
			return pm, tea.Quit
		}

		return pm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			pm.done = true
			return pm, tea.Quit
		}
	}

	return pm, nil
}

func (pm progressModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(tuiTitle) + "\n")

	if pm.view.Dir != "" {
		config := pm.config
		if config == "" {
			config = "none"
		}

		b.WriteString(infoStyle.Render(fmt.Sprintf("results: %s  re-run: %s", pm.view.Dir, config)) + "\n")
	}

	b.WriteString("\n")

	for _, line := range pm.lines {
		b.WriteString("  " + line + "\n")
	}

	if pm.notice != "" {
		b.WriteString("  " + skippedStyle.Render(pm.notice) + "\n")
	}

	if pm.summary != "" {
		b.WriteString("\n" + pm.summary)
	}

	switch {
	case pm.done:
	case pm.watch && (pm.summary != "" || pm.total == 0):
		fmt.Fprintf(&b, "\n%s watching %s (%d run(s))\n", pm.spinner.View(), pm.watching, pm.runs)
		b.WriteString(helpStyle.Render("  Ctrl+C to stop") + "\n")
	default:
		fmt.Fprintf(&b, "\n%s fixing %d/%d\n", pm.spinner.View(), len(pm.lines), pm.total)
	}

	return b.String()
}

// pagerModel scrolls long static content.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, height-1)
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pg pagerModel) Init() tea.Cmd {
	return nil
}

func (pg pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pg.viewport.Width = msg.Width
		pg.viewport.Height = msg.Height - 1

		return pg, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pg, tea.Quit
		case "g", "home":
			pg.viewport.GotoTop()
			return pg, nil
		case "G", "end":
			pg.viewport.GotoBottom()
			return pg, nil
		}
	}

	var cmd tea.Cmd

	pg.viewport, cmd = pg.viewport.Update(msg)

	return pg, cmd
}

func (pg pagerModel) View() string {
	footer := helpStyle.Render(fmt.Sprintf("  %3.f%%  ↑/k up  ↓/j down  g top  G bottom  q quit", pg.viewport.ScrollPercent()*100))

	return pg.viewport.View() + "\n" + footer
}
