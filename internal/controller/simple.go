package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd   *cobra.Command
	total int

	patched *color.Color
	skipped *color.Color
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:     cmd,
		patched: color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.total = 0

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayUnavailable reports that there is nothing to fix.
func (s *SimpleUI) DisplayUnavailable(ctx context.Context, view m.ResultsView) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("No test results available in %s (%s)\n", view.Dir, view.Format)
}

// DisplayRunInfo shows what the fix run operates on.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, view m.ResultsView, cfg m.RunConfiguration, records int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.total = records

	name := cfg.Name
	if name == "" {
		name = "none"
	}

	s.printf("Fixing %d failed test(s) from %s (re-run: %s)\n", records, view.Dir, name)
}

// DisplayRecordResult prints the progress lines of one record.
func (s *SimpleUI) DisplayRecordResult(ctx context.Context, index int, result m.RecordResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	total := s.total
	if total <= index {
		total = index + 1
	}

	s.printf("%s", s.colorize(renderRecordLines(index, total, result)))
}

// DisplaySummary prints the outcome table of a finished run.
func (s *SimpleUI) DisplaySummary(ctx context.Context, report m.RunReport) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderReportTable(report))
}

// DisplayFailures prints the failed tests of a results view.
func (s *SimpleUI) DisplayFailures(ctx context.Context, tests []m.FailedTest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(tests) == 0 {
		s.printf("No failed tests\n")
		return nil
	}

	s.printf("%s", renderFailuresTable(tests))

	return nil
}

// DisplayReport prints a stored run report.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", renderReportHeader(report), renderReportTable(report))

	return nil
}

// DisplayWatching announces that the results dir is being watched.
func (s *SimpleUI) DisplayWatching(ctx context.Context, dir m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Watching %s for new test results (Ctrl+C to stop)\n", dir)
}

// colorize paints the outcome markers of rendered lines.
func (s *SimpleUI) colorize(text string) string {
	text = strings.ReplaceAll(text, patchedMarker, s.patched.Sprint(patchedMarker))
	text = strings.ReplaceAll(text, skippedMarker, s.skipped.Sprint(skippedMarker))

	return text
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
