package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

const (
	patchedMarker = "✅"
	skippedMarker = "⚠️"
	maxCellWidth  = 60
)

func outcomeMarker(outcome m.Outcome) string {
	if outcome.Skipped() {
		return skippedMarker
	}

	return patchedMarker
}

func describeOutcome(result m.RecordResult) string {
	if result.Reason != m.ReasonNone {
		return fmt.Sprintf("%s: %s", result.Outcome, result.Reason)
	}

	return result.Outcome.String()
}

func testLabel(test m.FailedTest) string {
	if test.Name != "" {
		return test.Name
	}

	return test.LocationRef
}

func planLine(plan m.PatchPlan) string {
	if plan.Line < 0 {
		return "-"
	}

	return fmt.Sprintf("%d", plan.Line+1)
}

func planChange(plan m.PatchPlan) string {
	if plan.Expected == nil || plan.Actual == nil {
		return "-"
	}

	return fmt.Sprintf("%s -> %s", *plan.Expected, *plan.Actual)
}

// firstLine returns the first line of s, shortened to the table cell width.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}

	s = strings.TrimRight(s, "\r")

	if len(s) > maxCellWidth {
		return s[:maxCellWidth-3] + "..."
	}

	return s
}

// renderRecordLines renders the progress lines for one processed record.
func renderRecordLines(index, total int, result m.RecordResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%d/%d] %s\n", index+1, total, testLabel(result.Test))

	if result.Test.LocationRef != "" {
		fmt.Fprintf(&b, "  location: %s\n", result.Test.LocationRef)
	}

	if result.Test.HasErrorMessage() {
		fmt.Fprintf(&b, "  message: %s\n", firstLine(result.Test.Message()))
	}

	if trace := strings.TrimSpace(result.Test.Stacktrace); trace != "" {
		b.WriteString("  stacktrace:\n")

		for _, frame := range strings.Split(trace, "\n") {
			fmt.Fprintf(&b, "    %s\n", strings.TrimSpace(frame))
		}
	}

	if result.LineText != "" {
		fmt.Fprintf(&b, "  line %s: %s\n", planLine(result.Plan), strings.TrimSpace(result.LineText))
	}

	if result.Plan.Expected != nil && result.Plan.Actual != nil {
		fmt.Fprintf(&b, "  expected: %s, actual: %s\n", *result.Plan.Expected, *result.Plan.Actual)
	}

	if !result.Outcome.Skipped() {
		fmt.Fprintf(&b, "  %s patched %s\n", patchedMarker, result.File)

		if result.Diff != "" {
			b.WriteString(indent(result.Diff, "    "))
		}
	} else {
		fmt.Fprintf(&b, "  %s %s\n", skippedMarker, describeOutcome(result))
	}

	if result.SaveError != "" {
		fmt.Fprintf(&b, "  %s save failed: %s\n", skippedMarker, result.SaveError)
	}

	if result.Rerun {
		if result.RerunError != "" {
			fmt.Fprintf(&b, "  %s re-run failed: %s\n", skippedMarker, result.RerunError)
		} else {
			b.WriteString("  re-run triggered\n")
		}
	}

	return b.String()
}

func indent(text, prefix string) string {
	var b strings.Builder

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}

		b.WriteString(prefix)
		b.WriteString(line)
	}

	if !strings.HasSuffix(text, "\n") {
		b.WriteString("\n")
	}

	return b.String()
}

func renderFailuresTable(tests []m.FailedTest) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Test", "Location", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	withMessage := 0

	for i, test := range tests {
		message := "-"
		if test.HasErrorMessage() {
			message = firstLine(test.Message())
			withMessage++
		}

		table.Append([]string{fmt.Sprintf("%d", i+1), testLabel(test), test.LocationRef, message})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total %d", len(tests)),
		"",
		fmt.Sprintf("%d with message", withMessage),
	})

	table.Render()

	return tableBuffer.String()
}

func renderReportTable(report m.RunReport) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Outcome", "File", "Line", "Change"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for _, result := range report.Results {
		file := string(result.File)
		if file == "" {
			file = "-"
		}

		table.Append([]string{
			testLabel(result.Test),
			outcomeMarker(result.Outcome) + " " + result.Outcome.String(),
			file,
			planLine(result.Plan),
			planChange(result.Plan),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(report.Results)),
		fmt.Sprintf("%d patched", report.Count(m.Patched)),
		"",
		"",
		fmt.Sprintf("%d re-run(s)", report.Reruns),
	})

	table.Render()

	return tableBuffer.String()
}

func renderReportHeader(report m.RunReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Run %s at %s (%s)\n", report.ID, report.StartedAt.Format("2006-01-02 15:04:05"), report.Duration)
	fmt.Fprintf(&b, "Results: %s (%s)\n", report.View.Dir, report.View.Format)

	if report.Configuration.Name != "" {
		fmt.Fprintf(&b, "Configuration: %s\n", report.Configuration.Name)
	}

	if report.DryRun {
		b.WriteString("Dry run: no files were written\n")
	}

	return b.String()
}
