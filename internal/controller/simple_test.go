package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_FixRun(t *testing.T) {
	ctx := context.Background()
	ui, buf := newTestSimpleUI()
	view := m.ResultsView{Dir: "target/surefire-reports", Format: m.FormatJUnit}

	require.NoError(t, ui.Start(ctx, WithFixMode()))
	defer ui.Close(ctx)

	ui.DisplayRunInfo(ctx, view, m.RunConfiguration{Name: "unit"}, 2)
	ui.DisplayRecordResult(ctx, 0, patchedResult())
	ui.DisplayRecordResult(ctx, 1, m.RecordResult{
		Test:    m.FailedTest{LocationRef: "java:test://com.acme.FooTest/boom"},
		Plan:    m.NewPatchPlan(),
		Outcome: m.SkippedNoError,
	})
	ui.DisplaySummary(ctx, m.RunReport{Results: []m.RecordResult{patchedResult()}, Reruns: 1})
	ui.Wait(ctx)

	out := buf.String()
	assert.Contains(t, out, "Fixing 2 failed test(s) from target/surefire-reports (re-run: unit)")
	assert.Contains(t, out, "[1/2] testSum")
	assert.Contains(t, out, "[2/2] java:test://com.acme.FooTest/boom")
	assert.Contains(t, out, patchedMarker)
	assert.Contains(t, out, skippedMarker)
	assert.Contains(t, out, "5 -> 7")
}

func TestSimpleUI_RunInfoWithoutConfiguration(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayRunInfo(context.Background(), m.ResultsView{Dir: "results"}, m.RunConfiguration{}, 0)
	assert.Contains(t, buf.String(), "(re-run: none)")
}

func TestSimpleUI_Messages(t *testing.T) {
	ctx := context.Background()
	ui, buf := newTestSimpleUI()

	ui.DisplayUnavailable(ctx, m.ResultsView{Dir: "build/test-results", Format: m.FormatJUnit})
	ui.DisplayWatching(ctx, "build/test-results")
	require.NoError(t, ui.DisplayFailures(ctx, nil))

	out := buf.String()
	assert.Contains(t, out, "No test results available in build/test-results (junit)")
	assert.Contains(t, out, "Watching build/test-results for new test results")
	assert.Contains(t, out, "No failed tests")
}

func TestSimpleUI_DisplayFailuresAndReport(t *testing.T) {
	ctx := context.Background()
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayFailures(ctx, []m.FailedTest{patchedResult().Test}))
	assert.Contains(t, buf.String(), "testSum")

	buf.Reset()

	require.NoError(t, ui.DisplayReport(ctx, m.RunReport{
		ID:      "run-7",
		View:    m.ResultsView{Dir: "target/surefire-reports", Format: m.FormatJUnit},
		Results: []m.RecordResult{patchedResult()},
	}))
	assert.Contains(t, buf.String(), "Run run-7")
	assert.Contains(t, buf.String(), "src/test/java/com/acme/FooTest.java")
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui, buf := newTestSimpleUI()

	assert.ErrorIs(t, ui.Start(ctx), context.Canceled)
	ui.DisplayUnavailable(ctx, m.ResultsView{Dir: "x"})
	ui.DisplayRecordResult(ctx, 0, patchedResult())
	assert.ErrorIs(t, ui.DisplayFailures(ctx, nil), context.Canceled)
	assert.ErrorIs(t, ui.DisplayReport(ctx, m.RunReport{}), context.Canceled)
	assert.Empty(t, buf.String())
}
