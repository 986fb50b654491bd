package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"autotestfix.dev/pkg/autotestfix/internal/adapter"
	adaptermocks "autotestfix.dev/pkg/autotestfix/internal/adapter/mocks"
	controllermocks "autotestfix.dev/pkg/autotestfix/internal/controller/mocks"
	"autotestfix.dev/pkg/autotestfix/internal/domain"
	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

var surefireView = m.ResultsView{Dir: "target/surefire-reports", Format: m.FormatJUnit}

type workflowDeps struct {
	results *adaptermocks.MockTestResultSource
	docs    *adaptermocks.MockDocumentAccess
	trigger *adaptermocks.MockRunTrigger
	reports *adaptermocks.MockReportStore
	watcher *adaptermocks.MockResultsWatcher
	ui      *controllermocks.MockUI
}

func newWorkflow(t *testing.T) (domain.Workflow, workflowDeps) {
	t.Helper()

	deps := workflowDeps{
		results: adaptermocks.NewMockTestResultSource(t),
		docs:    adaptermocks.NewMockDocumentAccess(t),
		trigger: adaptermocks.NewMockRunTrigger(t),
		reports: adaptermocks.NewMockReportStore(t),
		watcher: adaptermocks.NewMockResultsWatcher(t),
		ui:      controllermocks.NewMockUI(t),
	}

	wf := domain.NewWorkflow(
		deps.results,
		func(m.Path, []string) adapter.DocumentAccess { return deps.docs },
		deps.trigger,
		deps.reports,
		deps.watcher,
		deps.ui,
	)

	return wf, deps
}

func TestWorkflow_Available(t *testing.T) {
	wf, deps := newWorkflow(t)
	ctx := context.Background()

	ok, err := wf.Available(ctx, m.ResultsView{})
	require.NoError(t, err)
	assert.False(t, ok, "no selected view")

	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()

	ok, err = wf.Available(ctx, surefireView)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWorkflow_Fix(t *testing.T) {
	wf, deps := newWorkflow(t)
	ctx := context.Background()
	saved := newSavedDoc(fooTestSource)

	tests := []m.FailedTest{
		failedTest(fooTestLocation, "expected: 5 but was: 7", "at FooTest.java:12"),
		{LocationRef: "java:test://com.acme.FooTest/boom"},
	}

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().Wait(mock.Anything).Once()
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()
	deps.results.EXPECT().Failures(mock.Anything, surefireView).Return(tests, nil).Once()
	deps.ui.EXPECT().DisplayRunInfo(mock.Anything, surefireView, unitConfig, 2).Once()
	deps.docs.EXPECT().Open(mock.Anything, fooTestLocation).Return(saved.doc, nil).Once()
	deps.trigger.EXPECT().Rerun(mock.Anything, unitConfig).Return(nil).Once()

	var indexes []int

	deps.ui.EXPECT().DisplayRecordResult(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, index int, _ m.RecordResult) {
			indexes = append(indexes, index)
		}).
		Times(2)

	var summary m.RunReport

	deps.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).
		Run(func(_ context.Context, report m.RunReport) {
			summary = report
		}).
		Once()

	var stored m.RunReport

	deps.reports.EXPECT().SaveReport(m.Path(".autotestfix"), mock.Anything).
		Run(func(_ m.Path, report m.RunReport) {
			stored = report
		}).
		Return(nil).
		Once()

	err := wf.Fix(ctx, domain.FixArgs{
		View:          surefireView,
		Configuration: unitConfig,
		Output:        ".autotestfix",
	})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, indexes)
	assert.NotEmpty(t, summary.ID)
	assert.Equal(t, summary.ID, stored.ID)
	assert.Equal(t, surefireView, stored.View)
	require.Len(t, stored.Results, 2)
	assert.Equal(t, m.Patched, stored.Results[0].Outcome)
	assert.Equal(t, m.SkippedNoError, stored.Results[1].Outcome)
	assert.Equal(t, 1, stored.Reruns)
	assert.Equal(t, "assertEquals(7, result);", lineOf(t, saved.doc, 11))
}

func TestWorkflow_Fix_WithoutConfigurationSkipsRerun(t *testing.T) {
	wf, deps := newWorkflow(t)
	saved := newSavedDoc(fooTestSource)

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().Wait(mock.Anything).Once()
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()
	deps.results.EXPECT().Failures(mock.Anything, surefireView).Return([]m.FailedTest{
		failedTest(fooTestLocation, "expected: 5 but was: 7", "at FooTest.java:12"),
	}, nil).Once()
	deps.ui.EXPECT().DisplayRunInfo(mock.Anything, surefireView, m.RunConfiguration{}, 1).Once()
	deps.docs.EXPECT().Open(mock.Anything, fooTestLocation).Return(saved.doc, nil).Once()
	deps.ui.EXPECT().DisplayRecordResult(mock.Anything, 0, mock.Anything).Once()
	deps.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(report m.RunReport) bool {
		return report.Reruns == 0 && report.Count(m.Patched) == 1
	})).Once()

	require.NoError(t, wf.Fix(context.Background(), domain.FixArgs{View: surefireView}))
	assert.Len(t, saved.saves, 1)
}

func TestWorkflow_Fix_InvalidPatterns(t *testing.T) {
	wf, deps := newWorkflow(t)

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()

	err := wf.Fix(context.Background(), domain.FixArgs{
		View:     surefireView,
		Patterns: domain.Patterns{Line: `Test\.java:\d+`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "patterns")
}

func TestWorkflow_Fix_Unavailable(t *testing.T) {
	wf, deps := newWorkflow(t)

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().Wait(mock.Anything).Once()
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(false, nil).Once()
	deps.ui.EXPECT().DisplayUnavailable(mock.Anything, surefireView).Once()

	require.NoError(t, wf.Fix(context.Background(), domain.FixArgs{View: surefireView, Output: ".autotestfix"}))
}

func TestWorkflow_Fix_Errors(t *testing.T) {
	t.Run("start fails", func(t *testing.T) {
		wf, deps := newWorkflow(t)
		deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(errors.New("no terminal")).Once()

		assert.EqualError(t, wf.Fix(context.Background(), domain.FixArgs{View: surefireView}), "no terminal")
	})

	t.Run("failures cannot be loaded", func(t *testing.T) {
		wf, deps := newWorkflow(t)

		deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		deps.ui.EXPECT().Close(mock.Anything).Once()
		deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()
		deps.results.EXPECT().Failures(mock.Anything, surefireView).Return(nil, adapter.ErrNoResults).Once()

		err := wf.Fix(context.Background(), domain.FixArgs{View: surefireView})
		require.Error(t, err)
		assert.ErrorIs(t, err, adapter.ErrNoResults)
	})

	t.Run("report cannot be saved", func(t *testing.T) {
		wf, deps := newWorkflow(t)

		deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		deps.ui.EXPECT().Close(mock.Anything).Once()
		deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()
		deps.results.EXPECT().Failures(mock.Anything, surefireView).Return(nil, nil).Once()
		deps.ui.EXPECT().DisplayRunInfo(mock.Anything, surefireView, unitConfig, 0).Once()
		deps.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Once()
		deps.reports.EXPECT().SaveReport(m.Path("out"), mock.Anything).Return(errors.New("disk full")).Once()

		err := wf.Fix(context.Background(), domain.FixArgs{View: surefireView, Configuration: unitConfig, Output: "out"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save report")
	})
}

func TestWorkflow_List(t *testing.T) {
	wf, deps := newWorkflow(t)

	tests := []m.FailedTest{failedTest(fooTestLocation, "expected: 5 but was: 7", "at FooTest.java:12")}

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().Wait(mock.Anything).Once()
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(true, nil).Once()
	deps.results.EXPECT().Failures(mock.Anything, surefireView).Return(tests, nil).Once()
	deps.ui.EXPECT().DisplayFailures(mock.Anything, tests).Return(nil).Once()

	require.NoError(t, wf.List(context.Background(), domain.ListArgs{View: surefireView}))
}

func TestWorkflow_List_Unavailable(t *testing.T) {
	wf, deps := newWorkflow(t)

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().DisplayUnavailable(mock.Anything, m.ResultsView{}).Once()

	require.NoError(t, wf.List(context.Background(), domain.ListArgs{}))
}

func TestWorkflow_View(t *testing.T) {
	t.Run("shows the last report", func(t *testing.T) {
		wf, deps := newWorkflow(t)
		report := m.RunReport{ID: "last", View: surefireView}

		deps.reports.EXPECT().LoadReport(m.Path(".autotestfix")).Return(report, nil).Once()
		deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
		deps.ui.EXPECT().Close(mock.Anything).Once()
		deps.ui.EXPECT().Wait(mock.Anything).Once()
		deps.ui.EXPECT().DisplayReport(mock.Anything, report).Return(nil).Once()

		require.NoError(t, wf.View(context.Background(), domain.ViewArgs{Output: ".autotestfix"}))
	})

	t.Run("missing report does not start the UI", func(t *testing.T) {
		wf, deps := newWorkflow(t)

		deps.reports.EXPECT().LoadReport(m.Path(".autotestfix")).Return(m.RunReport{}, adapter.ErrNoReport).Once()

		err := wf.View(context.Background(), domain.ViewArgs{Output: ".autotestfix"})
		assert.ErrorIs(t, err, adapter.ErrNoReport)
	})
}

func TestWorkflow_Watch(t *testing.T) {
	wf, deps := newWorkflow(t)

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().DisplayWatching(mock.Anything, surefireView.Dir).Once()

	// The initial run plus one per settled change.
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(false, nil).Times(3)
	deps.ui.EXPECT().DisplayUnavailable(mock.Anything, surefireView).Times(3)

	deps.watcher.EXPECT().Watch(mock.Anything, surefireView.Dir, mock.Anything).
		RunAndReturn(func(_ context.Context, _ m.Path, onChange func()) error {
			onChange()
			onChange()

			return nil
		}).
		Once()

	err := wf.Watch(context.Background(), domain.WatchArgs{FixArgs: domain.FixArgs{View: surefireView}})
	require.NoError(t, err)
}

func TestWorkflow_Watch_Error(t *testing.T) {
	wf, deps := newWorkflow(t)

	deps.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	deps.ui.EXPECT().Close(mock.Anything).Once()
	deps.ui.EXPECT().DisplayWatching(mock.Anything, surefireView.Dir).Once()
	deps.results.EXPECT().Available(mock.Anything, surefireView).Return(false, nil).Once()
	deps.ui.EXPECT().DisplayUnavailable(mock.Anything, surefireView).Once()
	deps.watcher.EXPECT().Watch(mock.Anything, surefireView.Dir, mock.Anything).
		Return(errors.New("too many open files")).Once()

	err := wf.Watch(context.Background(), domain.WatchArgs{FixArgs: domain.FixArgs{View: surefireView}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch target/surefire-reports")
}
