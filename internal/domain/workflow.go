package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"autotestfix.dev/pkg/autotestfix/internal/adapter"
	"autotestfix.dev/pkg/autotestfix/internal/controller"
	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// FixArgs contains the arguments for one fix run.
type FixArgs struct {
	View          m.ResultsView
	Configuration m.RunConfiguration
	// Project is the root that location references resolve against.
	Project     m.Path
	SourceRoots []string
	Patterns    Patterns
	// Output is the directory of the run report; empty skips saving it.
	Output m.Path
	Rerun  RerunMode
	DryRun bool
}

// ListArgs contains the arguments for listing failed tests.
type ListArgs struct {
	View m.ResultsView
}

// ViewArgs contains the arguments for showing the last run report.
type ViewArgs struct {
	Output m.Path
}

// WatchArgs contains the arguments for watching a results view.
type WatchArgs struct {
	FixArgs
}

// DocumentsFactory returns a fresh DocumentAccess for one fix run.
type DocumentsFactory func(project m.Path, sourceRoots []string) adapter.DocumentAccess

// Workflow is the entry point of every command.
type Workflow interface {
	// Available reports whether the fix action can run against view.
	Available(ctx context.Context, view m.ResultsView) (bool, error)
	Fix(ctx context.Context, args FixArgs) error
	List(ctx context.Context, args ListArgs) error
	View(ctx context.Context, args ViewArgs) error
	// Watch runs Fix now and after every settled change of the results view until ctx is done.
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	results   adapter.TestResultSource
	documents DocumentsFactory
	trigger   adapter.RunTrigger
	reports   adapter.ReportStore
	watcher   adapter.ResultsWatcher
	ui        controller.UI
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	results adapter.TestResultSource,
	documents DocumentsFactory,
	trigger adapter.RunTrigger,
	reports adapter.ReportStore,
	watcher adapter.ResultsWatcher,
	ui controller.UI,
) Workflow {
	return &workflow{
		results:   results,
		documents: documents,
		trigger:   trigger,
		reports:   reports,
		watcher:   watcher,
		ui:        ui,
		now:       time.Now,
	}
}

func (w *workflow) Available(ctx context.Context, view m.ResultsView) (bool, error) {
	if view.Dir == "" {
		return false, nil
	}

	return w.results.Available(ctx, view)
}

func (w *workflow) Fix(ctx context.Context, args FixArgs) error {
	if err := w.ui.Start(ctx, controller.WithFixMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	if _, err := w.fix(ctx, args); err != nil {
		return err
	}

	w.ui.Wait(ctx)

	return nil
}

func (w *workflow) fix(ctx context.Context, args FixArgs) (m.RunReport, error) {
	available, err := w.Available(ctx, args.View)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("check results: %w", err)
	}

	if !available {
		slog.Info("No test results available", "dir", args.View.Dir)
		w.ui.DisplayUnavailable(ctx, args.View)

		return m.RunReport{}, nil
	}

	extractor, err := NewExtractor(args.Patterns)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("patterns: %w", err)
	}

	tests, err := w.results.Failures(ctx, args.View)
	if err != nil {
		slog.Error("Failed to load failed tests", "dir", args.View.Dir, "error", err)
		return m.RunReport{}, fmt.Errorf("load failures: %w", err)
	}

	started := w.now()
	report := m.RunReport{
		ID:            uuid.NewString(),
		StartedAt:     started,
		View:          args.View,
		Configuration: args.Configuration,
		DryRun:        args.DryRun,
	}

	rerun := args.Rerun
	if rerun != RerunNever && !args.Configuration.Valid() {
		slog.Warn("No runnable configuration selected, re-run disabled", "configuration", args.Configuration.Name)

		rerun = RerunNever
	}

	w.ui.DisplayRunInfo(ctx, args.View, args.Configuration, len(tests))

	patcher := NewPatcher(extractor, w.documents(args.Project, args.SourceRoots), w.trigger, PatchOptions{
		Rerun:  rerun,
		DryRun: args.DryRun,
		OnResult: func(index int, result m.RecordResult) {
			w.ui.DisplayRecordResult(ctx, index, result)
		},
	})

	report.Results = patcher.Fix(ctx, tests, args.Configuration)
	report.Duration = w.now().Sub(started)

	for _, result := range report.Results {
		if result.Rerun {
			report.Reruns++
		}
	}

	slog.Info("Fix run finished",
		"id", report.ID,
		"records", len(report.Results),
		"patched", report.Count(m.Patched),
		"reruns", report.Reruns,
	)

	w.ui.DisplaySummary(ctx, report)

	if args.Output != "" {
		if err := w.reports.SaveReport(args.Output, report); err != nil {
			slog.Error("Failed to save run report", "output", args.Output, "error", err)
			return report, fmt.Errorf("save report: %w", err)
		}
	}

	return report, nil
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	available, err := w.Available(ctx, args.View)
	if err != nil {
		return fmt.Errorf("check results: %w", err)
	}

	if !available {
		w.ui.DisplayUnavailable(ctx, args.View)
		return nil
	}

	tests, err := w.results.Failures(ctx, args.View)
	if err != nil {
		return fmt.Errorf("load failures: %w", err)
	}

	if err := w.ui.DisplayFailures(ctx, tests); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.reports.LoadReport(args.Output)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.ui.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	if err := w.ui.DisplayReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)

	return nil
}
