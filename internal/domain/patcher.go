package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"

	"autotestfix.dev/pkg/autotestfix/internal/adapter"
	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

var (
	// ErrEmptyReplacement is returned when the actual value to write is empty.
	ErrEmptyReplacement = errors.New("replacement text is empty")
	// ErrInvalidSpan is returned for spans with a negative start or no length.
	ErrInvalidSpan = errors.New("invalid span")
)

// RerunMode decides how often the run configuration is triggered in one batch.
type RerunMode int

const (
	// RerunPerPatch triggers a re-run right after every successful patch.
	RerunPerPatch RerunMode = iota
	// RerunOnce triggers a single re-run after the batch when anything was patched.
	RerunOnce
	// RerunNever never triggers.
	RerunNever
)

// PatchOptions tunes a Patcher.
type PatchOptions struct {
	Rerun RerunMode
	// DryRun patches buffers in memory only: nothing is saved and nothing re-runs.
	DryRun bool
	// Logger receives diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
	// OnResult is called after each record is processed, in record order.
	OnResult func(index int, result m.RecordResult)
}

// Patcher applies the expected-to-actual patches of failed tests.
type Patcher interface {
	// ApplyPatch replaces span with actual in one all-or-nothing edit. It does not save.
	ApplyPatch(doc adapter.Document, span m.Span, actual string) error
	// Fix processes tests in order and returns one result per test.
	Fix(ctx context.Context, tests []m.FailedTest, cfg m.RunConfiguration) []m.RecordResult
}

type patcher struct {
	extractor *Extractor
	docs      adapter.DocumentAccess
	trigger   adapter.RunTrigger
	options   PatchOptions
	log       *slog.Logger
}

// NewPatcher constructs a Patcher. A nil extractor uses the default patterns and a nil
// trigger disables re-runs.
func NewPatcher(extractor *Extractor, docs adapter.DocumentAccess, trigger adapter.RunTrigger, options PatchOptions) Patcher {
	if extractor == nil {
		extractor = DefaultExtractor()
	}

	log := options.Logger
	if log == nil {
		log = slog.Default()
	}

	return &patcher{
		extractor: extractor,
		docs:      docs,
		trigger:   trigger,
		options:   options,
		log:       log,
	}
}

func (p *patcher) ApplyPatch(doc adapter.Document, span m.Span, actual string) error {
	if actual == "" {
		return ErrEmptyReplacement
	}

	if span.Start < 0 || span.Length <= 0 {
		return fmt.Errorf("%w: [%d, %d)", ErrInvalidSpan, span.Start, span.End())
	}

	return doc.Edit(func(tx adapter.Transaction) error {
		return tx.Replace(span.Start, span.End(), actual)
	})
}

func (p *patcher) Fix(ctx context.Context, tests []m.FailedTest, cfg m.RunConfiguration) []m.RecordResult {
	results := make([]m.RecordResult, 0, len(tests))
	lastPatched := -1

	for i, test := range tests {
		if err := ctx.Err(); err != nil {
			p.log.Warn("Fix interrupted", "processed", i, "total", len(tests), "error", err)
			break
		}

		result := p.fixOne(ctx, test)

		if result.Outcome == m.Patched {
			lastPatched = i

			if p.rerunEnabled() && p.options.Rerun == RerunPerPatch {
				p.rerun(ctx, cfg, &result)
			}
		}

		results = append(results, result)

		if p.options.OnResult != nil {
			p.options.OnResult(i, result)
		}
	}

	if lastPatched >= 0 && p.rerunEnabled() && p.options.Rerun == RerunOnce {
		p.rerun(ctx, cfg, &results[lastPatched])
	}

	return results
}

func (p *patcher) rerunEnabled() bool {
	return p.trigger != nil && !p.options.DryRun && p.options.Rerun != RerunNever
}

func (p *patcher) rerun(ctx context.Context, cfg m.RunConfiguration, result *m.RecordResult) {
	result.Rerun = true

	if err := p.trigger.Rerun(ctx, cfg); err != nil {
		p.log.Error("Failed to trigger re-run", "configuration", cfg.Name, "error", err)
		result.RerunError = err.Error()
	}
}

//nolint:cyclop // one early return per skip outcome
func (p *patcher) fixOne(ctx context.Context, test m.FailedTest) m.RecordResult {
	result := m.RecordResult{
		Test: test,
		Plan: m.NewPatchPlan(),
	}

	if !test.HasErrorMessage() {
		p.log.Debug("No error message, skipping", "location", test.LocationRef)
		return skip(result, m.SkippedNoError, m.ReasonNone)
	}

	line, ok := p.extractor.ExtractFailingLine(test.Stacktrace)
	if !ok {
		p.log.Warn("Failed to extract line number from stack trace", "location", test.LocationRef)
		return skip(result, m.SkippedUnparseable, m.ReasonNoLine)
	}

	result.Plan.Line = line

	expected, actual, ok := p.extractor.ExtractExpectedActual(test.Message())
	if !ok {
		p.log.Warn("Failed to extract expected and actual values", "location", test.LocationRef, "message", test.Message())
		return skip(result, m.SkippedUnparseable, m.ReasonNoAssertion)
	}

	result.Plan.Expected = &expected
	result.Plan.Actual = &actual

	doc, err := p.docs.Open(ctx, test.LocationRef)
	if err != nil {
		p.log.Debug("Document not resolved, skipping", "location", test.LocationRef, "error", err)
		return skip(result, m.SkippedUnresolved, m.ReasonNoDocument)
	}

	result.File = doc.Path()

	lineStart, err := doc.LineStartOffset(line)
	if err != nil {
		p.log.Debug("Line outside document, skipping", "path", doc.Path(), "line", line+1, "error", err)
		return skip(result, m.SkippedUnresolved, m.ReasonLineRange)
	}

	if text, lineErr := adapter.LineAt(doc, line); lineErr == nil {
		result.LineText = text
	}

	span, ok := LocateReplacementSpan(doc.Text(), lineStart, expected)
	if !ok {
		p.log.Warn("Expected value not found from failing line onward", "path", doc.Path(), "line", line+1, "expected", expected)
		return skip(result, m.SkippedNotFound, m.ReasonNone)
	}

	result.Plan.Span = &span
	before := doc.Text()

	if err := p.ApplyPatch(doc, span, actual); err != nil {
		p.log.Warn("Failed to apply patch", "path", doc.Path(), "error", err)
		return skip(result, m.SkippedUnresolved, m.ReasonEditFailed)
	}

	result.Outcome = m.Patched
	result.Diff = unifiedDiff(string(doc.Path()), before, doc.Text())

	p.log.Info("Patched expected value", "path", doc.Path(), "line", line+1, "expected", expected, "actual", actual)

	if p.options.DryRun {
		return result
	}

	if err := doc.Save(ctx); err != nil {
		p.log.Error("Failed to save document", "path", doc.Path(), "error", err)
		result.Outcome = m.SaveFailed
		result.SaveError = err.Error()
	}

	return result
}

func skip(result m.RecordResult, outcome m.Outcome, reason m.SkipReason) m.RecordResult {
	result.Outcome = outcome
	result.Reason = reason

	return result
}

func unifiedDiff(path, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path,
		Context:  1,
	})
	if err != nil {
		return ""
	}

	return diff
}
