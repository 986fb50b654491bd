// Package adapter contains the infrastructure adapters the patcher talks to: test results,
// source documents, run configurations and report persistence.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// ErrNoResults is returned when a results view holds no report files.
var ErrNoResults = errors.New("no test results found")

// DefaultJUnitPattern matches Surefire/Gradle JUnit XML reports anywhere below the results dir.
const DefaultJUnitPattern = "**/TEST-*.xml"

// DefaultJSONPattern matches JSON failure dumps written by IDE bridges.
const DefaultJSONPattern = "**/*.failures.json"

// TestResultSource supplies the failed test records of a results view in tree order.
type TestResultSource interface {
	// Failures returns the records of every report in the view, ordered by report
	// path and then by position inside the report.
	Failures(ctx context.Context, view m.ResultsView) ([]m.FailedTest, error)

	// Available reports whether the view exists and holds at least one report.
	Available(ctx context.Context, view m.ResultsView) (bool, error)
}

// reportDecoder turns one report file into records.
type reportDecoder func(path string) ([]m.FailedTest, error)

// LocalTestResultSource reads reports from the local filesystem.
type LocalTestResultSource struct {
	decoders map[m.ResultsFormat]reportDecoder
	parallel int
}

// NewLocalTestResultSource constructs a source reading up to parallel report files at once.
func NewLocalTestResultSource(parallel int) *LocalTestResultSource {
	if parallel <= 0 {
		parallel = 1
	}

	return &LocalTestResultSource{
		decoders: map[m.ResultsFormat]reportDecoder{
			m.FormatJUnit: decodeJUnitReport,
			m.FormatJSON:  decodeJSONReport,
		},
		parallel: parallel,
	}
}

// Failures implements TestResultSource.
func (s *LocalTestResultSource) Failures(ctx context.Context, view m.ResultsView) ([]m.FailedTest, error) {
	decode, ok := s.decoders[view.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported results format %q", view.Format)
	}

	files, err := s.discover(view)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoResults, view.Dir)
	}

	perFile := make([][]m.FailedTest, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.parallel)

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			records, err := decode(file)
			if err != nil {
				slog.Error("Failed to decode report", "path", file, "error", err)
				return fmt.Errorf("decode %s: %w", file, err)
			}

			perFile[i] = records

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var failures []m.FailedTest
	for _, records := range perFile {
		failures = append(failures, records...)
	}

	slog.Debug("Loaded failed tests", "dir", view.Dir, "reports", len(files), "records", len(failures))

	return failures, nil
}

// Available implements TestResultSource.
func (s *LocalTestResultSource) Available(ctx context.Context, view m.ResultsView) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(string(view.Dir))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	if !info.IsDir() {
		return false, nil
	}

	files, err := s.discover(view)
	if err != nil {
		return false, err
	}

	return len(files) > 0, nil
}

// discover returns the report files of a view sorted by path.
func (s *LocalTestResultSource) discover(view m.ResultsView) ([]string, error) {
	pattern := view.Pattern
	if pattern == "" {
		pattern = defaultPattern(view.Format)
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid results pattern %q", pattern)
	}

	root := string(view.Dir)

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s in %s: %w", pattern, root, err)
	}

	files := make([]string, 0, len(matches))
	for _, match := range matches {
		files = append(files, filepath.Join(root, filepath.FromSlash(match)))
	}

	sort.Strings(files)

	return files, nil
}

func defaultPattern(format m.ResultsFormat) string {
	if format == m.FormatJSON {
		return DefaultJSONPattern
	}

	return DefaultJUnitPattern
}
