package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// DefaultDebounce is how long the watcher waits for a burst of report writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// ResultsWatcher signals when the reports below a directory change.
type ResultsWatcher interface {
	// Watch blocks until ctx is done, calling onChange once per settled burst of changes.
	Watch(ctx context.Context, dir m.Path, onChange func()) error
}

// FSResultsWatcher watches a results directory tree with fsnotify.
type FSResultsWatcher struct {
	debounce time.Duration
}

// NewFSResultsWatcher constructs a watcher with the given debounce window.
func NewFSResultsWatcher(debounce time.Duration) *FSResultsWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &FSResultsWatcher{debounce: debounce}
}

// Watch implements ResultsWatcher.
func (w *FSResultsWatcher) Watch(ctx context.Context, dir m.Path, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	root := filepath.Clean(string(dir))
	if err := os.MkdirAll(root, 0o750); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	if err := addTree(watcher, root); err != nil {
		return err
	}

	// Build tools wipe and recreate the results dir; the parent watch sees it come back.
	parent := filepath.Dir(root)
	if parent != root {
		if err := watcher.Add(parent); err != nil {
			return fmt.Errorf("watch %s: %w", parent, err)
		}
	}

	slog.Info("Watching test results", "dir", root)

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			name := filepath.Clean(event.Name)
			if !withinRoot(root, name) {
				continue
			}

			if name == root && (event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				slog.Warn("Results directory removed, waiting for it to be recreated", "dir", root)
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						slog.Warn("Failed to watch new directory", "path", event.Name, "error", err)
					}
				}
			}

			slog.Debug("Results changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("Watcher error", "error", err)

		case <-timer.C:
			onChange()
		}
	}
}

// withinRoot reports whether path is root or lies below it.
func withinRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func addTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}
