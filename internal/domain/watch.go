package domain

import (
	"context"
	"fmt"
	"log/slog"

	"autotestfix.dev/pkg/autotestfix/internal/controller"
)

func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := w.ui.Start(ctx, controller.WithWatchMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	w.ui.DisplayWatching(ctx, args.View.Dir)

	runs := 0
	run := func() {
		if ctx.Err() != nil {
			return
		}

		runs++

		if _, err := w.fix(ctx, args.FixArgs); err != nil {
			slog.Error("Fix run failed", "run", runs, "error", err)
		}
	}

	run()

	if err := w.watcher.Watch(ctx, args.View.Dir, run); err != nil {
		return fmt.Errorf("watch %s: %w", args.View.Dir, err)
	}

	slog.Info("Stopped watching", "dir", args.View.Dir, "runs", runs)

	return nil
}
