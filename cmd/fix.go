package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// rerunWaitTimeout bounds how long fix waits for launched re-runs before exiting.
const rerunWaitTimeout = 10 * time.Minute

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Patch failed assertions with the actual values",
		Long:  fixLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := fixArgsFromConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := workflow.Fix(ctx, args); err != nil {
				return err
			}

			waitForReruns(ctx)

			return nil
		},
	}

	configureFixFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

// waitForReruns keeps the process alive until launched re-runs exit, so their output
// is not cut off.
func waitForReruns(ctx context.Context) {
	if runTrigger == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, rerunWaitTimeout)
	defer cancel()

	if err := runTrigger.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("Stopped waiting for re-runs", "error", err)
	}
}
