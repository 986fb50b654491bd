package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"autotestfix.dev/pkg/autotestfix/internal/domain"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run fix whenever new test results appear",
		Long: `Watch the results view and run fix after every settled change, until
interrupted. Bursts of report writes are debounced (watch.debounce).`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := fixArgsFromConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = workflow.Watch(ctx, domain.WatchArgs{FixArgs: args})
			stop()

			waitForReruns(cmd.Context())

			return err
		},
	}

	configureFixFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
