package cmd

import (
	"github.com/spf13/cobra"

	"autotestfix.dev/pkg/autotestfix/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the failed tests fix would process",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := resultsView()
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{View: view})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
