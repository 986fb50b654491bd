package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autotestfix.dev/pkg/autotestfix/internal/domain"
	m "autotestfix.dev/pkg/autotestfix/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of the last fix run",
		Long:  "View the report of the last fix run from the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			output := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Output: output})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
