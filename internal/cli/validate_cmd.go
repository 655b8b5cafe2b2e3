package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/effortlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check logged efforts against their start and end times",
		RunE: func(cmd *cobra.Command, args []string) error {
			onlyIncorrect := app.Settings.EffortStatus.OnlyIncorrect
			if cmd.Flags().Changed("all") {
				onlyIncorrect = !all
			}
			statuses, err := app.Reports.EffortStatuses(context.Background(), onlyIncorrect)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEffortStatuses(statuses))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every record, not only incorrect ones")
	return cmd
}
