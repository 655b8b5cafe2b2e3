package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse every report in a full-screen viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			summary, err := app.Reports.Generate(context.Background(), req)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newBrowseModel(summary),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	bindReportFlags(cmd.Flags(), &flags, false)
	return cmd
}
