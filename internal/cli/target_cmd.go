package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/effortlog/internal/cli/formatter"
	"github.com/alexanderramin/effortlog/internal/effort"
	"github.com/spf13/cobra"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage yearly effort targets",
	}

	cmd.AddCommand(
		newTargetSetCmd(app),
		newTargetListCmd(app),
		newTargetRemoveCmd(app),
	)

	return cmd
}

func newTargetSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "set YEAR EFFORT",
		Short:   "Set the target for a year",
		Args:    cobra.ExactArgs(2),
		Example: `  effortlog target set 2024 "250h 00m"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return err
			}
			target, err := effort.Parse(args[1])
			if err != nil {
				return err
			}
			if err := app.Targets.Set(context.Background(), year, target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Target for %d set to %s\n", year, effort.Format(target))
			return nil
		},
	}
}

func newTargetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List yearly targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := app.Targets.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTargets(targets))
			return nil
		},
	}
}

func newTargetRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm YEAR",
		Aliases: []string{"remove"},
		Short:   "Remove a stored yearly target",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYearArg(args[0])
			if err != nil {
				return err
			}
			if err := app.Targets.Remove(context.Background(), year); err != nil {
				return fmt.Errorf("removing target for %d: %w", year, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed target for %d\n", year)
			return nil
		},
	}
}

func parseYearArg(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
