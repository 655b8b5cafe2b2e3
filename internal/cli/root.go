package cli

import (
	"time"

	"github.com/alexanderramin/effortlog/internal/config"
	"github.com/alexanderramin/effortlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Import   service.ImportService
	Targets  service.TargetService
	Reports  service.ReportService
	Settings config.Settings

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now overrides the clock for commands that show relative times.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "effortlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "effortlog",
		Short:         "Time-tracking reports and effort validation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newImportCmd(app),
		newReportCmd(app),
		newValidateCmd(app),
		newTargetCmd(app),
		newHistoryCmd(app),
		newBrowseCmd(app),
	)

	return root
}
