package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/effortlog/internal/cli/formatter"
	"github.com/alexanderramin/effortlog/internal/service"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	var opts service.ImportOptions

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a session log exported as CSV or JSON",
		Long: `Import a session log. By default the stored records are replaced;
use --append to add the file's records after the existing ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Importing "+args[0])
			}
			result, err := app.Import.ImportFile(context.Background(), args[0], opts)
			stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d records from %s", result.RecordCount, args[0])
			if opts.Append {
				fmt.Fprintf(out, " (indexes from %d)\n", result.FirstIndex)
			} else {
				fmt.Fprintf(out, " (replaced %d)\n", result.ReplacedCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Append, "append", false, "Append to the stored records instead of replacing them")
	return cmd
}
