package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/effortlog/internal/cli/formatter"
	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report [NAME]",
		Short: "Generate effort reports",
		Long: `Generate one report, or every report when NAME is omitted.
On an interactive terminal a picker is shown instead.

Reports: ` + strings.Join(reportNameStrings(), ", "),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: reportNameStrings(),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			names, err := selectReports(app, args)
			if err != nil {
				return err
			}

			summary, err := app.Reports.Generate(context.Background(), req)
			if err != nil {
				return err
			}
			for _, w := range summary.Warnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}

			sections := make([]string, 0, len(names))
			for _, name := range names {
				out, err := renderReport(summary, name, flags.markdown)
				if err != nil {
					return err
				}
				sections = append(sections, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(sections, "\n"))
			return nil
		},
	}

	bindReportFlags(cmd.Flags(), &flags, true)
	return cmd
}

func renderReport(s *report.Summary, name domain.ReportName, markdown bool) (string, error) {
	if markdown {
		return formatter.FormatReportMarkdown(s, name, formatter.Markdown{})
	}
	return formatter.FormatReport(s, name)
}

// selectReports resolves the reports to render from the arguments, the
// interactive picker, or all of them.
func selectReports(app *App, args []string) ([]domain.ReportName, error) {
	if len(args) == 1 {
		name, err := parseReportName(args[0])
		if err != nil {
			return nil, err
		}
		return []domain.ReportName{name}, nil
	}
	if app.interactive() {
		var picked string
		if err := reportPickerForm(&picked).Run(); err != nil {
			return nil, err
		}
		return []domain.ReportName{domain.ReportName(picked)}, nil
	}
	return domain.AllReportNames, nil
}

func parseReportName(s string) (domain.ReportName, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidReportNames[name] {
		return "", fmt.Errorf("unknown report %q (valid: %s)", s, strings.Join(reportNameStrings(), ", "))
	}
	return domain.ReportName(name), nil
}

func reportNameStrings() []string {
	out := make([]string, len(domain.AllReportNames))
	for i, n := range domain.AllReportNames {
		out[i] = string(n)
	}
	return out
}
