package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/effortlog/internal/config"
	"github.com/alexanderramin/effortlog/internal/service"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// reportFlags are shared by every command that generates a report.
type reportFlags struct {
	years    string
	now      string
	markdown bool
}

func bindReportFlags(fs *pflag.FlagSet, f *reportFlags, withMarkdown bool) {
	fs.StringVar(&f.years, "years", "", "Comma-separated years to report on (default from settings)")
	fs.StringVar(&f.now, "now", "", "Report as of this date, YYYY-MM-DD (default today)")
	if withMarkdown {
		fs.BoolVar(&f.markdown, "markdown", false, "Render Markdown instead of terminal tables")
	}
}

func (f reportFlags) request() (service.ReportRequest, error) {
	var req service.ReportRequest
	if f.years != "" {
		years, err := config.ParseYears(f.years)
		if err != nil {
			return req, fmt.Errorf("--years: %w", err)
		}
		req.Years = years
	}
	if f.now != "" {
		now, err := time.Parse(dateLayout, f.now)
		if err != nil {
			return req, fmt.Errorf("--now: invalid date %q (expected YYYY-MM-DD)", f.now)
		}
		req.Now = now
	}
	return req, nil
}
