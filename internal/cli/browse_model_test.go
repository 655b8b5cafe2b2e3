package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/effortlog/internal/domain"
	"github.com/alexanderramin/effortlog/internal/report"
	"github.com/alexanderramin/effortlog/internal/service"
	"github.com/alexanderramin/effortlog/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBrowseDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newBrowseModel(mustSummary(t)), teatest.WithSize(120, 30))
	d.DrainInit()
	return d
}

func currentReport(d *teatest.Driver) domain.ReportName {
	return d.Model.(browseModel).currentReport()
}

func TestBrowse_StartsOnFirstReport(t *testing.T) {
	d := newBrowseDriver(t)

	assert.Equal(t, domain.ReportByMonth, currentReport(d))
	view := d.View()
	assert.Contains(t, view, "Effort by month")
	assert.Contains(t, view, "(1/12)")
	assert.Contains(t, view, "1 warnings")
}

func TestBrowse_TabCyclesReports(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressTab()
	assert.Equal(t, domain.ReportByYear, currentReport(d))
	assert.Contains(t, d.View(), "EFFORT BY YEAR")

	d.PressShiftTab()
	d.PressShiftTab()
	assert.Equal(t, domain.ReportDefinitions, currentReport(d), "wraps backwards")

	d.PressTab()
	assert.Equal(t, domain.ReportByMonth, currentReport(d), "wraps forwards")
}

func TestBrowse_ScrollKeysDoNotSwitchReport(t *testing.T) {
	d := teatest.New(t, newBrowseModel(mustSummary(t)), teatest.WithSize(80, 8))

	d.PressDown()
	d.PressDown()
	assert.Equal(t, domain.ReportByMonth, currentReport(d))
	assert.NotContains(t, d.View(), "[TOP]")
}

func TestBrowse_Quit(t *testing.T) {
	d := newBrowseDriver(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestBrowse_LoadingBeforeSize(t *testing.T) {
	m := newBrowseModel(mustSummary(t))
	assert.Equal(t, "Loading...", m.View())
}

func mustSummary(t *testing.T) *report.Summary {
	t.Helper()
	app := testApp(t)
	seedImport(t, app)
	s, err := app.Reports.Generate(context.Background(), service.ReportRequest{})
	require.NoError(t, err)
	return s
}
