package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Date,StartTime,EndTime,Effort,Tag,Descriptor,IsSoftwareProject,IsReleaseDay,Year,Month
2024-03-01,20:00,00:00,4h 00m,#dev,NW.Foo v1.0.0,true,false,2024,3
2024-03-02,,,1h 30m,#study,"reading, chapter 2",no,no,,
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, SessionRow{
		Line: 2, Date: "2024-03-01", StartTime: "20:00", EndTime: "00:00", Effort: "4h 00m",
		Tag: "#dev", Descriptor: "NW.Foo v1.0.0", IsSoftwareProject: "true", IsReleaseDay: "false",
		Year: "2024", Month: "3",
	}, rows[0])
	assert.Equal(t, 3, rows[1].Line)
	assert.Equal(t, "reading, chapter 2", rows[1].Descriptor)
	assert.Empty(t, rows[1].StartTime)
	assert.Empty(t, rows[1].Year)
}

func TestReadCSV_HeaderCaseAndOrder(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("effort,date,extra\n2h 00m,2024-01-01,x\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2h 00m", rows[0].Effort)
	assert.Equal(t, "2024-01-01", rows[0].Date)
}

func TestReadCSV_MissingRequiredColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Date,Tag\n2024-01-01,#a\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"effort"`)
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	input := `[
		{"Date": "2024-03-01", "StartTime": "20:00", "EndTime": "00:00", "Effort": "4h 00m",
		 "Tag": "#dev", "Descriptor": "NW.Foo v1.0.0", "IsSoftwareProject": true, "Year": 2024, "Month": 3},
		{"Date": "2024-03-02", "Effort": "1h 00m", "StartTime": null}
	]`

	rows, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "true", rows[0].IsSoftwareProject)
	assert.Equal(t, "2024", rows[0].Year)
	assert.Equal(t, "3", rows[0].Month)
	assert.Equal(t, 2, rows[1].Line)
	assert.Empty(t, rows[1].StartTime)
}

func TestReadJSON_Malformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"Date": "2024-01-01"}`))
	assert.Error(t, err)
}

func TestLoadFile_ByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "log.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(sampleCSV), 0o644))

	rows, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	xlsx := filepath.Join(dir, "log.xlsx")
	require.NoError(t, os.WriteFile(xlsx, []byte("x"), 0o644))
	_, err = LoadFile(xlsx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
