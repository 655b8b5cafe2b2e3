package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Columns of a session log export, in spreadsheet order.
var Columns = []string{
	"Date", "StartTime", "EndTime", "Effort", "Tag", "Descriptor",
	"IsSoftwareProject", "IsReleaseDay", "Year", "Month",
}

// SessionRow is one raw row of a session log export. Every cell is kept as
// text until validation; missing cells are empty strings.
type SessionRow struct {
	Line              int
	Date              string
	StartTime         string
	EndTime           string
	Effort            string
	Tag               string
	Descriptor        string
	IsSoftwareProject string
	IsReleaseDay      string
	Year              string
	Month             string
}

func (r *SessionRow) set(column, value string) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(column)) {
	case "date":
		r.Date = value
	case "starttime":
		r.StartTime = value
	case "endtime":
		r.EndTime = value
	case "effort":
		r.Effort = value
	case "tag":
		r.Tag = value
	case "descriptor":
		r.Descriptor = value
	case "issoftwareproject":
		r.IsSoftwareProject = value
	case "isreleaseday":
		r.IsReleaseDay = value
	case "year":
		r.Year = value
	case "month":
		r.Month = value
	}
}

// LoadFile reads a session log export. The format is chosen by extension:
// ".csv" or ".json".
func LoadFile(path string) ([]SessionRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported import file %q (expected .csv or .json)", filepath.Base(path))
	}
}

// ReadCSV reads rows from CSV with a header row naming the columns. Column
// names match case-insensitively; unknown columns are ignored.
func ReadCSV(r io.Reader) ([]SessionRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing import file: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []SessionRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing import file: %w", err)
		}
		line, _ := cr.FieldPos(0)
		row := SessionRow{Line: line}
		for i, value := range record {
			if i < len(header) {
				row.set(strings.TrimPrefix(header[i], "\uFEFF"), value)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		seen[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = true
	}
	for _, required := range []string{"date", "effort"} {
		if !seen[required] {
			return fmt.Errorf("parsing import file: header has no %q column", required)
		}
	}
	return nil
}

// ReadJSON reads rows from a JSON array of objects keyed by column name.
// Values may be strings, numbers, booleans or null.
func ReadJSON(r io.Reader) ([]SessionRow, error) {
	var objects []map[string]any
	if err := json.NewDecoder(r).Decode(&objects); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	rows := make([]SessionRow, 0, len(objects))
	for i, obj := range objects {
		row := SessionRow{Line: i + 1}
		for k, v := range obj {
			row.set(k, jsonCell(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func jsonCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
