package helpers

import (
	"fmt"
	"strings"

	"github.com/spektr-org/bubbly/engine"
	"github.com/spektr-org/bubbly/schema"
	"github.com/xuri/excelize/v2"
)

// ============================================================================
// XLSX HELPER — Reads one worksheet into an engine.Dataset
// ============================================================================
// The first non-empty row of the sheet is the header row. Cells are read
// as displayed text and typed through schema discovery, exactly like CSV.
// ============================================================================

// ParseXLSX reads sheet from the workbook at path. An empty sheet name
// selects the first sheet.
func ParseXLSX(path, sheet string) (*engine.Dataset, *schema.Config, error) {
	headers, rows, err := ReadXLSX(path, sheet)
	if err != nil {
		return nil, nil, err
	}
	sch, err := schema.DiscoverFromRows(headers, rows, schema.DiscoverOptions{
		SampleSize: 1000,
		Source:     "XLSX",
	})
	if err != nil {
		return nil, nil, err
	}
	ds, err := BuildDataset(headers, rows, *sch)
	if err != nil {
		return nil, nil, err
	}
	return ds, sch, nil
}

// ReadXLSX returns the header row and padded data rows of sheet.
func ReadXLSX(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, schema.ErrNoColumns
		}
		sheet = sheets[0]
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	// Skip leading blank rows
	start := 0
	for start < len(all) && isBlankRow(all[start]) {
		start++
	}
	if start == len(all) {
		return nil, nil, schema.ErrNoColumns
	}

	headers := make([]string, len(all[start]))
	for i, h := range all[start] {
		headers[i] = strings.TrimSpace(h)
	}

	// GetRows trims trailing empty cells, so rows are padded to the header.
	rows := make([][]string, 0, len(all)-start-1)
	for _, row := range all[start+1:] {
		if isBlankRow(row) {
			continue
		}
		if len(row) > len(headers) {
			row = row[:len(headers)]
		}
		rows = append(rows, padRow(row, len(headers)))
	}
	return headers, rows, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func padRow(row []string, n int) []string {
	out := make([]string, n)
	copy(out, row)
	return out
}
