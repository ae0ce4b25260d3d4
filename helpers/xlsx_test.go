package helpers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to a new workbook in a temp dir. Rows are
// written starting at startRow (1-based).
func writeWorkbook(t *testing.T, sheet string, startRow int, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, startRow+r)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseXLSX(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", 1, [][]interface{}{
		{"country", "year", "gdp", "pop"},
		{"A", 2000, 1.5, 10},
		{"B", 2000, 2.5, 20},
		{"A", 2001, 3.5, 30},
	})

	ds, sch, err := ParseXLSX(path, "")
	require.NoError(t, err)
	assert.Equal(t, "XLSX", sch.DiscoveredFrom)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"country", "year", "gdp", "pop"}, ds.Columns())

	year, err := ds.Column("year")
	require.NoError(t, err)
	assert.Equal(t, []int{2000, 2000, 2001}, year)

	gdp, err := ds.Floats("gdp")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, gdp)
}

func TestReadXLSXNamedSheetWithOffset(t *testing.T) {
	path := writeWorkbook(t, "Data", 3, [][]interface{}{
		{"label", "x", "y"},
		{"p", 1, 2},
		{},
		{"q", 3},
	})

	headers, rows, err := ReadXLSX(path, "Data")
	require.NoError(t, err)
	assert.Equal(t, []string{"label", "x", "y"}, headers)
	assert.Equal(t, [][]string{{"p", "1", "2"}, {"q", "3", ""}}, rows)
}

func TestReadXLSXErrors(t *testing.T) {
	_, _, err := ReadXLSX(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.Error(t, err)

	path := writeWorkbook(t, "Sheet1", 1, [][]interface{}{{"a"}})
	_, _, err = ReadXLSX(path, "Nope")
	assert.Error(t, err)

	empty := writeWorkbook(t, "Sheet1", 1, nil)
	_, _, err = ReadXLSX(empty, "")
	assert.Error(t, err)
}
