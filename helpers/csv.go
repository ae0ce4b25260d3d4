package helpers

import (
	"fmt"
	"math"
	"strings"

	"github.com/spektr-org/bubbly/engine"
	"github.com/spektr-org/bubbly/schema"
)

// ============================================================================
// CSV HELPER — Parses CSV data into an engine.Dataset
// ============================================================================
// Consumer reads the CSV from wherever it lives (file, S3, Sheets).
// This helper converts the raw bytes into typed columns using the schema:
// numeric → []int or []float64, bool → []bool, everything else → []string.
// ============================================================================

// ParseCSV parses CSV bytes into a Dataset using sch for column kinds.
// Columns missing from sch are loaded as text.
func ParseCSV(data []byte, sch schema.Config) (*engine.Dataset, error) {
	headers, rows, err := schema.ReadCSV(data)
	if err != nil {
		return nil, err
	}
	return BuildDataset(headers, rows, sch)
}

// ParseCSVAuto parses CSV without a pre-existing schema.
// Returns both the dataset and the discovered schema.
func ParseCSVAuto(data []byte) (*engine.Dataset, *schema.Config, error) {
	headers, rows, err := schema.ReadCSV(data)
	if err != nil {
		return nil, nil, err
	}
	sch, err := schema.DiscoverFromRows(headers, rows, schema.DiscoverOptions{
		SampleSize: 1000,
		Source:     "CSV",
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

// ============================================================================
// TYPED COLUMNS
// ============================================================================

// BuildDataset converts raw rows into a Dataset with one typed column per
// header. A column whose cells do not all parse as its schema kind is
// loaded as text instead.
func BuildDataset(headers []string, rows [][]string, sch schema.Config) (*engine.Dataset, error) {
	cols := make([]engine.ColumnData, 0, len(headers))
	for i, header := range headers {
		cells := make([]string, len(rows))
		for r, row := range rows {
			if i < len(row) {
				cells[r] = strings.TrimSpace(row[i])
			}
		}

		kind, integer := schema.KindString, false
		if meta, ok := sch.Column(header); ok {
			kind, integer = meta.Kind, meta.Integer
		}
		cols = append(cols, engine.ColumnData{
			Name:   header,
			Values: typedColumn(cells, kind, integer),
		})
	}

	ds, err := engine.FromColumns(cols...)
	if err != nil {
		return nil, fmt.Errorf("loading columns: %w", err)
	}
	return ds, nil
}

func typedColumn(cells []string, kind schema.Kind, integer bool) interface{} {
	switch kind {
	case schema.KindNumeric:
		if integer {
			if ints, ok := parseInts(cells); ok {
				return ints
			}
		}
		if floats, ok := parseFloats(cells); ok {
			return floats
		}
	case schema.KindBool:
		if bools, ok := parseBools(cells); ok {
			return bools
		}
	}
	return cells
}

func parseInts(cells []string) ([]int, bool) {
	out := make([]int, len(cells))
	for i, c := range cells {
		f, err := schema.ParseNumber(c)
		if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return nil, false
		}
		out[i] = int(f)
	}
	return out, true
}

// parseFloats maps null cells to NaN.
func parseFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	for i, c := range cells {
		if schema.IsNull(c) {
			out[i] = math.NaN()
			continue
		}
		f, err := schema.ParseNumber(c)
		if err != nil {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func parseBools(cells []string) ([]bool, bool) {
	out := make([]bool, len(cells))
	for i, c := range cells {
		b, err := schema.ParseBool(c)
		if err != nil {
			return nil, false
		}
		out[i] = b
	}
	return out, true
}
