package engine

import (
	"fmt"
	"reflect"
	"strconv"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a Figure
// ============================================================================
// One row per bubble. An animated Figure is flattened frame by frame; a
// static one from its base traces. Columns that no trace carries (z, size,
// color) are left out.
// ============================================================================

// Flatten renders fig as a row-per-point table.
func Flatten(fig *Figure) *TableData {
	if fig == nil {
		return &TableData{Columns: []Column{}, Rows: [][]string{}}
	}

	type source struct {
		frame  string
		traces []Trace
	}
	var sources []source
	if len(fig.Frames) > 0 {
		for _, f := range fig.Frames {
			sources = append(sources, source{frame: f.Name, traces: f.Data})
		}
	} else {
		sources = []source{{traces: fig.Data}}
	}

	animated := len(fig.Frames) > 0
	var hasName, hasZ, hasSize, hasColor bool
	for _, s := range sources {
		for _, t := range s.traces {
			hasName = hasName || t.Name != ""
			hasZ = hasZ || t.Z != nil
			hasSize = hasSize || isList(t.Marker.Size)
			hasColor = hasColor || isList(t.Marker.Color)
		}
	}

	columns := make([]Column, 0, 8)
	if animated {
		columns = append(columns, Column{Key: "frame", Label: "Frame", Type: "text", Align: "left"})
	}
	if hasName {
		columns = append(columns, Column{Key: "series", Label: "Series", Type: "text", Align: "left"})
	}
	columns = append(columns, Column{Key: "text", Label: "Label", Type: "text", Align: "left"})
	columns = append(columns,
		Column{Key: "x", Label: "X", Type: "number", Align: "right"},
		Column{Key: "y", Label: "Y", Type: "number", Align: "right"},
	)
	if hasZ {
		columns = append(columns, Column{Key: "z", Label: "Z", Type: "number", Align: "right"})
	}
	if hasSize {
		columns = append(columns, Column{Key: "size", Label: "Size", Type: "number", Align: "right"})
	}
	if hasColor {
		columns = append(columns, Column{Key: "color", Label: "Color", Type: "number", Align: "right"})
	}

	rows := make([][]string, 0)
	for _, s := range sources {
		for _, t := range s.traces {
			xs := cells(t.X)
			ys := cells(t.Y)
			texts := cells(t.Text)
			zs := cells(t.Z)
			sizes := cells(t.Marker.Size)
			colors := cells(t.Marker.Color)

			for i := range xs {
				row := make([]string, 0, len(columns))
				if animated {
					row = append(row, s.frame)
				}
				if hasName {
					row = append(row, t.Name)
				}
				row = append(row, cellAt(texts, i), xs[i], cellAt(ys, i))
				if hasZ {
					row = append(row, cellAt(zs, i))
				}
				if hasSize {
					row = append(row, cellAt(sizes, i))
				}
				if hasColor {
					row = append(row, cellAt(colors, i))
				}
				rows = append(rows, row)
			}
		}
	}

	return &TableData{
		Title:   fig.Layout.Title,
		Columns: columns,
		Rows:    rows,
	}
}

// isList reports whether v is a per-point value list rather than a scalar.
func isList(v interface{}) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

// cells prints every element of a value list. Scalars and nil yield nil.
func cells(v interface{}) []string {
	if !isList(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = formatCell(rv.Index(i).Interface())
	}
	return out
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func formatCell(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
