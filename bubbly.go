// Package bubbly builds animated bubble chart descriptors from tabular data.
//
// Usage:
//
//	import "github.com/spektr-org/bubbly/engine"
//
//	ds, err := engine.FromColumns(
//	    engine.ColumnData{Name: "year", Values: []int{2000, 2000, 2001}},
//	    engine.ColumnData{Name: "gdp", Values: []float64{1, 2, 3}},
//	    engine.ColumnData{Name: "pop", Values: []float64{10, 20, 30}},
//	    engine.ColumnData{Name: "country", Values: []string{"A", "B", "A"}},
//	)
//	fig, err := engine.BubblePlot(ds, "gdp", "pop", "country",
//	    engine.WithTime("year"),
//	)
//
// The result is a Plotly figure ({data, layout, frames}) ready to be
// marshalled to JSON and handed to a renderer. The engine never renders,
// writes files or calls any external service; the helpers package loads
// CSV/XLSX files and config files, and cmd/bubbly wraps both in a CLI.
package bubbly
