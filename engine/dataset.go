package engine

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ============================================================================
// DATASET — Read-only columnar access over a go-gg table
// ============================================================================
// The engine never owns or mutates consumer data. Columns are typed Go
// slices ([]float64, []int, []string, []bool, ...). Grouping, filtering and
// row selection go through go-gg, which builds new tables and leaves the
// source table untouched.
// ============================================================================

// Dataset is an ordered collection of equal-length named columns.
type Dataset struct {
	tab *table.Table
}

// NewDataset wraps a go-gg table. A nil table is the empty dataset.
func NewDataset(tab *table.Table) *Dataset {
	if tab == nil {
		tab = new(table.Builder).Done()
	}
	return &Dataset{tab: tab}
}

// ColumnData pairs a column name with its values (any slice type).
type ColumnData struct {
	Name   string
	Values slice.T
}

// FromColumns builds a Dataset from ordered columns.
// Columns must all have the same length.
func FromColumns(cols ...ColumnData) (ds *Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("building dataset: %v", r)
		}
	}()

	b := new(table.Builder)
	for _, c := range cols {
		b.Add(c.Name, c.Values)
	}
	return NewDataset(b.Done()), nil
}

// FromStructs builds a Dataset from a slice of structs, one column per
// exported field.
//
// Usage:
//
//	type row struct {
//	    Country string
//	    Year    int
//	    GDP     float64
//	}
//	ds, err := engine.FromStructs([]row{{"A", 2000, 1.5}})
func FromStructs(rows interface{}) (ds *Dataset, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("building dataset from structs: %v", r)
		}
	}()
	return NewDataset(table.TableFromStructs(rows)), nil
}

// Table returns the underlying go-gg table.
func (d *Dataset) Table() *table.Table { return d.tab }

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.tab.Len() }

// Columns returns the column names in order.
func (d *Dataset) Columns() []string { return d.tab.Columns() }

// Column returns the values of a column.
func (d *Dataset) Column(name string) (slice.T, error) {
	col := d.tab.Column(name)
	if col == nil {
		return nil, columnError(name, ErrColumnNotFound)
	}
	return col, nil
}

// Floats returns a numeric column converted to float64.
func (d *Dataset) Floats(name string) ([]float64, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if !isNumericKind(table.ColType(d.tab, name).Elem().Kind()) {
		return nil, columnError(name, ErrNotNumeric)
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs, nil
}

// IsCategorical reports whether a column holds labels (strings, booleans or
// any other non-numeric type) rather than numbers.
func (d *Dataset) IsCategorical(name string) (bool, error) {
	if _, err := d.Column(name); err != nil {
		return false, err
	}
	return !isNumericKind(table.ColType(d.tab, name).Elem().Kind()), nil
}

// Unique returns the distinct values of a column in first-seen order.
func (d *Dataset) Unique(name string) ([]interface{}, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	return toInterfaces(slice.Nub(col)), nil
}

// Values returns the given rows of a column, in the order given.
func (d *Dataset) Values(name string, rows []int) (slice.T, error) {
	col, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	return slice.Select(col, rows), nil
}

// selectRows returns a new Dataset holding only the given rows.
func (d *Dataset) selectRows(rows []int) *Dataset {
	b := new(table.Builder)
	for _, name := range d.tab.Columns() {
		b.Add(name, slice.Select(d.tab.Column(name), rows))
	}
	return NewDataset(b.Done())
}

// ============================================================================
// REFLECTION HELPERS
// ============================================================================

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toInterfaces(s slice.T) []interface{} {
	v := reflect.ValueOf(s)
	out := make([]interface{}, v.Len())
	for i := range out {
		out[i] = v.Index(i).Interface()
	}
	return out
}

// sliceLen returns the length of any slice value, or 0 for nil.
func sliceLen(s slice.T) int {
	if s == nil {
		return 0
	}
	return reflect.ValueOf(s).Len()
}
