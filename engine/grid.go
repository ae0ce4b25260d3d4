package engine

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// ============================================================================
// GRID — Dataset regrouped by (time, category, column)
// ============================================================================
// The grid is the lookup table traces are assembled from. Each entry holds
// one column's values for the rows sharing a time value and/or category,
// in original row order. Combinations with no rows get no entry.
//
// Keys are typed; GridKey.String renders the composite form used in logs
// and error messages:
//
//	<column>_grid                      no time, no category
//	<time>+<column>_grid               time only
//	<column>+<category>_grid           category only
//	<time>+<column>+<category>_grid    both
// ============================================================================

// GridKey identifies one grid entry.
type GridKey struct {
	Time        interface{}
	Category    interface{}
	Column      string
	HasTime     bool
	HasCategory bool
}

// String renders the composite key.
func (k GridKey) String() string {
	var b strings.Builder
	if k.HasTime {
		fmt.Fprintf(&b, "%v+", k.Time)
	}
	b.WriteString(k.Column)
	if k.HasCategory {
		fmt.Fprintf(&b, "+%v", k.Category)
	}
	b.WriteString("_grid")
	return b.String()
}

// Grid maps keys to value lists.
type Grid struct {
	entries map[GridKey]slice.T
	keys    []GridKey
}

func newGrid() *Grid {
	return &Grid{entries: make(map[GridKey]slice.T)}
}

func (g *Grid) put(key GridKey, values slice.T) {
	if _, exists := g.entries[key]; !exists {
		g.keys = append(g.keys, key)
	}
	g.entries[key] = values
}

// Len returns the number of entries.
func (g *Grid) Len() int { return len(g.keys) }

// Keys returns the entry keys in insertion order.
func (g *Grid) Keys() []GridKey { return g.keys }

// Lookup returns the value list stored under key.
func (g *Grid) Lookup(key GridKey) (slice.T, error) {
	values, ok := g.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGridEntryMissing, key)
	}
	return values, nil
}

// ============================================================================
// GRID BUILDER
// ============================================================================

// GridSpec selects what BuildGrid regroups.
type GridSpec struct {
	Columns        []string // value columns to extract
	TimeColumn     string   // empty = no time split
	CategoryColumn string   // empty = no category split

	// Times and Categories restrict the grid to these values.
	// Empty = every value present in the dataset.
	Times      []interface{}
	Categories []interface{}
}

// BuildGrid regroups ds into a Grid.
//
// Rows are matched on exact equality of the time (and category) value.
// A key is written only when its subset is non-empty; lookups for any other
// combination fail with ErrGridEntryMissing.
func BuildGrid(ds *Dataset, spec GridSpec) (*Grid, error) {
	for _, col := range spec.Columns {
		if _, err := ds.Column(col); err != nil {
			return nil, err
		}
	}

	// GroupBy keeps groups in first-seen order at each level and rows in
	// source order inside each group.
	g := table.Grouping(ds.Table())
	if spec.TimeColumn != "" {
		if _, err := ds.Column(spec.TimeColumn); err != nil {
			return nil, err
		}
		g = table.GroupBy(g, spec.TimeColumn)
	}
	if spec.CategoryColumn != "" {
		if _, err := ds.Column(spec.CategoryColumn); err != nil {
			return nil, err
		}
		g = table.GroupBy(g, spec.CategoryColumn)
	}

	times := toSet(spec.Times)
	categories := toSet(spec.Categories)

	grid := newGrid()
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		if t == nil || t.Len() == 0 {
			continue
		}
		scope, label := keyScope{}, gid
		if spec.CategoryColumn != "" {
			scope.category, scope.hasCategory = label.Label(), true
			label = label.Parent()
			if categories != nil && !categories[scope.category] {
				continue
			}
		}
		if spec.TimeColumn != "" {
			scope.time, scope.hasTime = label.Label(), true
			if times != nil && !times[scope.time] {
				continue
			}
		}

		for _, col := range spec.Columns {
			grid.put(scope.key(col), t.MustColumn(col))
		}
	}
	return grid, nil
}

// ============================================================================
// KEY SCOPE — partially bound key
// ============================================================================

// keyScope binds the time and category of a trace; key fills in the column.
type keyScope struct {
	time        interface{}
	category    interface{}
	hasTime     bool
	hasCategory bool
}

func (s keyScope) key(column string) GridKey {
	return GridKey{
		Time:        s.time,
		Category:    s.category,
		Column:      column,
		HasTime:     s.hasTime,
		HasCategory: s.hasCategory,
	}
}

// withoutCategory drops the category binding.
func (s keyScope) withoutCategory() keyScope {
	s.category, s.hasCategory = nil, false
	return s
}

func toSet(values []interface{}) map[interface{}]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[interface{}]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
