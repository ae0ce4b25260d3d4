package engine

import (
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"
)

// ============================================================================
// FILTERS — Column-value row filtering
// ============================================================================
// Each column constraint is a go-gg table.Filter over the dataset's table.
// Values are compared case-insensitively on their printed form, so
// "2001" matches an int column and "true" matches a bool column.
// ============================================================================

// Filters restricts rows by column value.
// Columns are AND-combined; values within a column are OR-combined.
type Filters struct {
	Columns map[string][]string `json:"columns,omitempty" yaml:"columns,omitempty" toml:"columns,omitempty"`
}

// IsEmpty reports whether no column carries a constraint.
func (f Filters) IsEmpty() bool {
	for _, allowed := range f.Columns {
		if len(allowed) > 0 {
			return false
		}
	}
	return true
}

// ApplyFilters returns the rows of ds matching every column filter.
// An empty filter returns ds itself.
func ApplyFilters(ds *Dataset, filters Filters) (*Dataset, error) {
	if filters.IsEmpty() {
		return ds, nil
	}

	// One table.Filter per constrained column; chaining them ANDs the columns.
	g := table.Grouping(ds.Table())
	for name, allowed := range filters.Columns {
		if len(allowed) == 0 {
			continue
		}
		if _, err := ds.Column(name); err != nil {
			return nil, err
		}
		set := toLowerSet(allowed)
		g = table.Filter(g, func(v interface{}) bool {
			return set[strings.ToLower(fmt.Sprint(v))]
		}, name)
	}

	filtered := g.Table(table.RootGroupID)
	if filtered == nil || filtered.Len() == 0 {
		// Keep the column set and types when nothing matches.
		return ds.selectRows(nil), nil
	}
	return NewDataset(filtered), nil
}

// ParseFilter parses "column=v1,v2" into a column name and its values.
func ParseFilter(expr string) (string, []string, error) {
	name, list, ok := strings.Cut(expr, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid filter %q: want column=value[,value...]", expr)
	}
	var values []string
	for _, v := range strings.Split(list, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return name, values, nil
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
