package schema

import (
	"strconv"
	"strings"
)

// ============================================================================
// SCHEMA — Describes the columns of a raw tabular source
// ============================================================================
// Auto-discovered from CSV text or spreadsheet rows. Loaders use the column
// kinds to build typed Go columns; the CLI prints the schema so users can
// pick x, y, size, color and time columns.
// ============================================================================

// Kind is the inferred value type of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindBool    Kind = "bool"
	KindDate    Kind = "date"
	KindString  Kind = "string"
)

// Role is how a column is most likely used in a bubble chart.
type Role string

const (
	RoleMeasure  Role = "measure"  // numeric: axis, size or color scale
	RoleCategory Role = "category" // text or bool: bubble label or grouping
	RoleTime     Role = "time"     // animation frames
)

// Config describes the complete shape of a dataset.
type Config struct {
	Name    string       `json:"name"`
	Columns []ColumnMeta `json:"columns"`
	Rows    int          `json:"rows"`

	// Auto-discovery metadata
	DiscoveredFrom string `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string `json:"discoveredAt,omitempty"`

	// Columns with no usable values
	SkippedColumns []SkippedColumn `json:"skippedColumns,omitempty"`
}

// ColumnMeta describes one column.
type ColumnMeta struct {
	Key             string   `json:"key"` // header as it appears in the source
	DisplayName     string   `json:"displayName"`
	Index           int      `json:"index"`
	Kind            Kind     `json:"kind"`
	Role            Role     `json:"role"`
	Integer         bool     `json:"integer,omitempty"` // numeric with whole values and no gaps
	SampleValues    []string `json:"sampleValues"`
	UniqueCount     int      `json:"uniqueCount"`
	NullCount       int      `json:"nullCount,omitempty"`
	IsTemporal      bool     `json:"isTemporal,omitempty"`
	TemporalFormat  string   `json:"temporalFormat,omitempty"`
	CardinalityHint string   `json:"cardinalityHint,omitempty"` // "low", "medium", "high"
}

// SkippedColumn records why a column is not offered for plotting.
type SkippedColumn struct {
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// Column returns the metadata for key.
func (c Config) Column(key string) (ColumnMeta, bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return ColumnMeta{}, false
}

// Keys returns every column key in source order.
func (c Config) Keys() []string {
	keys := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		keys[i] = col.Key
	}
	return keys
}

// KeysWithRole returns the keys of columns playing role.
func (c Config) KeysWithRole(role Role) []string {
	var keys []string
	for _, col := range c.Columns {
		if col.Role == role {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// ============================================================================
// VALUE PARSING
// ============================================================================

// IsNull reports whether a raw cell is empty or a null marker.
func IsNull(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "null", "NULL", "N/A", "n/a", "NaN", "nan":
		return true
	}
	return false
}

// ParseNumber parses a raw numeric cell. Thousands separators and a leading
// currency symbol are accepted: "1,234.5", "$12", "-€3".
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	for _, sym := range []string{"$", "€", "£"} {
		s = strings.TrimPrefix(s, sym)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}

// ParseBool parses true/false and yes/no cells.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}
