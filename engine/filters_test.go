package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFiltersEmpty(t *testing.T) {
	ds := panel(t)
	got, err := ApplyFilters(ds, Filters{})
	require.NoError(t, err)
	assert.Same(t, ds, got)

	got, err = ApplyFilters(ds, Filters{Columns: map[string][]string{"continent": nil}})
	require.NoError(t, err)
	assert.Same(t, ds, got)
}

func TestApplyFiltersCaseInsensitive(t *testing.T) {
	got, err := ApplyFilters(panel(t), Filters{Columns: map[string][]string{
		"continent": {"europe"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 4, got.Len())

	countries, err := got.Column("country")
	require.NoError(t, err)
	assert.Equal(t, []string{"FR", "DE", "FR", "DE"}, countries)
}

func TestApplyFiltersAndOr(t *testing.T) {
	got, err := ApplyFilters(panel(t), Filters{Columns: map[string][]string{
		"country": {"FR", "JP"},
		"year":    {"2000"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	gdp, err := got.Floats("gdp")
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 35}, gdp)
}

func TestApplyFiltersUnknownColumn(t *testing.T) {
	_, err := ApplyFilters(panel(t), Filters{Columns: map[string][]string{"planet": {"earth"}}})
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}

func TestParseFilter(t *testing.T) {
	name, values, err := ParseFilter(" continent = Asia, Europe ,")
	require.NoError(t, err)
	assert.Equal(t, "continent", name)
	assert.Equal(t, []string{"Asia", "Europe"}, values)

	_, _, err = ParseFilter("continent")
	assert.Error(t, err)
	_, _, err = ParseFilter("=Asia")
	assert.Error(t, err)
}

func TestApplyFiltersPrintedForm(t *testing.T) {
	ds, err := FromColumns(
		ColumnData{Name: "year", Values: []int{2000, 2001, 2001}},
		ColumnData{Name: "oecd", Values: []bool{true, false, true}},
		ColumnData{Name: "gdp", Values: []float64{1, 2, 3}},
	)
	require.NoError(t, err)

	got, err := ApplyFilters(ds, Filters{Columns: map[string][]string{
		"year": {"2001"},
		"oecd": {"TRUE"},
	}})
	require.NoError(t, err)

	gdp, err := got.Floats("gdp")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, gdp)
}

func TestApplyFiltersNoMatchKeepsColumns(t *testing.T) {
	got, err := ApplyFilters(panel(t), Filters{Columns: map[string][]string{
		"continent": {"Oceania"},
	}})
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
	assert.Equal(t, panel(t).Columns(), got.Columns())

	gdp, err := got.Column("gdp")
	require.NoError(t, err)
	assert.IsType(t, []float64{}, gdp)
}
