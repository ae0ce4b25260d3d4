package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromColumns(t *testing.T) {
	ds := yearly(t)
	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"year", "gdp", "pop", "country"}, ds.Columns())

	_, err := ds.Column("area")
	assert.True(t, errors.Is(err, ErrColumnNotFound))
}

func TestFromColumnsLengthMismatch(t *testing.T) {
	_, err := FromColumns(
		ColumnData{Name: "a", Values: []int{1, 2}},
		ColumnData{Name: "b", Values: []int{1}},
	)
	assert.Error(t, err)
}

func TestFromStructs(t *testing.T) {
	type row struct {
		Country string
		Year    int
		GDP     float64
	}
	ds, err := FromStructs([]row{{"A", 2000, 1.5}, {"B", 2000, 2.5}})
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())

	gdp, err := ds.Floats("GDP")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, gdp)
}

func TestDatasetFloats(t *testing.T) {
	ds := yearly(t)

	years, err := ds.Floats("year")
	require.NoError(t, err)
	assert.Equal(t, []float64{2000, 2000, 2001}, years)

	_, err = ds.Floats("country")
	assert.True(t, errors.Is(err, ErrNotNumeric))
}

func TestDatasetIsCategorical(t *testing.T) {
	ds, err := FromColumns(
		ColumnData{Name: "n", Values: []float32{1}},
		ColumnData{Name: "s", Values: []string{"a"}},
		ColumnData{Name: "b", Values: []bool{true}},
	)
	require.NoError(t, err)

	for col, want := range map[string]bool{"n": false, "s": true, "b": true} {
		got, err := ds.IsCategorical(col)
		require.NoError(t, err)
		assert.Equal(t, want, got, col)
	}
}

func TestDatasetUniqueFirstSeen(t *testing.T) {
	ds, err := FromColumns(
		ColumnData{Name: "c", Values: []string{"b", "a", "b", "c", "a"}},
	)
	require.NoError(t, err)

	got, err := ds.Unique("c")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"b", "a", "c"}, got)
}

func TestDatasetValues(t *testing.T) {
	ds := yearly(t)
	got, err := ds.Values("country", []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, got)
}
