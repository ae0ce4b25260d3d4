package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisRangeLinear(t *testing.T) {
	r, err := AxisRange([]float64{10, 50, 20}, false)
	require.NoError(t, err)
	assert.InDelta(t, 7, r[0], 1e-9)
	assert.InDelta(t, 70, r[1], 1e-9)
}

func TestAxisRangeLog(t *testing.T) {
	r, err := AxisRange([]float64{100, 10, 1000}, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.97, r[0], 1e-9)
	assert.InDelta(t, 3.12, r[1], 1e-9)
}

func TestAxisRangeIsPure(t *testing.T) {
	values := []float64{3, 1, 2}
	a, err := AxisRange(values, false)
	require.NoError(t, err)
	b, err := AxisRange(values, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestAxisRangeErrors(t *testing.T) {
	_, err := AxisRange(nil, false)
	assert.True(t, errors.Is(err, ErrNoValues))

	_, err = AxisRange([]float64{1, 0, 5}, true)
	assert.True(t, errors.Is(err, ErrInvalidLogDomain))

	_, err = AxisRange([]float64{1, -2}, true)
	assert.True(t, errors.Is(err, ErrInvalidLogDomain))
}

func TestSizeRef(t *testing.T) {
	assert.InDelta(t, 0.0125, sizeRef([]float64{10, 20, 40}, 1), 1e-15)
	assert.InDelta(t, 0.00625, sizeRef([]float64{10, 20, 40}, 2), 1e-15)
	assert.Equal(t, 0.0, sizeRef(nil, 1))
}

func TestColumnRangeWrapsColumn(t *testing.T) {
	ds, err := FromColumns(
		ColumnData{Name: "x", Values: []int{-1, 4}},
	)
	require.NoError(t, err)

	_, err = columnRange(ds, "x", true)
	var colErr *ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, "x", colErr.Column)
	assert.True(t, errors.Is(err, ErrInvalidLogDomain))

	r, err := columnRange(ds, "x", false)
	require.NoError(t, err)
	assert.InDelta(t, -0.7, r[0], 1e-9)
	assert.InDelta(t, 5.6, r[1], 1e-9)
}
