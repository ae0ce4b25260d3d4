package engine

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// ============================================================================
// RANGE CALCULATOR — padded axis bounds
// ============================================================================
// Padding is asymmetric: 30% below and 40% above on a linear axis, 3% below
// and 4% above in log10 space. The linear padding assumes positive data;
// negative minimums are scaled toward zero rather than away from it.
// ============================================================================

const (
	linearLowPad  = 0.7
	linearHighPad = 1.4
	logLowPad     = 0.97
	logHighPad    = 1.04
)

// AxisRange computes the [min, max] range for an axis over values.
// With logScale the bounds are in log10 units, as the renderer expects for
// a log axis.
func AxisRange(values []float64, logScale bool) (Range, error) {
	if len(values) == 0 {
		return Range{}, ErrNoValues
	}

	if logScale {
		for _, v := range values {
			if !(v > 0) {
				return Range{}, ErrInvalidLogDomain
			}
		}
		lo, hi := stats.Bounds(vec.Map(math.Log10, values))
		return Range{lo * logLowPad, hi * logHighPad}, nil
	}

	lo, hi := stats.Bounds(values)
	return Range{lo * linearLowPad, hi * linearHighPad}, nil
}

// columnRange computes the range of a whole dataset column.
func columnRange(ds *Dataset, column string, logScale bool) (Range, error) {
	values, err := ds.Floats(column)
	if err != nil {
		return Range{}, err
	}
	r, err := AxisRange(values, logScale)
	if err != nil {
		return Range{}, columnError(column, err)
	}
	return r, nil
}

// sizeRef is the marker size reference for area-scaled bubbles: the largest
// bubble gets a diameter of about 80px * scale.
func sizeRef(sizes []float64, scaleBubble float64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	_, hi := stats.Bounds(sizes)
	return 2 * hi / (scaleBubble * 80 * 80)
}
