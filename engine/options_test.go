package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptionsDefaults(t *testing.T) {
	o := applyOptions(nil)
	assert.Equal(t, 1.0, o.ScaleBubble)
	assert.Equal(t, "Year:", o.SliderPrefix)
	assert.NotNil(t, o.logger)
	assert.Nil(t, o.ShowSlider)
	assert.Nil(t, o.MarkerOpacity)
}

func TestWithOptionsOverlay(t *testing.T) {
	hide, yes := false, true
	file := Options{
		TimeColumn:  "year",
		SizeColumn:  "pop",
		XLogScale:   &yes,
		ScaleBubble: 3,
		ShowButton:  &hide,
		XRange:      &Range{1, 2},
	}

	// Later options win; unset fields of the overlay keep earlier values.
	o := applyOptions([]Option{
		WithTitle("Before"),
		WithSize("gdp"),
		WithOptions(file),
		WithScaleBubble(5),
	})

	assert.Equal(t, "Before", o.Title)
	assert.Equal(t, "year", o.TimeColumn)
	assert.Equal(t, "pop", o.SizeColumn)
	assert.True(t, boolOr(o.XLogScale, false))
	assert.Equal(t, 5.0, o.ScaleBubble)
	assert.Equal(t, &hide, o.ShowButton)
	assert.Equal(t, &Range{1, 2}, o.XRange)
}

func TestWithRangeAxes(t *testing.T) {
	o := applyOptions([]Option{
		WithRange("x", 0, 1),
		WithRange("z", 5, 6),
		WithRange("w", 7, 8),
	})
	assert.Equal(t, &Range{0, 1}, o.XRange)
	assert.Nil(t, o.YRange)
	assert.Equal(t, &Range{5, 6}, o.ZRange)
}

func TestBoolOr(t *testing.T) {
	yes, no := true, false
	assert.True(t, boolOr(nil, true))
	assert.False(t, boolOr(&no, true))
	assert.True(t, boolOr(&yes, false))
}

func TestWithOptionsTurnsLogScaleOff(t *testing.T) {
	linear := false
	o := applyOptions([]Option{
		WithLogScale(true, true, false),
		WithOptions(Options{XLogScale: &linear}),
	})
	assert.False(t, boolOr(o.XLogScale, true))
	assert.True(t, boolOr(o.YLogScale, false))
	assert.False(t, boolOr(o.ZLogScale, true))

	// Unset log flags in the overlay keep earlier values.
	o = applyOptions([]Option{WithLogScale(true, false, false), WithOptions(Options{})})
	assert.True(t, boolOr(o.XLogScale, false))
}
