package engine

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
)

// ============================================================================
// BUBBLE PLOT — Orchestrator
// ============================================================================
// Entry point: BubblePlot(ds, x, y, bubble, opts...)
//
// Pipeline:
//   1. Resolve options into a plan (categorical color → grouping column)
//   2. Build the grid (plain or categorical, with or without time)
//   3. Build the layout skeleton and slider
//   4. Compute sizeref when a size column is set
//   5. Base traces at the earliest time value (or the whole dataset)
//   6. One frame + slider step per time value, first-seen order
//   7. Axis ranges (explicit or computed over the full column)
//   8. Attach the slider and return the Figure
//
// The dataset is only read. Every failure is returned as is; nothing is
// defaulted or skipped.
// ============================================================================

// plan is the resolved configuration of one BubblePlot call.
type plan struct {
	opts *Options

	x, y, z, bubble string
	size, color     string
	category, time  string

	is3D        bool
	hasTime     bool
	hasCategory bool
	hasSize     bool
	hasColor    bool

	showSlider   bool
	showButton   bool
	showLegend   bool
	showColorbar bool

	columns     []string
	times       []interface{}
	categories  []interface{}
	sliderScale SliderScale
	sizeRef     float64
}

// BubblePlot builds the chart descriptor for ds.
//
// x, y and bubble name the horizontal, vertical and label columns. Everything
// else (z, time, size, color, scales, ranges, display toggles) comes from
// opts.
//
// Usage:
//
//	fig, err := engine.BubblePlot(ds, "gdp", "lifeExp", "country",
//	    engine.WithTime("year"),
//	    engine.WithSize("pop"),
//	    engine.WithColor("continent"),
//	    engine.WithLogScale(true, false, false),
//	)
func BubblePlot(ds *Dataset, x, y, bubble string, opts ...Option) (*Figure, error) {
	if ds == nil {
		ds = NewDataset(nil)
	}
	o := applyOptions(opts)
	log := o.logger

	p, err := resolvePlan(ds, x, y, bubble, o)
	if err != nil {
		return nil, err
	}

	log.Debug("Bubbly: building figure",
		"rows", ds.Len(), "x", x, "y", y, "bubble", bubble,
		"is3D", p.is3D, "time", p.time, "category", p.category,
		"size", p.size, "color", p.color)

	// 2. Grid
	grid, err := BuildGrid(ds, GridSpec{
		Columns:        p.columns,
		TimeColumn:     p.time,
		CategoryColumn: p.category,
		Times:          p.times,
		Categories:     p.categories,
	})
	if err != nil {
		return nil, fmt.Errorf("building grid: %w", err)
	}
	log.Debug("Bubbly: grid built", "entries", grid.Len())

	// 3. Layout skeleton
	layout, slider := buildLayout(p)

	// 4. sizeref
	if p.hasSize {
		sizes, err := ds.Floats(p.size)
		if err != nil {
			return nil, err
		}
		p.sizeRef = sizeRef(sizes, o.ScaleBubble)
	}

	// 5. Base traces
	base := keyScope{}
	if p.hasTime {
		base.time, base.hasTime = p.sliderScale.InitialValue, true
	}
	data, err := buildTraces(grid, base, p)
	if err != nil {
		return nil, fmt.Errorf("building base traces: %w", err)
	}

	// 6. Frames
	frames := []Frame{}
	if p.hasTime {
		for _, t := range p.times {
			traces, err := buildTraces(grid, keyScope{time: t, hasTime: true}, p)
			if err != nil {
				return nil, fmt.Errorf("building frame %s: %w", frameName(t), err)
			}
			frames = append(frames, Frame{Data: traces, Name: frameName(t)})
			if slider != nil {
				addSliderStep(slider, t)
			}
		}
		log.Debug("Bubbly: frames built", "frames", len(frames))
	}

	// 7. Ranges
	if err := setRanges(&layout, ds, p); err != nil {
		return nil, err
	}

	// 8. Slider
	if slider != nil {
		layout.Sliders = []Slider{*slider}
	}

	return &Figure{Data: data, Layout: layout, Frames: frames}, nil
}

// ============================================================================
// PLAN RESOLUTION
// ============================================================================

func resolvePlan(ds *Dataset, x, y, bubble string, o *Options) (*plan, error) {
	p := &plan{
		opts:   o,
		x:      x,
		y:      y,
		bubble: bubble,
		z:      o.ZColumn,
		time:   o.TimeColumn,
		size:   o.SizeColumn,
	}

	for _, col := range []string{x, y, bubble, o.ZColumn, o.TimeColumn, o.SizeColumn, o.ColorColumn} {
		if col == "" {
			continue
		}
		if _, err := ds.Column(col); err != nil {
			return nil, err
		}
	}

	// A categorical color column groups the chart instead of coloring it.
	if o.ColorColumn != "" {
		categorical, err := ds.IsCategorical(o.ColorColumn)
		if err != nil {
			return nil, err
		}
		if categorical {
			p.category = o.ColorColumn
		} else {
			p.color = o.ColorColumn
		}
	}

	p.is3D = p.z != ""
	p.hasTime = p.time != ""
	p.hasCategory = p.category != ""
	p.hasSize = p.size != ""
	p.hasColor = p.color != ""

	p.showSlider = p.hasTime && boolOr(o.ShowSlider, true)
	p.showButton = p.hasTime && boolOr(o.ShowButton, true)
	p.showLegend = boolOr(o.ShowLegend, p.hasCategory)
	p.showColorbar = boolOr(o.ShowColorbar, true)

	p.columns = dedupe(x, y, bubble, p.z, p.size, p.color)

	if p.hasTime {
		times, err := ds.Unique(p.time)
		if err != nil {
			return nil, err
		}
		p.times = times
		initial, err := earliest(ds, p.time)
		if err != nil {
			return nil, err
		}
		p.sliderScale = SliderScale{InitialValue: initial, Values: times}
	}
	if p.hasCategory {
		categories, err := ds.Unique(p.category)
		if err != nil {
			return nil, err
		}
		p.categories = categories
	}
	return p, nil
}

// earliest returns the smallest value of an ordered column.
func earliest(ds *Dataset, column string) (v interface{}, err error) {
	col, err := ds.Column(column)
	if err != nil {
		return nil, err
	}
	if sliceLen(col) == 0 {
		return nil, columnError(column, ErrNoValues)
	}
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, columnError(column, fmt.Errorf("values are not ordered: %v", r))
		}
	}()
	return slice.Min(col), nil
}

// dedupe drops empty and repeated column names, keeping first occurrence.
func dedupe(cols ...string) []string {
	seen := make(map[string]bool, len(cols))
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// ============================================================================
// RANGES
// ============================================================================

// setRanges fills every axis range, explicit or computed, into the layout.
func setRanges(layout *Layout, ds *Dataset, p *plan) error {
	o := p.opts
	xr, err := resolveRange(ds, p.x, o.XRange, boolOr(o.XLogScale, false))
	if err != nil {
		return err
	}
	yr, err := resolveRange(ds, p.y, o.YRange, boolOr(o.YLogScale, false))
	if err != nil {
		return err
	}

	if !p.is3D {
		layout.XAxis.Range = &xr
		layout.YAxis.Range = &yr
		return nil
	}

	zr, err := resolveRange(ds, p.z, o.ZRange, boolOr(o.ZLogScale, false))
	if err != nil {
		return err
	}
	layout.Scene.XAxis.Range = &xr
	layout.Scene.YAxis.Range = &yr
	layout.Scene.ZAxis.Range = &zr
	return nil
}

func resolveRange(ds *Dataset, column string, explicit *Range, logScale bool) (Range, error) {
	if explicit != nil {
		return *explicit, nil
	}
	r, err := columnRange(ds, column, logScale)
	if err != nil {
		return Range{}, fmt.Errorf("computing range: %w", err)
	}
	return r, nil
}
