package engine

import (
	"fmt"
)

// ============================================================================
// TRACE BUILDER — One marker series from the grid
// ============================================================================
// A trace is assembled from grid lookups under a keyScope: the caller binds
// the time value (and category, for grouped charts) and each lookup fills
// in the column. A missing entry fails the whole trace.
// ============================================================================

// buildTrace assembles the trace for one (time, category) scope.
func buildTrace(grid *Grid, scope keyScope, p *plan) (Trace, error) {
	x, err := grid.Lookup(scope.key(p.x))
	if err != nil {
		return Trace{}, err
	}
	y, err := grid.Lookup(scope.key(p.y))
	if err != nil {
		return Trace{}, err
	}
	text, err := grid.Lookup(scope.key(p.bubble))
	if err != nil {
		return Trace{}, err
	}

	trace := Trace{
		X:    x,
		Y:    y,
		Text: text,
		Mode: "markers",
	}

	if p.is3D {
		z, err := grid.Lookup(scope.key(p.z))
		if err != nil {
			return Trace{}, err
		}
		trace.Z = z
		trace.Type = "scatter3d"
	}

	if p.hasSize {
		size, err := grid.Lookup(scope.key(p.size))
		if err != nil {
			return Trace{}, err
		}
		sizeRef := p.sizeRef
		trace.Marker = Marker{
			SizeMode: "area",
			SizeRef:  &sizeRef,
			Size:     size,
		}
	} else {
		trace.Marker = Marker{Size: 10 * p.opts.ScaleBubble}
	}

	if p.opts.MarkerOpacity != nil {
		opacity := *p.opts.MarkerOpacity
		trace.Marker.Opacity = &opacity
	}
	if p.opts.MarkerBorderWidth != nil {
		trace.Marker.Line = &MarkerLine{Width: *p.opts.MarkerBorderWidth}
	}

	if p.hasColor {
		// Numeric color never coexists with a category column, so the
		// lookup is made without a category binding.
		color, err := grid.Lookup(scope.withoutCategory().key(p.color))
		if err != nil {
			return Trace{}, err
		}
		trace.Marker.Color = color
		trace.Marker.ColorBar = &ColorBar{Title: p.opts.ColorbarTitle}
		colorScale := NullString(p.opts.ColorScale)
		trace.Marker.ColorScale = &colorScale
		if !p.showColorbar {
			hide := false
			trace.Marker.ShowScale = &hide
		}
	}

	if scope.hasCategory {
		trace.Name = fmt.Sprint(scope.category)
	}

	return trace, nil
}

// buildTraces builds one trace per category (or a single trace) at scope.
func buildTraces(grid *Grid, scope keyScope, p *plan) ([]Trace, error) {
	if !p.hasCategory {
		trace, err := buildTrace(grid, scope, p)
		if err != nil {
			return nil, err
		}
		return []Trace{trace}, nil
	}

	traces := make([]Trace, 0, len(p.categories))
	for _, category := range p.categories {
		s := scope
		s.category, s.hasCategory = category, true
		trace, err := buildTrace(grid, s, p)
		if err != nil {
			return nil, err
		}
		traces = append(traces, trace)
	}
	return traces, nil
}
