package engine

import (
	"fmt"
)

// ============================================================================
// LAYOUT BUILDER — Axes, title, legend and animation controls
// ============================================================================
// Produces the static part of the Figure. Axis ranges are injected later by
// BubblePlot, once traces are built; slider steps are appended one per
// frame.
// ============================================================================

// Fixed animation timings, in milliseconds.
const (
	sliderTransitionMs = 300
	stepFrameMs        = 300
	stepTransitionMs   = 300
	playFrameMs        = 500
	playTransitionMs   = 300
)

// SliderScale is what the slider is seeded with: the starting time value
// and every selectable value, in first-seen order.
type SliderScale struct {
	InitialValue interface{}
	Values       []interface{}
}

// buildLayout assembles the layout and, when the slider is shown, the
// slider it will carry.
func buildLayout(p *plan) (Layout, *Slider) {
	layout := Layout{
		Title:      p.opts.Title,
		HoverMode:  "closest",
		ShowLegend: p.showLegend,
		Margin:     Margin{B: 50, T: 50, Pad: 5},
		Width:      p.opts.Width,
		Height:     p.opts.Height,
	}

	if p.is3D {
		set3DAxes(&layout, p.opts)
	} else {
		set2DAxes(&layout, p.opts)
	}

	var slider *Slider
	if p.showSlider {
		slider = newSlider(p.sliderScale, p.opts.SliderPrefix)
	}
	if p.showButton {
		layout.UpdateMenus = []UpdateMenu{playPauseMenu()}
	}
	return layout, slider
}

func set2DAxes(layout *Layout, o *Options) {
	layout.XAxis = newAxis(o.XTitle, boolOr(o.XLogScale, false))
	layout.YAxis = newAxis(o.YTitle, boolOr(o.YLogScale, false))
}

func set3DAxes(layout *Layout, o *Options) {
	layout.Scene = &Scene{
		XAxis: newAxis(o.XTitle, boolOr(o.XLogScale, false)),
		YAxis: newAxis(o.YTitle, boolOr(o.YLogScale, false)),
		ZAxis: newAxis(o.ZTitle, boolOr(o.ZLogScale, false)),
	}
}

func newAxis(title string, logScale bool) *Axis {
	axis := &Axis{Title: title, AutoRange: false}
	if logScale {
		axis.Type = "log"
	}
	return axis
}

// ============================================================================
// SLIDER
// ============================================================================

// newSlider creates an empty time slider. The slider starts on its first
// step; scale.Values sizes the step list.
func newSlider(scale SliderScale, prefix string) *Slider {
	return &Slider{
		Active:  0,
		YAnchor: "top",
		XAnchor: "left",
		CurrentValue: CurrentValue{
			Font:    Font{Size: 20},
			Prefix:  prefix,
			Visible: true,
			XAnchor: "right",
		},
		Transition: Transition{Duration: sliderTransitionMs, Easing: "cubic-in-out"},
		Pad:        Pad{B: 10, T: 50},
		Len:        0.9,
		X:          0.1,
		Y:          0,
		Steps:      make([]SliderStep, 0, len(scale.Values)),
	}
}

// addSliderStep appends the step that jumps to the frame for t.
func addSliderStep(s *Slider, t interface{}) {
	s.Steps = append(s.Steps, SliderStep{
		Args: []interface{}{
			[]interface{}{t},
			AnimationOptions{
				Frame:      FrameOptions{Duration: stepFrameMs, Redraw: false},
				Mode:       "immediate",
				Transition: Transition{Duration: stepTransitionMs},
			},
		},
		Label:  frameName(t),
		Method: "animate",
	})
}

// frameName is the name of the frame for time value t.
func frameName(t interface{}) string {
	return fmt.Sprint(t)
}

// ============================================================================
// BUTTONS
// ============================================================================

// playPauseMenu returns the Play/Pause button group.
func playPauseMenu() UpdateMenu {
	return UpdateMenu{
		Buttons: []MenuButton{
			{
				Args: []interface{}{
					nil,
					AnimationOptions{
						Frame:       FrameOptions{Duration: playFrameMs, Redraw: false},
						FromCurrent: true,
						Transition:  Transition{Duration: playTransitionMs, Easing: "quadratic-in-out"},
					},
				},
				Label:  "Play",
				Method: "animate",
			},
			{
				Args: []interface{}{
					[]interface{}{nil},
					AnimationOptions{
						Frame:      FrameOptions{Duration: 0, Redraw: false},
						Mode:       "immediate",
						Transition: Transition{Duration: 0},
					},
				},
				Label:  "Pause",
				Method: "animate",
			},
		},
		Direction:  "left",
		Pad:        Pad{R: 10, T: 87},
		ShowActive: false,
		Type:       "buttons",
		XAnchor:    "right",
		YAnchor:    "top",
		X:          0.1,
		Y:          0,
	}
}
