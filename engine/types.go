package engine

import "encoding/json"

// ============================================================================
// BUBBLY ENGINE TYPES — Plotly-compatible chart descriptor
// ============================================================================
// The engine's only output is a Figure: data (initial traces), layout and
// frames. JSON tags reproduce the renderer's schema key-for-key, so a
// marshalled Figure can be handed straight to Plotly.newPlot / Plotly.animate.
//
// Optional keys use omitempty or pointers. A key that the renderer treats
// differently when absent (width, height, opacity) is never emitted as a
// zero value.
// ============================================================================

// ============================================================================
// FIGURE
// ============================================================================

// Figure is the complete chart descriptor.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
	Frames []Frame `json:"frames"`
}

// Frame is one animation snapshot: the traces for a single time value.
type Frame struct {
	Data []Trace `json:"data"`
	Name string  `json:"name"`
}

// ============================================================================
// TRACE TYPES
// ============================================================================

// Trace is one rendered marker series.
//
// X, Y, Z and Text hold the grid's value lists as typed slices
// ([]float64, []string, ...) so they marshal without conversion.
type Trace struct {
	X      interface{} `json:"x"`
	Y      interface{} `json:"y"`
	Z      interface{} `json:"z,omitempty"`
	Text   interface{} `json:"text"`
	Mode   string      `json:"mode"`
	Marker Marker      `json:"marker"`
	Name   string      `json:"name,omitempty"` // category label
	Type   string      `json:"type,omitempty"` // "scatter3d" for 3D charts
}

// Marker styles the bubbles of a trace.
type Marker struct {
	SizeMode   string      `json:"sizemode,omitempty"`
	SizeRef    *float64    `json:"sizeref,omitempty"` // set whenever sizes are area-scaled
	Size       interface{} `json:"size"` // value list, or a fixed float64
	Opacity    *float64    `json:"opacity,omitempty"`
	Line       *MarkerLine `json:"line,omitempty"`
	Color      interface{} `json:"color,omitempty"`
	ColorBar   *ColorBar   `json:"colorbar,omitempty"`
	ColorScale *NullString `json:"colorscale,omitempty"` // set whenever color is numeric
	ShowScale  *bool       `json:"showscale,omitempty"`
}

// MarkerLine is the bubble border.
type MarkerLine struct {
	Width float64 `json:"width"`
}

// ColorBar describes the numeric color legend.
type ColorBar struct {
	Title string `json:"title"`
}

// NullString is a string that marshals as null when empty.
type NullString string

// MarshalJSON implements json.Marshaler.
func (s NullString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// ============================================================================
// LAYOUT TYPES
// ============================================================================

// Layout is the static chart configuration.
type Layout struct {
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	Scene       *Scene       `json:"scene,omitempty"`
	Title       string       `json:"title"`
	HoverMode   string       `json:"hovermode"`
	ShowLegend  bool         `json:"showlegend"`
	Margin      Margin       `json:"margin"`
	Width       *int         `json:"width,omitempty"`
	Height      *int         `json:"height,omitempty"`
	Sliders     []Slider     `json:"sliders,omitempty"`
	UpdateMenus []UpdateMenu `json:"updatemenus,omitempty"`
}

// Scene holds the three axes of a 3D chart.
type Scene struct {
	XAxis *Axis `json:"xaxis"`
	YAxis *Axis `json:"yaxis"`
	ZAxis *Axis `json:"zaxis"`
}

// Axis configures one axis.
type Axis struct {
	Title     string `json:"title"`
	AutoRange bool   `json:"autorange"`
	Type      string `json:"type,omitempty"` // "log" or empty for linear
	Range     *Range `json:"range,omitempty"`
}

// Range is a [min, max] axis bound.
type Range [2]float64

// Margin is the plot margin in pixels.
type Margin struct {
	B   int `json:"b"`
	T   int `json:"t"`
	Pad int `json:"pad"`
}

// Pad is the padding around a slider or menu.
type Pad struct {
	R int `json:"r,omitempty"`
	T int `json:"t,omitempty"`
	B int `json:"b,omitempty"`
}

// ============================================================================
// ANIMATION CONTROL TYPES
// ============================================================================

// Slider is the time slider. One step is appended per time value.
type Slider struct {
	Active       int          `json:"active"`
	YAnchor      string       `json:"yanchor"`
	XAnchor      string       `json:"xanchor"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Transition   Transition   `json:"transition"`
	Pad          Pad          `json:"pad"`
	Len          float64      `json:"len"`
	X            float64      `json:"x"`
	Y            float64      `json:"y"`
	Steps        []SliderStep `json:"steps"`
}

// CurrentValue is the label showing the slider's current time value.
type CurrentValue struct {
	Font    Font   `json:"font"`
	Prefix  string `json:"prefix"`
	Visible bool   `json:"visible"`
	XAnchor string `json:"xanchor"`
}

// Font sets a text size.
type Font struct {
	Size int `json:"size"`
}

// SliderStep animates to one frame.
//
// Args is [[time value], AnimationOptions].
type SliderStep struct {
	Args   []interface{} `json:"args"`
	Label  string        `json:"label"`
	Method string        `json:"method"`
}

// UpdateMenu is a group of animation buttons.
type UpdateMenu struct {
	Buttons    []MenuButton `json:"buttons"`
	Direction  string       `json:"direction"`
	Pad        Pad          `json:"pad"`
	ShowActive bool         `json:"showactive"`
	Type       string       `json:"type"`
	XAnchor    string       `json:"xanchor"`
	YAnchor    string       `json:"yanchor"`
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
}

// MenuButton is a single Play or Pause button.
//
// Args is [frame selector, AnimationOptions]; the selector is null for Play
// (all frames) and [null] for Pause.
type MenuButton struct {
	Args   []interface{} `json:"args"`
	Label  string        `json:"label"`
	Method string        `json:"method"`
}

// AnimationOptions is the second argument of Plotly.animate.
type AnimationOptions struct {
	Frame       FrameOptions `json:"frame"`
	FromCurrent bool         `json:"fromcurrent,omitempty"`
	Mode        string       `json:"mode,omitempty"`
	Transition  Transition   `json:"transition"`
}

// FrameOptions controls per-frame timing.
type FrameOptions struct {
	Duration int  `json:"duration"`
	Redraw   bool `json:"redraw"`
}

// Transition controls the tween between frames.
type Transition struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

// ============================================================================
// TABLE / SUMMARY TYPES — flat views of a Figure for CSV and text output
// ============================================================================

// TableData is a flat, row-per-point rendering of a Figure.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "right"
}

// Summary describes the shape of a Figure.
type Summary struct {
	Title    string   `json:"title"`
	Traces   int      `json:"traces"`
	Frames   int      `json:"frames"`
	Points   int      `json:"points"`
	Series   []string `json:"series,omitempty"`
	Is3D     bool     `json:"is3D"`
	Animated bool     `json:"animated"`
	Reply    string   `json:"reply"`
}
