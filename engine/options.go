package engine

import (
	"log/slog"
)

// ============================================================================
// BUBBLE PLOT OPTIONS — Functional options for BubblePlot()
// ============================================================================
// Options is the single configuration object. It can be filled directly,
// decoded from a YAML/TOML/JSON file (see helpers.LoadOptions) or built
// from functional options. BubblePlot resolves it once into a plan with
// every derived flag computed up front.
// ============================================================================

// Option configures BubblePlot via the functional options pattern.
type Option func(*Options)

// Options holds every optional BubblePlot parameter.
// Pointer fields distinguish "not set" from a zero value.
type Options struct {
	// ZColumn turns the chart into a 3D scatter.
	ZColumn string `json:"zColumn,omitempty" yaml:"zColumn,omitempty" toml:"zColumn,omitempty"`
	// TimeColumn splits the data into one animation frame per value.
	// Without it the slider and buttons are never shown.
	TimeColumn string `json:"timeColumn,omitempty" yaml:"timeColumn,omitempty" toml:"timeColumn,omitempty"`
	// SizeColumn scales bubble area by value.
	SizeColumn string `json:"sizeColumn,omitempty" yaml:"sizeColumn,omitempty" toml:"sizeColumn,omitempty"`
	// ColorColumn colors bubbles by a numeric value, or, for a categorical
	// column, splits the chart into one legend series per category.
	ColorColumn string `json:"colorColumn,omitempty" yaml:"colorColumn,omitempty" toml:"colorColumn,omitempty"`

	// Log axes. Nil means linear.
	XLogScale *bool `json:"xLogScale,omitempty" yaml:"xLogScale,omitempty" toml:"xLogScale,omitempty"`
	YLogScale *bool `json:"yLogScale,omitempty" yaml:"yLogScale,omitempty" toml:"yLogScale,omitempty"`
	ZLogScale *bool `json:"zLogScale,omitempty" yaml:"zLogScale,omitempty" toml:"zLogScale,omitempty"`

	// Explicit axis ranges are used verbatim; nil computes one from data.
	XRange *Range `json:"xRange,omitempty" yaml:"xRange,omitempty" toml:"xRange,omitempty"`
	YRange *Range `json:"yRange,omitempty" yaml:"yRange,omitempty" toml:"yRange,omitempty"`
	ZRange *Range `json:"zRange,omitempty" yaml:"zRange,omitempty" toml:"zRange,omitempty"`

	XTitle        string `json:"xTitle,omitempty" yaml:"xTitle,omitempty" toml:"xTitle,omitempty"`
	YTitle        string `json:"yTitle,omitempty" yaml:"yTitle,omitempty" toml:"yTitle,omitempty"`
	ZTitle        string `json:"zTitle,omitempty" yaml:"zTitle,omitempty" toml:"zTitle,omitempty"`
	Title         string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	ColorbarTitle string `json:"colorbarTitle,omitempty" yaml:"colorbarTitle,omitempty" toml:"colorbarTitle,omitempty"`

	// ScaleBubble multiplies bubble size. Zero means 1.
	ScaleBubble float64 `json:"scaleBubble,omitempty" yaml:"scaleBubble,omitempty" toml:"scaleBubble,omitempty"`
	// ColorScale is a renderer colorscale name, e.g. "Viridis".
	ColorScale        string   `json:"colorScale,omitempty" yaml:"colorScale,omitempty" toml:"colorScale,omitempty"`
	MarkerOpacity     *float64 `json:"markerOpacity,omitempty" yaml:"markerOpacity,omitempty" toml:"markerOpacity,omitempty"`
	MarkerBorderWidth *float64 `json:"markerBorderWidth,omitempty" yaml:"markerBorderWidth,omitempty" toml:"markerBorderWidth,omitempty"`

	// Display toggles. Nil means the default: slider, buttons and
	// colorbar shown; legend shown only for categorical charts.
	ShowSlider   *bool `json:"showSlider,omitempty" yaml:"showSlider,omitempty" toml:"showSlider,omitempty"`
	ShowButton   *bool `json:"showButton,omitempty" yaml:"showButton,omitempty" toml:"showButton,omitempty"`
	ShowColorbar *bool `json:"showColorbar,omitempty" yaml:"showColorbar,omitempty" toml:"showColorbar,omitempty"`
	ShowLegend   *bool `json:"showLegend,omitempty" yaml:"showLegend,omitempty" toml:"showLegend,omitempty"`

	Width  *int `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height *int `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`

	// SliderPrefix labels the slider's current value. Default "Year:".
	SliderPrefix string `json:"sliderPrefix,omitempty" yaml:"sliderPrefix,omitempty" toml:"sliderPrefix,omitempty"`

	logger *slog.Logger
}

// WithOptions overlays every set field of o.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = mergeOptions(*dst, o) }
}

// WithZ makes the chart 3D using column z.
func WithZ(column string) Option {
	return func(o *Options) { o.ZColumn = column }
}

// WithTime animates the chart over the values of column.
func WithTime(column string) Option {
	return func(o *Options) { o.TimeColumn = column }
}

// WithSize scales bubble area by column.
func WithSize(column string) Option {
	return func(o *Options) { o.SizeColumn = column }
}

// WithColor colors bubbles by column, or groups by it if it is categorical.
func WithColor(column string) Option {
	return func(o *Options) { o.ColorColumn = column }
}

// WithLogScale sets log axes for x, y and z.
func WithLogScale(x, y, z bool) Option {
	return func(o *Options) {
		o.XLogScale, o.YLogScale, o.ZLogScale = &x, &y, &z
	}
}

// WithRange fixes the range of one axis ("x", "y" or "z").
func WithRange(axis string, lo, hi float64) Option {
	return func(o *Options) {
		r := &Range{lo, hi}
		switch axis {
		case "x":
			o.XRange = r
		case "y":
			o.YRange = r
		case "z":
			o.ZRange = r
		}
	}
}

// WithTitles sets the axis titles.
func WithTitles(x, y, z string) Option {
	return func(o *Options) {
		o.XTitle, o.YTitle, o.ZTitle = x, y, z
	}
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithColorbar sets the colorbar title and visibility.
func WithColorbar(title string, show bool) Option {
	return func(o *Options) {
		o.ColorbarTitle = title
		o.ShowColorbar = &show
	}
}

// WithScaleBubble multiplies bubble size.
func WithScaleBubble(scale float64) Option {
	return func(o *Options) { o.ScaleBubble = scale }
}

// WithColorScale sets the colorscale name for numeric colors.
func WithColorScale(name string) Option {
	return func(o *Options) { o.ColorScale = name }
}

// WithMarkerOpacity sets bubble opacity.
func WithMarkerOpacity(opacity float64) Option {
	return func(o *Options) { o.MarkerOpacity = &opacity }
}

// WithMarkerBorderWidth sets the bubble border width.
func WithMarkerBorderWidth(width float64) Option {
	return func(o *Options) { o.MarkerBorderWidth = &width }
}

// WithSlider shows or hides the time slider.
func WithSlider(show bool) Option {
	return func(o *Options) { o.ShowSlider = &show }
}

// WithButton shows or hides the Play/Pause buttons.
func WithButton(show bool) Option {
	return func(o *Options) { o.ShowButton = &show }
}

// WithLegend forces the legend on or off.
func WithLegend(show bool) Option {
	return func(o *Options) { o.ShowLegend = &show }
}

// WithSize2D sets the figure width and height in pixels.
func WithSize2D(width, height int) Option {
	return func(o *Options) {
		o.Width = &width
		o.Height = &height
	}
}

// WithSliderPrefix sets the label shown before the slider value.
func WithSliderPrefix(prefix string) Option {
	return func(o *Options) { o.SliderPrefix = prefix }
}

// WithLogger routes engine debug logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.logger = logger }
}

// applyOptions creates Options from functional options.
func applyOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.ScaleBubble == 0 {
		o.ScaleBubble = 1
	}
	if o.SliderPrefix == "" {
		o.SliderPrefix = "Year:"
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// mergeOptions returns base with every set field of over applied.
func mergeOptions(base, over Options) Options {
	setString(&base.ZColumn, over.ZColumn)
	setString(&base.TimeColumn, over.TimeColumn)
	setString(&base.SizeColumn, over.SizeColumn)
	setString(&base.ColorColumn, over.ColorColumn)
	if over.XLogScale != nil {
		base.XLogScale = over.XLogScale
	}
	if over.YLogScale != nil {
		base.YLogScale = over.YLogScale
	}
	if over.ZLogScale != nil {
		base.ZLogScale = over.ZLogScale
	}
	if over.XRange != nil {
		base.XRange = over.XRange
	}
	if over.YRange != nil {
		base.YRange = over.YRange
	}
	if over.ZRange != nil {
		base.ZRange = over.ZRange
	}
	setString(&base.XTitle, over.XTitle)
	setString(&base.YTitle, over.YTitle)
	setString(&base.ZTitle, over.ZTitle)
	setString(&base.Title, over.Title)
	setString(&base.ColorbarTitle, over.ColorbarTitle)
	if over.ScaleBubble != 0 {
		base.ScaleBubble = over.ScaleBubble
	}
	setString(&base.ColorScale, over.ColorScale)
	if over.MarkerOpacity != nil {
		base.MarkerOpacity = over.MarkerOpacity
	}
	if over.MarkerBorderWidth != nil {
		base.MarkerBorderWidth = over.MarkerBorderWidth
	}
	if over.ShowSlider != nil {
		base.ShowSlider = over.ShowSlider
	}
	if over.ShowButton != nil {
		base.ShowButton = over.ShowButton
	}
	if over.ShowColorbar != nil {
		base.ShowColorbar = over.ShowColorbar
	}
	if over.ShowLegend != nil {
		base.ShowLegend = over.ShowLegend
	}
	if over.Width != nil {
		base.Width = over.Width
	}
	if over.Height != nil {
		base.Height = over.Height
	}
	setString(&base.SliderPrefix, over.SliderPrefix)
	if over.logger != nil {
		base.logger = over.logger
	}
	return base
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
