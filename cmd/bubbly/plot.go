package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/bubbly/engine"
	"github.com/spektr-org/bubbly/helpers"
	"github.com/spektr-org/bubbly/schema"
)

// plotFlags holds the flags of the plot command.
type plotFlags struct {
	file    string
	sheet   string
	config  string
	x, y    string
	bubble  string
	z       string
	time    string
	size    string
	color   string
	title   string
	filters []string

	xLog, yLog, zLog bool
	scaleBubble      float64
	colorScale       string
	noSlider         bool
	noButton         bool

	format string
	out    string
}

func newPlotCmd() *cobra.Command {
	f := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Build a bubble chart figure from a data file",
		Example: `  bubbly plot --file gapminder.csv --x gdpPercap --y lifeExp --bubble country \
      --time year --size pop --color continent --x-log
  bubbly plot --file sales.xlsx --config plot.yaml --format text
  bubbly plot --file data.csv --config plot.toml --filter continent=Asia,Europe --out fig.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "Path to CSV or XLSX data file (required)")
	fl.StringVar(&f.sheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	fl.StringVarP(&f.config, "config", "c", "", "Plot config file (.yaml, .yml, .toml, .json)")
	fl.StringVar(&f.x, "x", "", "X axis column")
	fl.StringVar(&f.y, "y", "", "Y axis column")
	fl.StringVar(&f.bubble, "bubble", "", "Bubble label column")
	fl.StringVar(&f.z, "z", "", "Z axis column (3D chart)")
	fl.StringVar(&f.time, "time", "", "Time column (one animation frame per value)")
	fl.StringVar(&f.size, "size", "", "Bubble size column")
	fl.StringVar(&f.color, "color", "", "Color column (numeric scale, or grouping if categorical)")
	fl.StringVar(&f.title, "title", "", "Chart title")
	fl.StringArrayVar(&f.filters, "filter", nil, "Row filter column=v1,v2 (repeatable)")
	fl.BoolVar(&f.xLog, "x-log", false, "Log scale on the x axis")
	fl.BoolVar(&f.yLog, "y-log", false, "Log scale on the y axis")
	fl.BoolVar(&f.zLog, "z-log", false, "Log scale on the z axis")
	fl.Float64Var(&f.scaleBubble, "scale-bubble", 1, "Bubble size multiplier")
	fl.StringVar(&f.colorScale, "colorscale", "", "Colorscale name for numeric colors")
	fl.BoolVar(&f.noSlider, "no-slider", false, "Hide the time slider")
	fl.BoolVar(&f.noButton, "no-button", false, "Hide the Play/Pause buttons")
	fl.StringVar(&f.format, "format", envOr(envFormat, "json"), "Output format: json, pretty, csv, text (env "+envFormat+")")
	fl.StringVarP(&f.out, "out", "o", "", "Write output to file instead of stdout")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPlot(cmd *cobra.Command, f *plotFlags) error {
	if !validFormat(f.format) {
		return fmt.Errorf("invalid format: %s (must be json, pretty, csv or text)", f.format)
	}

	cfg, err := resolvePlotConfig(cmd, f)
	if err != nil {
		return err
	}
	if cfg.X == "" || cfg.Y == "" || cfg.Bubble == "" {
		return fmt.Errorf("--x, --y and --bubble are required (as flags or in --config)")
	}

	ds, err := loadDataset(f.file, f.sheet)
	if err != nil {
		return err
	}
	slog.Info("Bubbly: loaded dataset", "file", f.file, "rows", ds.Len(), "columns", len(ds.Columns()))

	filtered, err := engine.ApplyFilters(ds, cfg.EngineFilters())
	if err != nil {
		return fmt.Errorf("applying filters: %w", err)
	}
	if filtered.Len() != ds.Len() {
		slog.Info("Bubbly: rows after filtering", "rows", filtered.Len(), "from", ds.Len())
	}

	fig, err := engine.BubblePlot(filtered, cfg.X, cfg.Y, cfg.Bubble,
		engine.WithOptions(cfg.Options),
		engine.WithLogger(slog.Default()),
	)
	if err != nil {
		return fmt.Errorf("building figure: %w", err)
	}

	return withOutput(cmd, f.out, func(w io.Writer) error {
		return writeFigure(w, fig, f.format)
	})
}

// resolvePlotConfig merges the config file (if any) with flags; a flag set
// on the command line wins over the file.
func resolvePlotConfig(cmd *cobra.Command, f *plotFlags) (*helpers.PlotConfig, error) {
	cfg := &helpers.PlotConfig{}
	if f.config != "" {
		loaded, err := helpers.LoadConfig(f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		slog.Info("Bubbly: loaded config", "file", f.config)
	}

	changed := cmd.Flags().Changed
	setIf := func(flag string, dst *string, v string) {
		if changed(flag) {
			*dst = v
		}
	}
	setIf("x", &cfg.X, f.x)
	setIf("y", &cfg.Y, f.y)
	setIf("bubble", &cfg.Bubble, f.bubble)
	setIf("z", &cfg.ZColumn, f.z)
	setIf("time", &cfg.TimeColumn, f.time)
	setIf("size", &cfg.SizeColumn, f.size)
	setIf("color", &cfg.ColorColumn, f.color)
	setIf("title", &cfg.Title, f.title)
	setIf("colorscale", &cfg.ColorScale, f.colorScale)

	if changed("x-log") {
		cfg.XLogScale = &f.xLog
	}
	if changed("y-log") {
		cfg.YLogScale = &f.yLog
	}
	if changed("z-log") {
		cfg.ZLogScale = &f.zLog
	}
	if changed("scale-bubble") {
		cfg.ScaleBubble = f.scaleBubble
	}
	if changed("no-slider") {
		show := !f.noSlider
		cfg.ShowSlider = &show
	}
	if changed("no-button") {
		show := !f.noButton
		cfg.ShowButton = &show
	}

	for _, expr := range f.filters {
		name, values, err := engine.ParseFilter(expr)
		if err != nil {
			return nil, err
		}
		if cfg.Filters == nil {
			cfg.Filters = make(map[string][]string)
		}
		cfg.Filters[name] = values
	}
	return cfg, nil
}

// loadDataset reads a CSV or XLSX file by extension.
func loadDataset(path, sheet string) (*engine.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		ds, _, err := helpers.ParseXLSX(path, sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return ds, nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		ds, _, err := helpers.ParseCSVAuto(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return ds, nil
	}
}

// ============================================================================
// DISCOVER
// ============================================================================

func newDiscoverCmd() *cobra.Command {
	var file, sheet, format, out string

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Print the inferred column kinds of a data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := discoverSchema(file, sheet)
			if err != nil {
				return err
			}
			slog.Info("Bubbly: auto-detect", "name", sch.Name,
				"columns", len(sch.Columns), "skipped", len(sch.SkippedColumns))
			return withOutput(cmd, out, func(w io.Writer) error {
				return writeJSON(w, sch, format == "pretty")
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to CSV or XLSX data file (required)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet name (default: first sheet)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: json, pretty")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write output to file instead of stdout")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func discoverSchema(path, sheet string) (*schema.Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		headers, rows, err := helpers.ReadXLSX(path, sheet)
		if err != nil {
			return nil, err
		}
		return schema.DiscoverFromRows(headers, rows, schema.DiscoverOptions{
			SampleSize: 1000,
			Name:       filepath.Base(path),
			Source:     "XLSX",
		})
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}
		return schema.DiscoverFromCSV(data, schema.DiscoverOptions{
			SampleSize: 1000,
			Name:       filepath.Base(path),
		})
	}
}
