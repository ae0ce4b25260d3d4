package helpers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spektr-org/bubbly/engine"
)

// ============================================================================
// CONFIG FILES — Plot settings from YAML, TOML or JSON
// ============================================================================
// The decoder is picked by file extension. Unknown keys are rejected so a
// misspelled option fails loudly instead of being ignored.
//
//	# plot.yaml
//	x: gdpPercap
//	y: lifeExp
//	bubble: country
//	timeColumn: year
//	sizeColumn: pop
//	colorColumn: continent
//	xLogScale: true
//	filters:
//	  continent: [Asia, Europe]
// ============================================================================

// PlotConfig is a complete plot request as stored in a config file.
type PlotConfig struct {
	X      string `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y      string `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Bubble string `json:"bubble,omitempty" yaml:"bubble,omitempty" toml:"bubble,omitempty"`

	engine.Options `yaml:",inline"`

	Filters map[string][]string `json:"filters,omitempty" yaml:"filters,omitempty" toml:"filters,omitempty"`
}

// Decoder decodes one document into v.
type Decoder interface {
	Decode(v interface{}) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

var decoders = map[string]DecoderFunc{
	".yaml": func(r io.Reader) Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	},
	".toml": func(r io.Reader) Decoder {
		d := toml.NewDecoder(r)
		d.DisallowUnknownFields()
		return d
	},
	".json": func(r io.Reader) Decoder {
		d := json.NewDecoder(r)
		d.DisallowUnknownFields()
		return d
	},
}

func init() {
	decoders[".yml"] = decoders[".yaml"]
}

// DecoderFor returns the decoder for a file name's extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml, .toml or .json)", ext)
	}
	return f, nil
}

// LoadConfig reads a PlotConfig from filename.
func LoadConfig(filename string) (*PlotConfig, error) {
	newDecoder, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var cfg PlotConfig
	if err := ReadConfig(&cfg, bufio.NewReader(fp), newDecoder); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	return &cfg, nil
}

// LoadOptions reads only the plot options from filename.
func LoadOptions(filename string) (engine.Options, error) {
	cfg, err := LoadConfig(filename)
	if err != nil {
		return engine.Options{}, err
	}
	return cfg.Options, nil
}

// ReadConfig decodes v from r using f. An empty document leaves v unchanged.
func ReadConfig(v interface{}, r io.Reader, f DecoderFunc) error {
	err := f(r).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// EngineFilters converts the config's filter map into engine filters.
func (c *PlotConfig) EngineFilters() engine.Filters {
	return engine.Filters{Columns: c.Filters}
}
