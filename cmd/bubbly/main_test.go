package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yearlyCSV = `country,year,gdp,pop
A,2000,1,10
B,2000,2,20
A,2001,3,30
`

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeData(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlotJSON(t *testing.T) {
	data := writeData(t, "yearly.csv", yearlyCSV)

	out, err := run(t, "plot", "--file", data,
		"--x", "gdp", "--y", "pop", "--bubble", "country", "--time", "year", "--format", "json")
	require.NoError(t, err)

	var fig struct {
		Data   []map[string]interface{} `json:"data"`
		Layout map[string]interface{}   `json:"layout"`
		Frames []struct {
			Name string `json:"name"`
		} `json:"frames"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fig))
	assert.Len(t, fig.Data, 1)
	require.Len(t, fig.Frames, 2)
	assert.Equal(t, "2000", fig.Frames[0].Name)
	assert.Equal(t, "2001", fig.Frames[1].Name)
	assert.Contains(t, fig.Layout, "sliders")
	assert.Contains(t, fig.Layout, "updatemenus")
}

func TestPlotConfigFileAndFlagOverride(t *testing.T) {
	data := writeData(t, "yearly.csv", yearlyCSV)
	cfg := writeData(t, "plot.yaml", "x: gdp\ny: pop\nbubble: country\ntimeColumn: year\ntitle: From file\n")

	out, err := run(t, "plot", "-f", data, "-c", cfg, "--title", "From flag", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "From flag: 2D bubble chart with 3 points, 2 frames (2000 to 2001).\n", out)
}

func TestPlotCSVWithFilter(t *testing.T) {
	data := writeData(t, "yearly.csv", yearlyCSV)

	out, err := run(t, "plot", "-f", data, "--x", "gdp", "--y", "pop", "--bubble", "country",
		"--filter", "country=a", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Label,X,Y", lines[0])
	assert.Equal(t, "A,1,10", lines[1])
	assert.Equal(t, "A,3,30", lines[2])
}

func TestPlotOutFile(t *testing.T) {
	data := writeData(t, "yearly.csv", yearlyCSV)
	dest := filepath.Join(t.TempDir(), "fig.json")

	out, err := run(t, "plot", "-f", data, "--x", "gdp", "--y", "pop", "--bubble", "country", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, json.Valid(written))
}

func TestPlotErrors(t *testing.T) {
	data := writeData(t, "yearly.csv", yearlyCSV)

	_, err := run(t, "plot", "-f", data, "--x", "gdp", "--y", "pop", "--bubble", "country", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")

	_, err = run(t, "plot", "-f", data, "--x", "gdp")
	assert.ErrorContains(t, err, "required")

	_, err = run(t, "plot", "-f", data, "--x", "gdp", "--y", "area", "--bubble", "country")
	assert.ErrorContains(t, err, "area")

	_, err = run(t, "plot", "--x", "gdp")
	assert.Error(t, err)

	_, err = run(t, "--log-level", "loud", "version")
	assert.ErrorContains(t, err, "invalid --log-level")
}

func TestDiscover(t *testing.T) {
	data := writeData(t, "yearly.csv", yearlyCSV)

	out, err := run(t, "discover", "-f", data)
	require.NoError(t, err)

	var sch struct {
		Name    string `json:"name"`
		Columns []struct {
			Key  string `json:"key"`
			Kind string `json:"kind"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sch))
	assert.Equal(t, "yearly.csv", sch.Name)
	require.Len(t, sch.Columns, 4)
	assert.Equal(t, "country", sch.Columns[0].Key)
	assert.Equal(t, "numeric", sch.Columns[2].Kind)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bubbly "+version+"\n", out)
}

// A blank numeric cell loads as NaN, which JSON cannot encode; the whole
// plot fails rather than writing a partial document.
func TestPlotJSONRejectsBlankNumericCell(t *testing.T) {
	data := writeData(t, "gaps.csv", "country,gdp,pop\nA,1.5,10.5\nB,,20.5\nC,3.5,30.5\n")

	out, err := run(t, "plot", "-f", data, "--x", "gdp", "--y", "pop", "--bubble", "country", "--format", "json")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to marshal output")
	assert.ErrorContains(t, err, "NaN")
	assert.Empty(t, out)

	// The text summary does not encode values and still succeeds.
	out, err = run(t, "plot", "-f", data, "--x", "gdp", "--y", "pop", "--bubble", "country", "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "2D bubble chart with 3 points.\n", out)
}
