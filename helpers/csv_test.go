package helpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/bubbly/engine"
	"github.com/spektr-org/bubbly/schema"
)

var gapminderCSV = []byte(`country,continent,year,lifeExp,pop,oecd
Afghanistan,Asia,1952,28.801,8425333,no
Afghanistan,Asia,1957,30.332,9240934,no
Albania,Europe,1952,55.23,1282697,no
Albania,Europe,1957,,1476505,no
Australia,Oceania,1952,69.12,8691212,yes
Australia,Oceania,1957,70.33,9712569,yes
`)

func TestParseCSVAuto(t *testing.T) {
	ds, sch, err := ParseCSVAuto(gapminderCSV)
	require.NoError(t, err)
	assert.Equal(t, 6, ds.Len())
	assert.Equal(t, "CSV", sch.DiscoveredFrom)

	year, err := ds.Column("year")
	require.NoError(t, err)
	assert.Equal(t, []int{1952, 1957, 1952, 1957, 1952, 1957}, year)

	oecd, err := ds.Column("oecd")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false, false, true, true}, oecd)

	country, err := ds.Column("country")
	require.NoError(t, err)
	assert.IsType(t, []string{}, country)

	life, err := ds.Floats("lifeExp")
	require.NoError(t, err)
	assert.Equal(t, 28.801, life[0])
	assert.True(t, math.IsNaN(life[3]), "empty cell loads as NaN")
}

func TestParseCSVAutoPlots(t *testing.T) {
	ds, _, err := ParseCSVAuto(gapminderCSV)
	require.NoError(t, err)

	fig, err := engine.BubblePlot(ds, "pop", "year", "country",
		engine.WithTime("year"), engine.WithColor("continent"))
	require.NoError(t, err)
	require.Len(t, fig.Frames, 2)
	assert.Equal(t, "1952", fig.Frames[0].Name)
	assert.Len(t, fig.Data, 3)
}

func TestParseCSVWithSchema(t *testing.T) {
	sch := schema.Config{Columns: []schema.ColumnMeta{
		{Key: "year", Kind: schema.KindString},
		{Key: "pop", Kind: schema.KindNumeric},
	}}
	ds, err := ParseCSV(gapminderCSV, sch)
	require.NoError(t, err)

	year, err := ds.Column("year")
	require.NoError(t, err)
	assert.IsType(t, []string{}, year)

	pop, err := ds.Column("pop")
	require.NoError(t, err)
	assert.IsType(t, []float64{}, pop)

	// Columns missing from the schema load as text.
	oecd, err := ds.Column("oecd")
	require.NoError(t, err)
	assert.IsType(t, []string{}, oecd)
}

func TestBuildDatasetFallsBackToText(t *testing.T) {
	sch := schema.Config{Columns: []schema.ColumnMeta{
		{Key: "n", Kind: schema.KindNumeric, Integer: true},
		{Key: "b", Kind: schema.KindBool},
	}}
	ds, err := BuildDataset([]string{"n", "b"}, [][]string{{"1", "yes"}, {"two", "perhaps"}}, sch)
	require.NoError(t, err)

	n, err := ds.Column("n")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "two"}, n)

	b, err := ds.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"yes", "perhaps"}, b)
}

func TestParseCSVErrors(t *testing.T) {
	_, _, err := ParseCSVAuto(nil)
	assert.ErrorIs(t, err, schema.ErrNoColumns)

	_, _, err = ParseCSVAuto([]byte("a,b\n"))
	assert.ErrorIs(t, err, schema.ErrNoRows)
}
