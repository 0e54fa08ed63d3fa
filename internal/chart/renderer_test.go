package chart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette/moreland"

	"github.com/matchframe/cupstats/internal/geo"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// fakeAtlas serves two square regions so the choropleth can be exercised
// without a GeoJSON file.
type fakeAtlas struct{}

func (fakeAtlas) Regions() []geo.Region {
	return []geo.Region{
		square("Uruguay", -58, -35),
		square("Brazil", -60, -10),
	}
}

func (f fakeAtlas) Lookup(name string) (geo.Region, bool) {
	for _, r := range f.Regions() {
		if r.Name == name {
			return r, true
		}
	}
	return geo.Region{}, false
}

func square(name string, x, y float64) geo.Region {
	return geo.Region{Name: name, Rings: [][][2]float64{{
		{x, y}, {x + 5, y}, {x + 5, y + 5}, {x, y + 5},
	}}}
}

func testSpecs() map[string]Spec {
	return map[string]Spec{
		"line": {
			Kind: KindLine, Title: "attendance", XLabel: "Year", YLabel: "Mean",
			Points: []Point{{X: 1930, Y: 24000}, {X: 1950, Y: 47000}, {X: 2014, Y: 53000}},
		},
		"pie": {
			Kind: KindPie, Title: "finals",
			Slices: []Slice{{Label: "Brazil", Value: 40}, {Label: "Germany", Value: 35}, {Label: "Italy", Value: 25}},
		},
		"bar": {
			Kind: KindBar, Title: "matchups", XLabel: "Mean attendance",
			Bars: []Bar{{Label: "Uruguay vs. Brazil", Value: 173850}, {Label: "Brazil vs. Italy", Value: 94194}},
		},
		"treemap": {
			Kind: KindTreemap, Title: "goals",
			Branches: []Branch{
				{Label: "Final", Leaves: []Leaf{{Label: "Germany", Value: 1}}},
				{Label: "Group G", Leaves: []Leaf{{Label: "Germany", Value: 4}, {Label: "Portugal", Value: 2}}},
			},
		},
		"choropleth": {
			Kind: KindChoropleth, Title: "hosts",
			Regions: []RegionValue{
				{Name: "Uruguay", Value: 121098, HasData: true},
				{Name: "Brazil", Value: 61000, HasData: true},
				{Name: "Chile", HasData: false},
			},
		},
		"box": {
			Kind: KindBox, Title: "goals per match", XLabel: "Decade", YLabel: "Goals",
			Boxes: []Box{
				{Label: "1930s", Values: []float64{5, 1, 6, 3}},
				{Label: "2010s", Values: []float64{1, 4, 4, 0, 2}},
			},
		},
	}
}

func TestRenderProducesPNG(t *testing.T) {
	r := NewPlotRenderer(fakeAtlas{}, nil)
	for name, spec := range testSpecs() {
		t.Run(name, func(t *testing.T) {
			img, err := r.Render(spec)
			require.NoError(t, err)
			require.Greater(t, len(img), len(pngMagic))
			assert.Equal(t, pngMagic, img[:len(pngMagic)])
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewPlotRenderer(fakeAtlas{}, nil)
	spec := testSpecs()["treemap"]
	first, err := r.Render(spec)
	require.NoError(t, err)
	second, err := r.Render(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderUnknownKind(t *testing.T) {
	r := NewPlotRenderer(nil, nil)
	_, err := r.Render(Spec{Kind: Kind("sparkline")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown chart kind")
}

func TestChoroplethWithoutAtlasDegrades(t *testing.T) {
	r := NewPlotRenderer(nil, nil)
	img, err := r.Render(testSpecs()["choropleth"])
	require.NoError(t, err)
	assert.Equal(t, pngMagic, img[:len(pngMagic)])
}

func TestChoroplethUnmatchedRegionDegrades(t *testing.T) {
	r := NewPlotRenderer(fakeAtlas{}, nil)
	spec := Spec{
		Kind: KindChoropleth, Title: "hosts",
		Regions: []RegionValue{
			{Name: "Uruguay", Value: 100, HasData: true},
			{Name: "Atlantis", Value: 50, HasData: true},
		},
	}
	img, err := r.Render(spec)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, img[:len(pngMagic)])
}

func TestScaleColorEndpoints(t *testing.T) {
	scale := moreland.Kindlmann()
	scale.SetMin(0)
	scale.SetMax(100)

	lo := scaleColor(scale.At, 0)
	hi := scaleColor(scale.At, 100)
	assert.NotEqual(t, lo, hi)
	assert.NotEqual(t, color.Color(noDataGray), lo)

	// Out-of-range values fall back to the no-data fill.
	assert.Equal(t, color.Color(noDataGray), scaleColor(scale.At, 200))
}

func TestEmptyPayloadsStillRender(t *testing.T) {
	r := NewPlotRenderer(fakeAtlas{}, nil)
	for _, spec := range []Spec{
		{Kind: KindPie, Title: "empty"},
		{Kind: KindTreemap, Title: "empty"},
		{Kind: KindBox, Title: "empty"},
	} {
		img, err := r.Render(spec)
		require.NoError(t, err, "kind %s", spec.Kind)
		assert.Equal(t, pngMagic, img[:len(pngMagic)], "kind %s", spec.Kind)
	}
}
