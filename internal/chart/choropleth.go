package chart

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// renderChoropleth paints every world region, coloring the ones a region
// value resolves to on a linear scale and filling everything else, including
// explicit no-data entries, with the fixed no-data gray. Unmatched regions
// degrade the chart, they never abort it.
func (r *PlotRenderer) renderChoropleth(s Spec) ([]byte, error) {
	p := newPlot(s)
	p.HideAxes()

	if r.atlas == nil || len(r.atlas.Regions()) == 0 {
		r.log.Warn("no geographic polygons available, rendering no-data map")
		addNoDataLabel(p)
		return encodePNG(p, 10*vg.Inch, 6*vg.Inch)
	}

	// Resolve values onto region names the atlas knows.
	values := map[string]float64{}
	lo, hi := 0.0, 0.0
	first := true
	var unmatched []string
	for _, rv := range s.Regions {
		if !rv.HasData {
			continue
		}
		region, ok := r.atlas.Lookup(rv.Name)
		if !ok {
			unmatched = append(unmatched, rv.Name)
			continue
		}
		values[region.Name] = rv.Value
		if first || rv.Value < lo {
			lo = rv.Value
		}
		if first || rv.Value > hi {
			hi = rv.Value
		}
		first = false
	}
	if len(unmatched) > 0 {
		r.log.WithField("regions", strings.Join(unmatched, ", ")).
			Warn("no polygon for some regions, painting them as no data")
	}

	scale := moreland.Kindlmann()
	if hi <= lo {
		hi = lo + 1
	}
	scale.SetMin(lo)
	scale.SetMax(hi)

	for _, region := range r.atlas.Regions() {
		fill := color.Color(noDataGray)
		if v, ok := values[region.Name]; ok {
			if c, err := scale.At(v); err == nil {
				fill = c
			}
		}
		for _, ring := range region.Rings {
			if len(ring) < 3 {
				continue
			}
			xys := make(plotter.XYs, len(ring))
			for i, pt := range ring {
				xys[i] = plotter.XY{X: pt[0], Y: pt[1]}
			}
			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, fmt.Errorf("region %s: %w", region.Name, err)
			}
			poly.Color = fill
			poly.LineStyle.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			poly.LineStyle.Width = vg.Points(0.4)
			p.Add(poly)
		}
	}

	// Legend: low/high ends of the scale plus the no-data marker.
	addLegendSwatch(p, fmt.Sprintf("%.0f", lo), scaleColor(scale.At, lo))
	addLegendSwatch(p, fmt.Sprintf("%.0f", hi), scaleColor(scale.At, hi))
	addLegendSwatch(p, "no data", noDataGray)
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Min, p.X.Max = -180, 180
	p.Y.Min, p.Y.Max = -60, 90
	return encodePNG(p, 10*vg.Inch, 6*vg.Inch)
}

func scaleColor(at func(float64) (color.Color, error), v float64) color.Color {
	if c, err := at(v); err == nil {
		return c
	}
	return noDataGray
}

func addLegendSwatch(p *plot.Plot, label string, fill color.Color) {
	swatch, err := plotter.NewPolygon(rectXYs(Rect{X: -180, Y: -60, W: 1, H: 1}))
	if err != nil {
		return
	}
	swatch.Color = fill
	p.Legend.Add(label, swatch)
}
