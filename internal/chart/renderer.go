package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// noDataGray is the fixed fill for regions and cells without data.
var noDataGray = color.RGBA{R: 210, G: 210, B: 210, A: 255}

// PlotRenderer renders chart specs to PNG with gonum/plot.
type PlotRenderer struct {
	atlas RegionSource
	log   *logrus.Entry
}

// NewPlotRenderer builds a renderer. The atlas may be nil when no geographic
// data is available; the choropleth then renders as a no-data chart.
func NewPlotRenderer(atlas RegionSource, log *logrus.Entry) *PlotRenderer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &PlotRenderer{atlas: atlas, log: log}
}

// Render implements Renderer.
func (r *PlotRenderer) Render(s Spec) ([]byte, error) {
	switch s.Kind {
	case KindLine:
		return r.renderLine(s)
	case KindPie:
		return r.renderPie(s)
	case KindBar:
		return r.renderBar(s)
	case KindTreemap:
		return r.renderTreemap(s)
	case KindChoropleth:
		return r.renderChoropleth(s)
	case KindBox:
		return r.renderBox(s)
	default:
		return nil, unknownKind(s.Kind)
	}
}

func (r *PlotRenderer) renderLine(s Spec) ([]byte, error) {
	p := newPlot(s)

	pts := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("line plot: %w", err)
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(2)

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("line points: %w", err)
	}
	scatter.GlyphStyle.Color = line.Color
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(plotter.NewGrid(), line, scatter)
	return encodePNG(p, 9*vg.Inch, 5*vg.Inch)
}

func (r *PlotRenderer) renderPie(s Spec) ([]byte, error) {
	p := newPlot(s)
	p.HideAxes()

	total := 0.0
	for _, sl := range s.Slices {
		total += sl.Value
	}
	if total <= 0 {
		r.log.Warn("pie chart has no positive values, rendering empty")
		addNoDataLabel(p)
		return encodePNG(p, 7*vg.Inch, 7*vg.Inch)
	}

	var labelXYs plotter.XYs
	var labels []string
	angle := math.Pi / 2 // 12 o'clock start, clockwise
	for i, sl := range s.Slices {
		if sl.Value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * sl.Value / total
		wedge, err := plotter.NewPolygon(wedgeXYs(angle, angle-sweep))
		if err != nil {
			return nil, fmt.Errorf("pie wedge: %w", err)
		}
		wedge.Color = sliceColor(i)
		wedge.LineStyle.Color = color.White
		wedge.LineStyle.Width = vg.Points(1)
		p.Add(wedge)
		p.Legend.Add(fmt.Sprintf("%s (%.1f%%)", sl.Label, sl.Value), wedge)

		mid := angle - sweep/2
		labelXYs = append(labelXYs, plotter.XY{X: 0.72 * math.Cos(mid), Y: 0.72 * math.Sin(mid)})
		labels = append(labels, fmt.Sprintf("%.1f%%", sl.Value))
		angle -= sweep
	}

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("pie labels: %w", err)
	}
	p.Add(names)
	p.Legend.Top = true
	p.Legend.Left = true
	p.X.Min, p.X.Max = -1.3, 1.3
	p.Y.Min, p.Y.Max = -1.3, 1.3
	return encodePNG(p, 7*vg.Inch, 7*vg.Inch)
}

func (r *PlotRenderer) renderBar(s Spec) ([]byte, error) {
	p := newPlot(s)

	// Reverse so the top-ranked entry draws at the top of the axis.
	n := len(s.Bars)
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i, b := range s.Bars {
		values[n-1-i] = b.Value
		labels[n-1-i] = b.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(14))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalY(labels...)
	return encodePNG(p, 9*vg.Inch, 6*vg.Inch)
}

func (r *PlotRenderer) renderBox(s Spec) ([]byte, error) {
	p := newPlot(s)

	labels := make([]string, 0, len(s.Boxes))
	loc := 0.0
	for _, b := range s.Boxes {
		if len(b.Values) == 0 {
			r.log.WithField("category", b.Label).Warn("empty distribution, skipping box")
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(26), loc, plotter.Values(b.Values))
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", b.Label, err)
		}
		p.Add(box)
		labels = append(labels, b.Label)
		loc++
	}
	if len(labels) == 0 {
		addNoDataLabel(p)
	} else {
		p.NominalX(labels...)
	}
	p.Add(plotter.NewGrid())
	return encodePNG(p, 9*vg.Inch, 5*vg.Inch)
}

func newPlot(s Spec) *plot.Plot {
	p := plot.New()
	p.Title.Text = s.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	return p
}

// wedgeXYs traces a pie wedge from angle a0 down to a1 around the origin.
func wedgeXYs(a0, a1 float64) plotter.XYs {
	steps := int(math.Ceil((a0 - a1) / (math.Pi / 90)))
	if steps < 2 {
		steps = 2
	}
	xys := make(plotter.XYs, 0, steps+2)
	xys = append(xys, plotter.XY{X: 0, Y: 0})
	for i := 0; i <= steps; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(steps)
		xys = append(xys, plotter.XY{X: math.Cos(a), Y: math.Sin(a)})
	}
	return xys
}

func sliceColor(i int) color.Color {
	palette := []color.RGBA{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
		{R: 227, G: 119, B: 194, A: 255},
		{R: 127, G: 127, B: 127, A: 255},
		{R: 188, G: 189, B: 34, A: 255},
		{R: 23, G: 190, B: 207, A: 255},
	}
	return palette[i%len(palette)]
}

func addNoDataLabel(p *plot.Plot) {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 0.5, Y: 0.5}},
		Labels: []string{"no data"},
	})
	if err == nil {
		p.Add(lbl)
	}
}

// encodePNG writes the plot into a PNG byte slice.
func encodePNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("plot writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
