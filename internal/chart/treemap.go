package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Rect is an axis-aligned treemap cell in plot coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) area() float64      { return r.W * r.H }
func (r Rect) shortSide() float64 { return math.Min(r.W, r.H) }

// Squarify lays out one value per rectangle inside bounds, preserving input
// order, with areas proportional to the values. Values are expected sorted
// descending; the classic squarified algorithm keeps aspect ratios near one
// under that ordering.
func Squarify(values []float64, bounds Rect) []Rect {
	total := 0.0
	for _, v := range values {
		total += v
	}
	out := make([]Rect, len(values))
	if total <= 0 {
		return out
	}

	// Work on areas scaled to the bounds.
	areas := make([]float64, len(values))
	for i, v := range values {
		areas[i] = v / total * bounds.area()
	}

	rect := bounds
	start := 0
	for start < len(areas) {
		end := start + 1
		for end < len(areas) && worst(areas[start:end+1], rect.shortSide()) <= worst(areas[start:end], rect.shortSide()) {
			end++
		}
		layoutRow(areas[start:end], rect, out[start:end])
		rect = shrink(rect, rowSum(areas[start:end]))
		start = end
	}
	return out
}

func rowSum(row []float64) float64 {
	s := 0.0
	for _, a := range row {
		s += a
	}
	return s
}

// worst returns the worst aspect ratio a row of areas would have when laid
// out along a side of the given length.
func worst(row []float64, side float64) float64 {
	s := rowSum(row)
	if s == 0 || side == 0 {
		return math.Inf(1)
	}
	w := math.Inf(-1)
	for _, a := range row {
		if a == 0 {
			continue
		}
		r := math.Max(side*side*a/(s*s), s*s/(side*side*a))
		if r > w {
			w = r
		}
	}
	return w
}

// layoutRow stacks a row of areas along the short side of rect.
func layoutRow(row []float64, rect Rect, out []Rect) {
	s := rowSum(row)
	if s <= 0 {
		return
	}
	if rect.W >= rect.H {
		// Column against the left edge, cells stacked top to bottom.
		colW := s / rect.H
		y := rect.Y
		for i, a := range row {
			h := a / colW
			out[i] = Rect{X: rect.X, Y: y, W: colW, H: h}
			y += h
		}
	} else {
		// Row against the top edge, cells laid left to right.
		rowH := s / rect.W
		x := rect.X
		for i, a := range row {
			w := a / rowH
			out[i] = Rect{X: x, Y: rect.Y, W: w, H: rowH}
			x += w
		}
	}
}

// shrink removes the strip consumed by a laid-out row from rect.
func shrink(rect Rect, consumed float64) Rect {
	if rect.W >= rect.H {
		colW := consumed / rect.H
		return Rect{X: rect.X + colW, Y: rect.Y, W: rect.W - colW, H: rect.H}
	}
	rowH := consumed / rect.W
	return Rect{X: rect.X, Y: rect.Y + rowH, W: rect.W, H: rect.H - rowH}
}

// renderTreemap draws a two-level treemap: branches (stages) first, then each
// branch's leaves (teams) inside the branch cell.
func (r *PlotRenderer) renderTreemap(s Spec) ([]byte, error) {
	p := newPlot(s)
	p.HideAxes()

	branches := make([]Branch, len(s.Branches))
	copy(branches, s.Branches)
	for i := range branches {
		leaves := make([]Leaf, len(branches[i].Leaves))
		copy(leaves, branches[i].Leaves)
		sort.SliceStable(leaves, func(a, b int) bool { return leaves[a].Value > leaves[b].Value })
		branches[i].Leaves = leaves
	}
	sort.SliceStable(branches, func(a, b int) bool {
		return branchTotal(branches[a]) > branchTotal(branches[b])
	})

	totals := make([]float64, len(branches))
	for i, b := range branches {
		totals[i] = branchTotal(b)
	}
	bounds := Rect{X: 0, Y: 0, W: 100, H: 62}
	branchRects := Squarify(totals, bounds)

	var labelXYs plotter.XYs
	var labels []string
	for i, b := range branches {
		br := branchRects[i]
		if br.area() == 0 {
			continue
		}
		values := make([]float64, len(b.Leaves))
		for j, l := range b.Leaves {
			values[j] = l.Value
		}
		leafRects := Squarify(values, br)
		for j, l := range b.Leaves {
			lr := leafRects[j]
			if lr.area() == 0 {
				continue
			}
			cell, err := plotter.NewPolygon(rectXYs(lr))
			if err != nil {
				return nil, fmt.Errorf("treemap cell: %w", err)
			}
			cell.Color = leafColor(i, j, len(b.Leaves))
			cell.LineStyle.Color = color.White
			cell.LineStyle.Width = vg.Points(1)
			p.Add(cell)
			// Label only cells with room for text.
			if lr.W > 9 && lr.H > 3.5 {
				labelXYs = append(labelXYs, plotter.XY{X: lr.X + lr.W/2, Y: lr.Y + lr.H/2})
				labels = append(labels, fmt.Sprintf("%s (%.0f)", l.Label, l.Value))
			}
		}
		// One legend entry per branch keeps the stage level readable.
		if len(b.Leaves) > 0 {
			swatch, err := plotter.NewPolygon(rectXYs(Rect{X: br.X, Y: br.Y, W: 1, H: 1}))
			if err == nil {
				swatch.Color = leafColor(i, 0, len(b.Leaves))
				p.Legend.Add(b.Label, swatch)
			}
		}
	}

	if len(labels) > 0 {
		names, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
		if err != nil {
			return nil, fmt.Errorf("treemap labels: %w", err)
		}
		p.Add(names)
	} else if len(branches) == 0 {
		r.log.Warn("treemap has no branches, rendering empty")
		addNoDataLabel(p)
	}

	p.Legend.Top = true
	p.X.Min, p.X.Max = bounds.X, bounds.X+bounds.W
	p.Y.Min, p.Y.Max = bounds.Y, bounds.Y+bounds.H+8 // headroom for the legend
	return encodePNG(p, 10*vg.Inch, 6*vg.Inch)
}

func branchTotal(b Branch) float64 {
	t := 0.0
	for _, l := range b.Leaves {
		t += l.Value
	}
	return t
}

func rectXYs(r Rect) plotter.XYs {
	return plotter.XYs{
		{X: r.X, Y: r.Y},
		{X: r.X + r.W, Y: r.Y},
		{X: r.X + r.W, Y: r.Y + r.H},
		{X: r.X, Y: r.Y + r.H},
	}
}

// leafColor shades a branch's base hue by leaf rank so sibling cells stay
// distinguishable without a second palette.
func leafColor(branch, leaf, leaves int) color.Color {
	base := sliceColor(branch).(color.RGBA)
	if leaves <= 1 {
		return base
	}
	f := 1 - 0.5*float64(leaf)/float64(leaves-1)
	blend := func(c uint8) uint8 {
		return uint8(255 - f*(255-float64(c)))
	}
	return color.RGBA{R: blend(base.R), G: blend(base.G), B: blend(base.B), A: 255}
}
