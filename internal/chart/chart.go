// Package chart turns summary tables into rendered images. The Renderer
// interface is the only thing the report pipeline depends on, so everything
// upstream of rendering stays testable without a plotting backend.
package chart

import (
	"fmt"

	"github.com/matchframe/cupstats/internal/geo"
)

// Kind selects one of the six chart types the report uses.
type Kind string

const (
	KindLine       Kind = "line"
	KindPie        Kind = "pie"
	KindBar        Kind = "bar"
	KindTreemap    Kind = "treemap"
	KindChoropleth Kind = "choropleth"
	KindBox        Kind = "box"
)

// Point is one x/y value of a time-series chart.
type Point struct {
	X, Y float64
}

// Slice is one labeled share of a pie chart. Values are percentages.
type Slice struct {
	Label string
	Value float64
}

// Bar is one labeled value of a ranked bar chart, in display order.
type Bar struct {
	Label string
	Value float64
}

// Leaf is a terminal treemap cell.
type Leaf struct {
	Label string
	Value float64
}

// Branch is a first-level treemap group with its terminal cells.
type Branch struct {
	Label  string
	Leaves []Leaf
}

// RegionValue assigns a value to a named map region. HasData false marks a
// region that must be painted with the explicit no-data fill.
type RegionValue struct {
	Name    string
	Value   float64
	HasData bool
}

// Box is one category of a boxplot with its full distribution.
type Box struct {
	Label  string
	Values []float64
}

// Spec describes a chart: the kind plus the payload that kind consumes.
// Identical specs render to identical images.
type Spec struct {
	Kind   Kind
	Title  string
	XLabel string
	YLabel string

	Points   []Point
	Slices   []Slice
	Bars     []Bar
	Branches []Branch
	Regions  []RegionValue
	Boxes    []Box
}

// Renderer produces a PNG image from a chart spec. Implementations must
// degrade partial data to explicit no-data markers instead of failing.
type Renderer interface {
	Render(s Spec) ([]byte, error)
}

// RegionSource resolves named regions to boundary polygons for the
// choropleth. A nil source degrades the map chart, it does not abort it.
type RegionSource interface {
	Regions() []geo.Region
	Lookup(name string) (geo.Region, bool)
}

func unknownKind(k Kind) error {
	return fmt.Errorf("unknown chart kind %q", k)
}
