// Package geo loads the world-boundary GeoJSON consumed by the choropleth
// chart and resolves dataset team names to map regions.
package geo

import (
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Region is one named boundary: a set of polygon rings in lon/lat order.
type Region struct {
	Name  string
	Rings [][][2]float64
}

// Atlas is an in-memory index of named world regions.
type Atlas struct {
	regions []Region
	byName  map[string]int
}

// aliases maps team names as recorded in the match data to the region names
// common world GeoJSON files use. Lookups fall back to the raw name first.
var aliases = map[string]string{
	"usa":            "united states of america",
	"england":        "united kingdom",
	"germany fr":     "germany",
	"korea republic": "south korea",
}

// LoadAtlas reads a GeoJSON FeatureCollection from disk. The region name is
// taken from the "name" property, falling back to "admin".
func LoadAtlas(path string) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	return ParseAtlas(data)
}

// ParseAtlas builds an Atlas from raw GeoJSON bytes.
func ParseAtlas(data []byte) (*Atlas, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse geojson: %w", err)
	}
	a := &Atlas{byName: make(map[string]int, len(fc.Features))}
	for _, f := range fc.Features {
		name := propertyName(f)
		if name == "" {
			continue
		}
		rings := flatten(f.Geometry)
		if len(rings) == 0 {
			continue
		}
		a.byName[normalize(name)] = len(a.regions)
		a.regions = append(a.regions, Region{Name: name, Rings: rings})
	}
	return a, nil
}

// Regions returns every region in file order.
func (a *Atlas) Regions() []Region {
	return a.regions
}

// Lookup resolves a team or nation name to its map region, applying the alias
// table when the raw name has no direct match.
func (a *Atlas) Lookup(name string) (Region, bool) {
	key := normalize(name)
	if i, ok := a.byName[key]; ok {
		return a.regions[i], true
	}
	if alias, ok := aliases[key]; ok {
		if i, ok := a.byName[alias]; ok {
			return a.regions[i], true
		}
	}
	return Region{}, false
}

func propertyName(f *geojson.Feature) string {
	for _, key := range []string{"name", "admin", "NAME", "ADMIN"} {
		if v, ok := f.Properties[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func flatten(g orb.Geometry) [][][2]float64 {
	switch geom := g.(type) {
	case orb.Polygon:
		return polygonRings(geom)
	case orb.MultiPolygon:
		var rings [][][2]float64
		for _, p := range geom {
			rings = append(rings, polygonRings(p)...)
		}
		return rings
	default:
		return nil
	}
}

func polygonRings(p orb.Polygon) [][][2]float64 {
	rings := make([][][2]float64, 0, len(p))
	for _, ring := range p {
		pts := make([][2]float64, len(ring))
		for i, pt := range ring {
			pts[i] = [2]float64{pt.Lon(), pt.Lat()}
		}
		rings = append(rings, pts)
	}
	return rings
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
