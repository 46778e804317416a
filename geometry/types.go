package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a point in the continuous plane.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Finite reports whether both components are finite numbers.
func (c Coordinate) Finite() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

// Point converts c to an orb.Point (X = Lng, Y = Lat).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// WallSegment is an axis-aligned rectangular obstacle spanned by two opposite
// corners. Corner order does not matter.
type WallSegment struct {
	From Coordinate `json:"from" yaml:"from"`
	To   Coordinate `json:"to" yaml:"to"`
}

// Finite reports whether both corners are finite.
func (w WallSegment) Finite() bool {
	return w.From.Finite() && w.To.Finite()
}

// Corners expands the two defining corners into the four corners of the
// rectangle, in ring order starting at From.
func (w WallSegment) Corners() []Coordinate {
	return []Coordinate{
		{Lat: w.From.Lat, Lng: w.From.Lng},
		{Lat: w.From.Lat, Lng: w.To.Lng},
		{Lat: w.To.Lat, Lng: w.To.Lng},
		{Lat: w.To.Lat, Lng: w.From.Lng},
	}
}

// ProductZone is a product area made of one or more sections. Each section is
// an ordered list of corners; several disjoint sections model discontiguous
// shelf areas of the same product.
type ProductZone struct {
	ZoneID   string         `json:"zoneId" yaml:"zoneId"`
	Sections [][]Coordinate `json:"sections" yaml:"sections"`
}

// Bounds is an axis-aligned bounding box in the continuous plane.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// DefaultBounds is used when a plan carries no finite coordinate at all.
var DefaultBounds = Bounds{MinLat: 0, MaxLat: 100, MinLng: 0, MaxLng: 100}

// Finite reports whether every edge of b is finite.
func (b Bounds) Finite() bool {
	return isFinite(b.MinLat) && isFinite(b.MaxLat) && isFinite(b.MinLng) && isFinite(b.MaxLng)
}

// Degenerate reports whether b has no positive extent on some axis.
func (b Bounds) Degenerate() bool {
	return !(b.MaxLat > b.MinLat) || !(b.MaxLng > b.MinLng)
}

// LatSpan returns MaxLat - MinLat.
func (b Bounds) LatSpan() float64 { return b.MaxLat - b.MinLat }

// LngSpan returns MaxLng - MinLng.
func (b Bounds) LngSpan() float64 { return b.MaxLng - b.MinLng }

// Contains reports whether c lies inside b, edges included.
func (b Bounds) Contains(c Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat && c.Lng >= b.MinLng && c.Lng <= b.MaxLng
}

// FromBound converts an orb.Bound to Bounds.
func FromBound(b orb.Bound) Bounds {
	return Bounds{MinLat: b.Bottom(), MaxLat: b.Top(), MinLng: b.Left(), MaxLng: b.Right()}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
