package converter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/floorgrid/geometry"
	"github.com/katalvlaran/floorgrid/occupancy"
)

// CoordToGrid returns the cell containing (lat, lng). Points outside the
// bounds snap to the nearest border cell.
// Returns ErrInvalidPoint for non-finite input.
func (c *Converter) CoordToGrid(lat, lng float64) (occupancy.Point, error) {
	if !finite(lat) || !finite(lng) {
		return occupancy.Point{}, fmt.Errorf("%w: lat=%v, lng=%v", ErrInvalidPoint, lat, lng)
	}
	if c.width <= 0 || c.height <= 0 {
		return occupancy.Point{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.width, c.height)
	}
	x := math.Floor((lng - c.bounds.MinLng) / c.cellSize)
	y := math.Floor((lat - c.bounds.MinLat) / c.cellSize)

	return occupancy.Point{X: clampIndex(x, c.width-1), Y: clampIndex(y, c.height-1)}, nil
}

// GridToCoord returns the origin (minimum) corner of cell (x, y):
//
//	lng = MinLng + x*cellSize
//	lat = MinLat + y*cellSize
//
// Fractional and out-of-range cells are extrapolated, not clamped.
// Returns ErrInvalidPoint for non-finite input.
func (c *Converter) GridToCoord(x, y float64) (geometry.Coordinate, error) {
	if !finite(x) || !finite(y) {
		return geometry.Coordinate{}, fmt.Errorf("%w: x=%v, y=%v", ErrInvalidPoint, x, y)
	}

	return geometry.Coordinate{
		Lat: c.bounds.MinLat + y*c.cellSize,
		Lng: c.bounds.MinLng + x*c.cellSize,
	}, nil
}

// CellOrigin is GridToCoord for an integer cell.
func (c *Converter) CellOrigin(p occupancy.Point) geometry.Coordinate {
	return geometry.Coordinate{
		Lat: c.bounds.MinLat + float64(p.Y)*c.cellSize,
		Lng: c.bounds.MinLng + float64(p.X)*c.cellSize,
	}
}

// CellCenter returns the centre of cell p, half a cell past its origin.
func (c *Converter) CellCenter(p occupancy.Point) geometry.Coordinate {
	o := c.CellOrigin(p)
	half := c.cellSize / 2

	return geometry.Coordinate{Lat: o.Lat + half, Lng: o.Lng + half}
}

// clampIndex clamps v into [0, hi] before converting, so huge values never
// overflow int.
func clampIndex(v float64, hi int) int {
	if v < 0 {
		return 0
	}
	if v > float64(hi) {
		return hi
	}

	return int(v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
