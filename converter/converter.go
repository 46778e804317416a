package converter

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/geometry"
)

// Converter maps a fixed set of walls and product zones onto a grid.
// It is immutable once built.
type Converter struct {
	walls    []geometry.WallSegment
	zones    []geometry.ProductZone
	cellSize float64
	bounds   geometry.Bounds
	width    int
	height   int
	warnings []Warning
	opts     Options
}

// New builds a Converter for the given geometry.
//
// Steps:
//  1. A non-finite or non-positive cellSize becomes DefaultCellSize; values
//     below MinCellSize are raised to it.
//  2. Bounds are the union bbox of finite wall corners and section vertices,
//     padded by max(cellSize, 1). With no finite data, DefaultBounds are used.
//  3. Non-finite or degenerate bounds fail with ErrInvalidBounds.
//  4. A span above LargeSpan on either axis emits WarnLargeSpan.
//  5. Width/Height come from ceiling division; invalid values fail with
//     ErrInvalidDimensions, oversized grids with ErrGridTooLarge.
//
// The input slices are copied.
func New(walls []geometry.WallSegment, zones []geometry.ProductZone, cellSize float64, opts ...Option) (*Converter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Converter{
		walls:    append([]geometry.WallSegment(nil), walls...),
		zones:    copyZones(zones),
		cellSize: normalizeCellSize(cellSize),
		opts:     o,
	}

	bounds, ok := geometry.PlanBounds(c.walls, c.zones, math.Max(c.cellSize, 1))
	if !ok {
		c.warn(WarnNoData, "no finite coordinate data found, using default bounds")
	}
	if err := c.validateBounds(bounds); err != nil {
		return nil, err
	}
	c.bounds = bounds

	if err := c.deriveDimensions(); err != nil {
		return nil, err
	}

	return c, nil
}

// validateBounds rejects non-finite or empty bounds and warns on large spans.
func (c *Converter) validateBounds(b geometry.Bounds) error {
	if !b.Finite() {
		return fmt.Errorf("%w: non-finite values in %+v", ErrInvalidBounds, b)
	}
	if b.Degenerate() {
		return fmt.Errorf("%w: max must be greater than min in %+v", ErrInvalidBounds, b)
	}
	if b.LatSpan() > LargeSpan || b.LngSpan() > LargeSpan {
		c.warn(WarnLargeSpan, fmt.Sprintf(
			"very large coordinate range (lat %.0f, lng %.0f), consider a larger cell size",
			b.LatSpan(), b.LngSpan()))
	}

	return nil
}

// deriveDimensions computes width and height and enforces the size caps.
func (c *Converter) deriveDimensions() error {
	w := math.Ceil(c.bounds.LngSpan() / c.cellSize)
	h := math.Ceil(c.bounds.LatSpan() / c.cellSize)
	if math.IsNaN(w) || math.IsNaN(h) || math.IsInf(w, 0) || math.IsInf(h, 0) || w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, w, h)
	}
	if w > MaxGridSide || h > MaxGridSide {
		return fmt.Errorf("%w: %.0fx%.0f, maximum allowed %dx%d", ErrGridTooLarge, w, h, MaxGridSide, MaxGridSide)
	}
	if w*h > MaxGridCells {
		return fmt.Errorf("%w: %.0f total cells, consider a larger cell size", ErrGridTooLarge, w*h)
	}
	c.width, c.height = int(w), int(h)

	return nil
}

func (c *Converter) warn(kind WarningKind, msg string) {
	w := Warning{Kind: kind, Message: msg}
	c.warnings = append(c.warnings, w)
	c.logger().Warn(msg, zap.Stringer("kind", kind))
	c.opts.OnWarning(w)
}

// logger returns the configured logger, or a no-op one for a zero Converter.
func (c *Converter) logger() *zap.Logger {
	if c.opts.Logger == nil {
		return zap.NewNop()
	}
	return c.opts.Logger
}

// Width returns the number of grid columns.
func (c *Converter) Width() int { return c.width }

// Height returns the number of grid rows.
func (c *Converter) Height() int { return c.height }

// CellSize returns the effective cell edge length.
func (c *Converter) CellSize() float64 { return c.cellSize }

// Bounds returns the padded plan bounds.
func (c *Converter) Bounds() geometry.Bounds { return c.bounds }

// Warnings returns the construction warnings, oldest first.
func (c *Converter) Warnings() []Warning {
	return append([]Warning(nil), c.warnings...)
}

// Info summarises the grid.
func (c *Converter) Info() GridInfo {
	return GridInfo{
		Width:      c.width,
		Height:     c.height,
		CellSize:   c.cellSize,
		Bounds:     c.bounds,
		TotalCells: c.width * c.height,
	}
}

func normalizeCellSize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return DefaultCellSize
	}
	if v < MinCellSize {
		return MinCellSize
	}

	return v
}

func copyZones(zones []geometry.ProductZone) []geometry.ProductZone {
	out := make([]geometry.ProductZone, len(zones))
	for i, z := range zones {
		sections := make([][]geometry.Coordinate, len(z.Sections))
		for s, section := range z.Sections {
			sections[s] = append([]geometry.Coordinate(nil), section...)
		}
		out[i] = geometry.ProductZone{ZoneID: z.ZoneID, Sections: sections}
	}

	return out
}
