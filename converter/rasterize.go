package converter

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/geometry"
	"github.com/katalvlaran/floorgrid/occupancy"
)

// GenerateGrid rasterizes the converter's geometry into a new matrix.
//
// Behavior:
//  1. Allocate Height×Width cells set to occupancy.Walkable.
//  2. For each wall, fill the cell range covered by its rectangle with
//     occupancy.Wall.
//  3. For each zone, resolve its code with ZoneCode and fill the cell range of
//     every section's bounding box with it.
//
// Ranges are inclusive and clipped to the matrix. A wall, zone or section that
// cannot be rasterized is skipped and reported through OnSkip and the logger;
// the rest of the plan is still drawn. The only error is ErrInvalidDimensions
// for a Converter that was not built with New.
func (c *Converter) GenerateGrid() (*occupancy.Matrix, error) {
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.width, c.height)
	}
	m, err := occupancy.New(c.width, c.height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}

	for i, w := range c.walls {
		if err := c.fillWall(m, w); err != nil {
			c.skip(Skip{Kind: EntityWall, Index: i, Section: -1, Err: err})
		}
	}

	for i, z := range c.zones {
		if len(z.Sections) == 0 {
			c.skip(Skip{Kind: EntityZone, Index: i, Section: -1,
				Err: fmt.Errorf("%w: zone %q has no sections", ErrMalformedGeometry, z.ZoneID)})
			continue
		}
		code := ZoneCode(z.ZoneID, i)
		for s, section := range z.Sections {
			if err := c.fillRect(m, section, code); err != nil {
				c.skip(Skip{Kind: EntityZone, Index: i, Section: s, Err: err})
			}
		}
	}

	return m, nil
}

// ZoneCode resolves the cell code of the zone at position index in the zone
// list. A zone ID that parses as a decimal integer greater than occupancy.Wall
// is used as is; anything else falls back to FallbackZoneBase+index, keeping
// zone codes positive and distinct from walkable and wall cells.
//
// The whole trimmed ID must be numeric. An ID with a numeric prefix such as
// "12abc" is not read as 12: it gets the fallback code, so look such zones up
// with ZoneCode rather than by their leading digits.
func ZoneCode(zoneID string, index int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(zoneID)); err == nil && v > occupancy.Wall {
		return v
	}

	return FallbackZoneBase + index
}

func (c *Converter) fillWall(m *occupancy.Matrix, w geometry.WallSegment) error {
	if !w.Finite() {
		return fmt.Errorf("%w: wall corner %+v - %+v is not finite", ErrMalformedGeometry, w.From, w.To)
	}

	return c.fillRect(m, w.Corners(), occupancy.Wall)
}

// fillRect fills the cell range of the bounding box of the finite corners.
func (c *Converter) fillRect(m *occupancy.Matrix, corners []geometry.Coordinate, code int) error {
	b, ok := geometry.BoundOf(corners)
	if !ok {
		return fmt.Errorf("%w: no finite vertex among %d", ErrMalformedGeometry, len(corners))
	}
	lo, err := c.CoordToGrid(b.Bottom(), b.Left())
	if err != nil {
		return err
	}
	hi, err := c.CoordToGrid(b.Top(), b.Right())
	if err != nil {
		return err
	}
	m.FillRect(lo.X, lo.Y, hi.X, hi.Y, code)

	return nil
}

func (c *Converter) skip(s Skip) {
	c.logger().Warn("skipping entity during rasterization",
		zap.String("kind", string(s.Kind)),
		zap.Int("index", s.Index),
		zap.Int("section", s.Section),
		zap.Error(s.Err),
	)
	c.opts.OnSkip(s)
}
