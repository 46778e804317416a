package converter

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/occupancy"
)

// nearestOffsets is the BFS expansion order: +x, -x, +y, -y.
var nearestOffsets = [4]occupancy.Point{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// FindNearestEmptyCell searches outward from the cell containing (lat, lng)
// for the closest cell of m holding occupancy.Walkable. Distance is the BFS
// depth over 4-neighbours, capped at max(Width, Height).
//
// ok is false when no walkable cell lies within the cap, when m is nil, or
// when the point cannot be converted.
func (c *Converter) FindNearestEmptyCell(lat, lng float64, m *occupancy.Matrix) (NearestCell, bool) {
	if m == nil {
		return NearestCell{}, false
	}
	start, err := c.CoordToGrid(lat, lng)
	if err != nil {
		c.logger().Debug("nearest empty cell: point not convertible", zap.Error(err))
		return NearestCell{}, false
	}

	type item struct {
		p    occupancy.Point
		dist int
	}
	maxDist := max(c.width, c.height)
	seen := make([]bool, c.width*c.height)
	seen[start.Y*c.width+start.X] = true
	queue := []item{{p: start}}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur.dist > maxDist {
			break
		}
		if m.InBounds(cur.p.X, cur.p.Y) && m.At(cur.p.X, cur.p.Y) == occupancy.Walkable {
			return NearestCell{Point: cur.p, Distance: cur.dist}, true
		}
		for _, d := range nearestOffsets {
			n := cur.p.Add(d)
			if n.X < 0 || n.X >= c.width || n.Y < 0 || n.Y >= c.height {
				continue
			}
			idx := n.Y*c.width + n.X
			if seen[idx] {
				continue
			}
			seen[idx] = true
			queue = append(queue, item{p: n, dist: cur.dist + 1})
		}
	}

	return NearestCell{}, false
}
