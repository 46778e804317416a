package occupancy

import "errors"

// Sentinel errors for matrix construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("occupancy: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("occupancy: all rows must have the same length")
)

const (
	// Walkable marks free floor.
	Walkable = 0
	// Wall marks a permanently blocked cell.
	Wall = 1
)

// Point is a grid cell: X is the column, Y the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Neighbors4 lists the orthogonal neighbour offsets in the order every search
// in this module visits them: up, down, left, right. Together with FIFO
// tie-breaking this order fixes which of several equal-length paths is
// returned, so it must not change.
var Neighbors4 = [4]Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Passability is a read-only view of which cells a walker may enter.
type Passability interface {
	Width() int
	Height() int
	// Passable reports whether (x,y) may be entered. Out-of-range cells are
	// never passable.
	Passable(x, y int) bool
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
