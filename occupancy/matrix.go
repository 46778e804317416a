package occupancy

import (
	"strconv"
	"strings"
)

// Matrix is a Height×Width grid of cell codes.
type Matrix struct {
	width, height int
	cells         [][]int
}

// New allocates a width×height matrix of Walkable cells.
// Returns ErrEmptyGrid if either dimension is not positive.
func New(width, height int) (*Matrix, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
	}

	return &Matrix{width: width, height: height, cells: cells}, nil
}

// FromRows builds a Matrix from a non-empty, rectangular [][]int (rows indexed
// by y). The input is deep-copied.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
func FromRows(rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], rows[y])
	}

	return &Matrix{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Cells returns Width×Height.
func (m *Matrix) Cells() int { return m.width * m.height }

// InBounds reports whether (x,y) lies within the matrix.
func (m *Matrix) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the code at (x,y). The cell must be in bounds.
func (m *Matrix) At(x, y int) int {
	return m.cells[y][x]
}

// Set stores v at (x,y). Out-of-range writes are ignored.
func (m *Matrix) Set(x, y, v int) {
	if !m.InBounds(x, y) {
		return
	}
	m.cells[y][x] = v
}

// Passable reports whether (x,y) is in bounds and Walkable.
func (m *Matrix) Passable(x, y int) bool {
	return m.InBounds(x, y) && m.cells[y][x] == Walkable
}

// FillRect writes v into every cell of the inclusive range [x0..x1]×[y0..y1],
// clipped to the matrix. Reversed ranges are normalised.
func (m *Matrix) FillRect(x0, y0, x1, y1, v int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	x0, x1 = max(x0, 0), min(x1, m.width-1)
	y0, y1 = max(y0, 0), min(y1, m.height-1)
	for y := y0; y <= y1; y++ {
		row := m.cells[y]
		for x := x0; x <= x1; x++ {
			row[x] = v
		}
	}
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	cells := make([][]int, m.height)
	for y := range cells {
		cells[y] = make([]int, m.width)
		copy(cells[y], m.cells[y])
	}

	return &Matrix{width: m.width, height: m.height, cells: cells}
}

// Rows returns a deep copy of the cells as [][]int, rows indexed by y, for
// callers that serialise or hand the grid on.
func (m *Matrix) Rows() [][]int {
	return m.Clone().cells
}

// Count returns how many cells hold code v.
func (m *Matrix) Count(v int) int {
	n := 0
	for _, row := range m.cells {
		for _, c := range row {
			if c == v {
				n++
			}
		}
	}

	return n
}

// ZoneCells lists every cell holding code in row-major order.
func (m *Matrix) ZoneCells(code int) []Point {
	var out []Point
	for y, row := range m.cells {
		for x, c := range row {
			if c == code {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}

	return out
}

// String renders the matrix one row per line, codes separated by spaces.
func (m *Matrix) String() string {
	var sb strings.Builder
	for y, row := range m.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(c))
		}
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Matrix) index(x, y int) int {
	return y*m.width + x
}

// Coordinate converts a row-major index back to a Point.
func (m *Matrix) Coordinate(idx int) Point {
	return Point{X: idx % m.width, Y: idx / m.width}
}
