package converter

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/geometry"
	"github.com/katalvlaran/floorgrid/occupancy"
)

// Result bundles everything a caller needs after a one-shot conversion.
type Result struct {
	Grid      *occupancy.Matrix
	Info      GridInfo
	Converter *Converter
}

// Convert builds a Converter, generates its grid and collects its info in one
// step. Nil slices are treated as empty and cellSize is normalised as in New.
func Convert(walls []geometry.WallSegment, zones []geometry.ProductZone, cellSize float64, opts ...Option) (*Result, error) {
	c, err := New(walls, zones, cellSize, opts...)
	if err != nil {
		return nil, err
	}
	grid, err := c.GenerateGrid()
	if err != nil {
		return nil, err
	}
	info := c.Info()

	c.logger().Info("grid generated",
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
		zap.Int("total_cells", info.TotalCells),
		zap.Float64("cell_size", info.CellSize),
		zap.Any("bounds", info.Bounds),
	)

	return &Result{Grid: grid, Info: info, Converter: c}, nil
}
