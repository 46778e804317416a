// Package converter rasterizes floor-plan geometry into an occupancy matrix and
// maps points between the continuous plane and grid cells.
//
// What:
//
//   - New computes the padded bounding box of every finite wall corner and
//     product-section vertex, validates it and derives the grid dimensions.
//   - CoordToGrid maps a point to the cell containing it, clamping points
//     outside the bounds onto the border cells.
//   - GridToCoord maps a cell back to its origin (minimum) corner. It does not
//     return the cell centre; use CellCenter for that.
//   - GenerateGrid fills walls with occupancy.Wall and product zones with their
//     numeric zone code. Fills run in list order, so later entities overwrite
//     earlier ones where they overlap.
//   - FindNearestEmptyCell runs a 4-neighbour BFS from a point to the closest
//     walkable cell.
//
// Grid dimensions:
//
//	Width  = ceil((MaxLng - MinLng) / cellSize)
//	Height = ceil((MaxLat - MinLat) / cellSize)
//
// Errors:
//
//   - ErrInvalidBounds: bounds are non-finite or have no extent (construction).
//   - ErrInvalidDimensions: derived dimensions are non-positive or non-finite.
//   - ErrGridTooLarge: dimensions exceed MaxGridSide per axis or MaxGridCells total.
//   - ErrInvalidPoint: a non-finite point was passed to a transform.
//   - ErrMalformedGeometry: a single wall or zone could not be rasterized. This
//     never fails GenerateGrid; it is reported through Skip diagnostics.
//
// A Converter is immutable after New and safe for concurrent use. Every call to
// GenerateGrid returns a fresh matrix owned by the caller.
//
// Complexity:
//
//   - New:                  O(V) over all input vertices.
//   - GenerateGrid:         O(W×H + Σ filled cells).
//   - FindNearestEmptyCell: O(W×H) worst case.
package converter
