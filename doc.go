// Package floorgrid turns store floor plans into occupancy grids and walks
// them with A*.
//
// 🚀 What is floorgrid?
//
//	A small, dependency-light toolkit that brings together:
//		• Geometry: coordinates, wall rectangles, product-zone sections, bounds (orb)
//		• Conversion: plan coordinates <-> grid cells, rasterization, nearest empty cell
//		• Occupancy: the integer matrix, 4-neighbour offsets, walkable regions, overlays
//		• Pathfinding: deterministic A* with snapshot swap and nearest-of-many targets
//		• Plans: YAML floor-plan documents loaded through koanf and validated
//
// Under the hood the code is organized as:
//
//	geometry/        plan-space types and bounding boxes
//	occupancy/       Matrix, Point, Passability, Overlay
//	converter/       Converter: bounds, transforms, GenerateGrid, FindNearestEmptyCell
//	pathfind/        Finder: SetGrid, FindPath, FindNearestTarget
//	floorplan/       YAML documents -> geometry
//	cmd/floorgrid/   grid, route and nearest commands
//
// Cell values: 0 walkable, 1 wall, anything else a product-zone code.
// Cells are addressed (x, y) = (column, row); x grows with longitude and y
// with latitude.
//
// Quick ASCII example (cell size 1, one wall, zone 42):
//
//	y0  0 0 0 0  0  0
//	y1  0 1 0 0 42 42
//	y2  0 1 0 0 42 42
//	y3  0 1 0 0  0  0
//
// Entry points: converter.Convert, pathfind.New, floorplan.Load.
package floorgrid
