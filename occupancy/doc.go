// Package occupancy models the discrete occupancy matrix produced from a floor
// plan and consumed by the pathfinder.
//
// Cell codes:
//
//   - Walkable (0): free floor.
//   - Wall (1): permanently blocked.
//   - any other positive integer: a product zone identifier. Zone cells block
//     general transit but can be opened one at a time as a search destination.
//
// Matrix is indexed m.At(x, y) with x the column (0..Width-1) and y the row
// (0..Height-1). Matrices built with FromRows deep-copy their input, and Clone
// returns an independent copy, so a producer can hand out matrices without
// exposing its own storage.
//
// Passability is the read-only view the search algorithms need. Matrix
// implements it directly (only code 0 is passable); Overlay layers a few opened
// cells over any Passability without copying it.
//
// Complexity:
//
//   - FromRows, Clone, Equal: O(W×H) time and memory.
//   - ZoneCells:              O(W×H) time.
//   - WalkableRegions:        O(W×H×4) time, O(W×H) memory.
package occupancy
