// Package pathfind runs obstacle-aware shortest-path queries over an occupancy
// grid.
//
// The search is 4-directional A* with unit step cost and the Manhattan
// heuristic |x1-x2| + |y1-y2|, which is admissible and consistent on a uniform
// grid, so returned paths are shortest.
//
// Determinism:
//
//	The open set is a binary heap ordered by (f, seq), where seq is the order
//	in which an entry was pushed. Among nodes with equal f the earliest
//	discovered is expanded first, and neighbours are always generated in the
//	order up, down, left, right (occupancy.Neighbors4). Identical inputs give
//	identical paths.
//
// Encoding:
//
//	Finder.SetGrid reads an occupancy.Matrix: code 0 is passable, any other
//	code blocks. Internally the snapshot is a flat passability bitmap; Search
//	itself works on any occupancy.Passability.
//
// Unreachable goals, out-of-range endpoints and blocked endpoints all yield an
// empty Path and no error. The only errors are context cancellation and
// ErrNilGrid.
//
// Multi-target queries:
//
//	A product usually occupies several zone cells, all blocked for transit.
//	FindNearestTarget opens one candidate at a time with an occupancy.Overlay
//	(no grid copy), searches to it, and keeps the shortest result. Ties go to
//	the earliest candidate.
//
// Concurrency:
//
//	A Finder may be queried from many goroutines. SetGrid publishes a new
//	immutable snapshot through an atomic pointer; in-flight searches keep the
//	snapshot they started with.
//
// Complexity:
//
//   - Search: O(N log N) time, O(N) memory, N = W×H in the worst case.
//   - FindNearestTarget: K searches for K candidates.
package pathfind
