package pathfind

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/floorgrid/occupancy"
)

// Search finds a shortest 4-directional path from start to goal over grid.
//
// Returns an empty Path when either endpoint is out of range or impassable,
// or when the goal cannot be reached. Returns ctx.Err() if ctx is cancelled
// mid-search. grid is only read.
func Search(ctx context.Context, grid occupancy.Passability, start, goal occupancy.Point) (Path, error) {
	path, _, err := search(ctx, grid, start, goal)
	return path, err
}

// search is Search plus the number of expanded nodes.
func search(ctx context.Context, grid occupancy.Passability, start, goal occupancy.Point) (Path, int, error) {
	w, h := grid.Width(), grid.Height()
	inRange := func(p occupancy.Point) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}
	if !inRange(start) || !inRange(goal) {
		return nil, 0, nil
	}
	if !grid.Passable(start.X, start.Y) || !grid.Passable(goal.X, goal.Y) {
		return nil, 0, nil
	}

	s := newSearchState(w*h, w)
	s.discover(start, 0, -1, start.Manhattan(goal))
	goalIdx := s.index(goal)
	expanded := 0

	for s.open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, expanded, ctx.Err()
		default:
		}

		cur := heap.Pop(&s.open).(*pathNode)
		if s.closed[cur.idx] || cur.g > s.g[cur.idx] {
			continue // stale entry
		}
		s.closed[cur.idx] = true
		expanded++

		if cur.idx == goalIdx {
			return s.reconstruct(goalIdx), expanded, nil
		}

		p := s.point(cur.idx)
		for _, d := range occupancy.Neighbors4 {
			n := p.Add(d)
			if !inRange(n) || !grid.Passable(n.X, n.Y) {
				continue
			}
			ni := s.index(n)
			if s.closed[ni] {
				continue
			}
			ng := cur.g + 1
			if s.g[ni] >= 0 && ng >= s.g[ni] {
				continue
			}
			s.discover(n, int(ng), cur.idx, n.Manhattan(goal))
		}
	}

	return nil, expanded, nil
}

// searchState is the mutable state of one A* run. Indices are row-major and
// fit int32 because grids are capped at 10^8 cells.
type searchState struct {
	width  int
	g      []int32 // best known cost from start, -1 if undiscovered
	parent []int32 // predecessor index, -1 for the start
	closed []bool
	open   openSet
	seq    uint64
}

func newSearchState(n, width int) *searchState {
	s := &searchState{
		width:  width,
		g:      make([]int32, n),
		parent: make([]int32, n),
		closed: make([]bool, n),
		open:   make(openSet, 0, 64),
	}
	for i := range s.g {
		s.g[i] = -1
		s.parent[i] = -1
	}
	heap.Init(&s.open)

	return s
}

// discover records a better route to p and pushes it onto the open set.
func (s *searchState) discover(p occupancy.Point, g, parent, h int) {
	idx := s.index(p)
	s.g[idx] = int32(g)
	s.parent[idx] = int32(parent)
	heap.Push(&s.open, &pathNode{idx: idx, g: int32(g), f: int32(g + h), seq: s.seq})
	s.seq++
}

// reconstruct walks parent links back from goal and returns the path in
// start-to-goal order.
func (s *searchState) reconstruct(goal int) Path {
	n := int(s.g[goal]) + 1
	path := make(Path, n)
	for at := int32(goal); at >= 0; at = s.parent[at] {
		n--
		path[n] = s.point(int(at))
	}

	return path
}

func (s *searchState) index(p occupancy.Point) int {
	return p.Y*s.width + p.X
}

func (s *searchState) point(idx int) occupancy.Point {
	return occupancy.Point{X: idx % s.width, Y: idx / s.width}
}

// pathNode is an open-set entry. h is folded into f; parent lives in
// searchState so stale entries need no cleanup.
type pathNode struct {
	idx int
	g   int32
	f   int32
	seq uint64 // push order, breaks ties on f
}

// openSet is a min-heap of *pathNode ordered by (f, seq). Improved nodes are
// pushed again and the outdated entries skipped when popped.
type openSet []*pathNode

// Len returns the number of entries in the heap.
func (o openSet) Len() int { return len(o) }

// Less orders by f, then by discovery order.
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}

// Swap swaps two entries.
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Push appends x; called by heap.Push.
func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*pathNode)) }

// Pop removes the last entry; called by heap.Pop.
func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]

	return item
}
