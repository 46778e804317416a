package pathfind

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/occupancy"
)

// Finder answers path queries against the most recently set grid.
type Finder struct {
	snap atomic.Pointer[snapshot]
	opts Options
}

// New returns a Finder with no grid. Queries return empty paths until SetGrid
// is called.
func New(opts ...Option) *Finder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Finder{opts: o}
}

// SetGrid replaces the Finder's grid with a passability snapshot of m: code 0
// is passable, every other code blocks. m is not retained, so later changes to
// it do not affect the Finder.
func (f *Finder) SetGrid(m *occupancy.Matrix) error {
	if m == nil {
		return ErrNilGrid
	}
	f.snap.Store(newSnapshot(m))
	f.logger().Debug("grid snapshot published",
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
	)

	return nil
}

// FindPath returns a shortest path from start to goal, or an empty Path when
// no grid is set, an endpoint is out of range or blocked, or the goal is
// unreachable.
func (f *Finder) FindPath(start, goal occupancy.Point) Path {
	path, _ := f.FindPathContext(context.Background(), start, goal)
	return path
}

// FindPathContext is FindPath with cancellation. The only error it returns is
// ctx.Err().
func (f *Finder) FindPathContext(ctx context.Context, start, goal occupancy.Point) (Path, error) {
	s := f.snap.Load()
	if s == nil {
		return nil, nil
	}

	return f.run(ctx, s, start, goal)
}

// FindNearestTarget searches from start to each candidate in turn, with only
// that candidate opened on top of the grid, and returns the shortest path
// found. Ties keep the earliest candidate. ok is false when no candidate is
// reachable.
func (f *Finder) FindNearestTarget(start occupancy.Point, candidates []occupancy.Point) (Target, bool) {
	t, ok, _ := f.FindNearestTargetContext(context.Background(), start, candidates)
	return t, ok
}

// FindNearestTargetContext is FindNearestTarget with cancellation.
func (f *Finder) FindNearestTargetContext(ctx context.Context, start occupancy.Point, candidates []occupancy.Point) (Target, bool, error) {
	s := f.snap.Load()
	if s == nil {
		return Target{}, false, nil
	}

	best := Target{Index: -1}
	for i, c := range candidates {
		path, err := f.run(ctx, occupancy.Open(s, c), start, c)
		if err != nil {
			return Target{}, false, err
		}
		if len(path) == 0 {
			continue
		}
		if best.Index < 0 || len(path) < len(best.Path) {
			best = Target{Index: i, Cell: c, Path: path}
		}
	}
	if best.Index < 0 {
		f.logger().Debug("no candidate reachable",
			zap.Int("candidates", len(candidates)),
			zap.Int("start_x", start.X),
			zap.Int("start_y", start.Y),
		)
		return Target{}, false, nil
	}

	return best, true, nil
}

func (f *Finder) run(ctx context.Context, grid occupancy.Passability, start, goal occupancy.Point) (Path, error) {
	path, expanded, err := search(ctx, grid, start, goal)
	if err != nil {
		f.logger().Debug("path search aborted", zap.Int("expanded", expanded), zap.Error(err))
		return nil, err
	}
	f.logger().Debug("path search",
		zap.Int("start_x", start.X),
		zap.Int("start_y", start.Y),
		zap.Int("goal_x", goal.X),
		zap.Int("goal_y", goal.Y),
		zap.Int("expanded", expanded),
		zap.Int("length", len(path)),
	)

	return path, nil
}

// logger returns the configured logger, or a no-op one for a zero Finder.
func (f *Finder) logger() *zap.Logger {
	if f.opts.Logger == nil {
		return zap.NewNop()
	}
	return f.opts.Logger
}

// snapshot is an immutable passability bitmap.
type snapshot struct {
	width, height int
	open          []bool
}

func newSnapshot(m *occupancy.Matrix) *snapshot {
	w, h := m.Width(), m.Height()
	s := &snapshot{width: w, height: h, open: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.open[y*w+x] = m.At(x, y) == occupancy.Walkable
		}
	}

	return s
}

func (s *snapshot) Width() int  { return s.width }
func (s *snapshot) Height() int { return s.height }

func (s *snapshot) Passable(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height && s.open[y*s.width+x]
}
