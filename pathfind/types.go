package pathfind

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/occupancy"
)

// ErrNilGrid is returned when SetGrid receives a nil matrix.
var ErrNilGrid = errors.New("pathfind: grid is nil")

// Path is an ordered list of cells from start to goal, both included.
// An empty Path means the goal is unreachable.
type Path []occupancy.Point

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p) }

// Steps returns the number of moves, Len()-1, or 0 for an empty path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Target is the winning candidate of a multi-target query.
type Target struct {
	// Index is the candidate's position in the input slice.
	Index int
	// Cell is the candidate cell the path ends on.
	Cell occupancy.Point
	// Path runs from the start to Cell.
	Path Path
}

// Option configures a Finder.
type Option func(*Options)

// Options holds Finder settings.
type Options struct {
	// Logger receives per-query debug records.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
