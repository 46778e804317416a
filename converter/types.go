package converter

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/geometry"
	"github.com/katalvlaran/floorgrid/occupancy"
)

// Sentinel errors.
var (
	// ErrInvalidBounds indicates non-finite or degenerate plan bounds.
	ErrInvalidBounds = errors.New("converter: invalid bounds")
	// ErrInvalidDimensions indicates non-positive or non-finite grid dimensions.
	ErrInvalidDimensions = errors.New("converter: invalid grid dimensions")
	// ErrGridTooLarge indicates the derived grid exceeds the size caps.
	ErrGridTooLarge = errors.New("converter: grid too large")
	// ErrInvalidPoint indicates a non-finite input to a coordinate transform.
	ErrInvalidPoint = errors.New("converter: invalid point")
	// ErrMalformedGeometry indicates a wall or zone that cannot be rasterized.
	ErrMalformedGeometry = errors.New("converter: malformed geometry")
)

const (
	// DefaultCellSize replaces a non-finite or non-positive cell size.
	DefaultCellSize = 10.0
	// MinCellSize is the smallest accepted cell size.
	MinCellSize = 0.1
	// MaxGridSide caps the grid width and height.
	MaxGridSide = 10000
	// MaxGridCells caps Width×Height.
	MaxGridCells = MaxGridSide * MaxGridSide
	// LargeSpan is the coordinate span above which New emits WarnLargeSpan.
	LargeSpan = 1000.0
	// FallbackZoneBase is added to a zone's list index when its ID is unusable.
	FallbackZoneBase = 999
)

// GridInfo summarises a converter's grid.
type GridInfo struct {
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	CellSize   float64         `json:"cellSize"`
	Bounds     geometry.Bounds `json:"bounds"`
	TotalCells int             `json:"totalCells"`
}

// NearestCell is the result of FindNearestEmptyCell. Distance is the BFS depth.
type NearestCell struct {
	occupancy.Point
	Distance int `json:"distance"`
}

// WarningKind classifies a construction warning.
type WarningKind int

const (
	// WarnNoData: no finite coordinate was found; DefaultBounds are used.
	WarnNoData WarningKind = iota
	// WarnLargeSpan: a coordinate span exceeds LargeSpan.
	WarnLargeSpan
)

func (k WarningKind) String() string {
	switch k {
	case WarnNoData:
		return "no-data"
	case WarnLargeSpan:
		return "large-span"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal construction diagnostic.
type Warning struct {
	Kind    WarningKind
	Message string
}

// EntityKind names the kind of entity a Skip refers to.
type EntityKind string

const (
	EntityWall EntityKind = "wall"
	EntityZone EntityKind = "zone"
)

// Skip reports one wall, zone or zone section left out of a generated grid.
// Section is -1 when the whole entity was skipped.
type Skip struct {
	Kind    EntityKind
	Index   int
	Section int
	Err     error
}

func (s Skip) Error() string {
	if s.Section < 0 {
		return fmt.Sprintf("%s %d: %v", s.Kind, s.Index, s.Err)
	}
	return fmt.Sprintf("%s %d section %d: %v", s.Kind, s.Index, s.Section, s.Err)
}

// Unwrap exposes the underlying cause.
func (s Skip) Unwrap() error { return s.Err }

// Option configures a Converter.
type Option func(*Options)

// Options holds diagnostics sinks for a Converter.
type Options struct {
	// Logger receives warnings and skip diagnostics.
	Logger *zap.Logger
	// OnWarning is called for every construction warning.
	OnWarning func(Warning)
	// OnSkip is called for every entity GenerateGrid leaves out.
	OnSkip func(Skip)
}

// DefaultOptions returns Options with a no-op logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		OnWarning: func(Warning) {},
		OnSkip:    func(Skip) {},
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnWarning registers a construction-warning callback.
func WithOnWarning(fn func(Warning)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWarning = fn
		}
	}
}

// WithOnSkip registers a callback for entities skipped during rasterization.
func WithOnSkip(fn func(Skip)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSkip = fn
		}
	}
}
