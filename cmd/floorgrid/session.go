package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/converter"
	"github.com/katalvlaran/floorgrid/floorplan"
	"github.com/katalvlaran/floorgrid/geometry"
	"github.com/katalvlaran/floorgrid/internal/config"
	"github.com/katalvlaran/floorgrid/internal/logger"
)

// session is a loaded plan with its generated grid.
type session struct {
	log *zap.Logger
	doc *floorplan.Document
	res *converter.Result
}

// open resolves settings, loads the plan and rasterizes it.
// Cell size precedence: -cell flag, then the plan's cellSize, then config.
func open(common commonFlags) (*session, error) {
	cfg, err := config.Load(*common.config)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if *common.level != "" {
		level = *common.level
	}
	log, err := logger.New(level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build logger")
	}

	path := cfg.Plan
	if *common.plan != "" {
		path = *common.plan
	}
	if path == "" {
		return nil, errors.New("no floor plan given: use -plan or FLOORGRID_PLAN")
	}

	doc, err := floorplan.Load(path)
	if err != nil {
		return nil, err
	}

	cellSize := cfg.CellSize
	switch {
	case *common.cell > 0:
		cellSize = *common.cell
	case doc.CellSize > 0:
		cellSize = doc.CellSize
	}

	walls, zones := doc.Geometry()
	res, err := converter.Convert(walls, zones, cellSize,
		converter.WithLogger(log.Named("converter")),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert %s", path)
	}

	return &session{log: log, doc: doc, res: res}, nil
}

// noteOutside reports a point that lies outside the plan bounds. Such points
// snap to the nearest border cell.
func (s *session) noteOutside(out io.Writer, c geometry.Coordinate) {
	if s.res.Info.Bounds.Contains(c) {
		return
	}
	s.log.Warn("point outside plan bounds", zap.Float64("lat", c.Lat), zap.Float64("lng", c.Lng))
	fmt.Fprintf(out, "point %g,%g is outside the plan bounds, snapped to the border\n", c.Lat, c.Lng)
}

func (s *session) close() {
	_ = s.log.Sync()
}

// parseCoordinate parses "lat,lng".
func parseCoordinate(v string) (geometry.Coordinate, error) {
	lat, lng, ok := strings.Cut(v, ",")
	if !ok {
		return geometry.Coordinate{}, errors.Errorf("coordinate %q: want lat,lng", v)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return geometry.Coordinate{}, errors.Wrapf(err, "coordinate %q: latitude", v)
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return geometry.Coordinate{}, errors.Wrapf(err, "coordinate %q: longitude", v)
	}

	c := geometry.Coordinate{Lat: la, Lng: ln}
	if !c.Finite() {
		return geometry.Coordinate{}, errors.Errorf("coordinate %q is not finite", v)
	}

	return c, nil
}
