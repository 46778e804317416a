package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/floorgrid/converter"
	"github.com/katalvlaran/floorgrid/occupancy"
	"github.com/katalvlaran/floorgrid/pathfind"
)

// gridDocument is the JSON form of the grid command's output.
type gridDocument struct {
	Info     converter.GridInfo `json:"info"`
	Warnings []string           `json:"warnings,omitempty"`
	Cells    [][]int            `json:"cells"`
}

func handleGrid(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	common := registerCommon(fs)
	asJSON := fs.Bool("json", false, "Print info and cells as JSON")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse grid flags")
	}

	s, err := open(common)
	if err != nil {
		return err
	}
	defer s.close()

	info := s.res.Info
	if *asJSON {
		doc := gridDocument{Info: info, Cells: s.res.Grid.Rows()}
		for _, w := range s.res.Converter.Warnings() {
			doc.Warnings = append(doc.Warnings, w.Kind.String()+": "+w.Message)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(doc), "failed to encode grid")
	}

	fmt.Fprintf(out, "grid %dx%d cells=%d cell=%g\n", info.Width, info.Height, info.TotalCells, info.CellSize)
	fmt.Fprintf(out, "bounds lat [%g, %g] lng [%g, %g]\n",
		info.Bounds.MinLat, info.Bounds.MaxLat, info.Bounds.MinLng, info.Bounds.MaxLng)
	for _, w := range s.res.Converter.Warnings() {
		fmt.Fprintf(out, "warning %s: %s\n", w.Kind, w.Message)
	}
	fmt.Fprintln(out, s.res.Grid.String())

	return nil
}

func handleNearest(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("nearest", flag.ContinueOnError)
	common := registerCommon(fs)
	at := fs.String("at", "", "Point as lat,lng")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse nearest flags")
	}

	pt, err := parseCoordinate(*at)
	if err != nil {
		return err
	}

	s, err := open(common)
	if err != nil {
		return err
	}
	defer s.close()

	s.noteOutside(out, pt)
	near, ok := s.res.Converter.FindNearestEmptyCell(pt.Lat, pt.Lng, s.res.Grid)
	if !ok {
		return errors.Errorf("no walkable cell near %g,%g", pt.Lat, pt.Lng)
	}

	c := s.res.Converter.CellCenter(near.Point)
	fmt.Fprintf(out, "cell (%d,%d) distance %d center %g,%g\n", near.X, near.Y, near.Distance, c.Lat, c.Lng)

	return nil
}

func handleRoute(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	common := registerCommon(fs)
	from := fs.String("from", "", "Start point as lat,lng")
	zone := fs.String("zone", "", "Product id or name")
	timeout := fs.Duration("timeout", 5*time.Second, "Search timeout")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse route flags")
	}
	if *zone == "" {
		return errors.New("route: -zone is required")
	}

	pt, err := parseCoordinate(*from)
	if err != nil {
		return err
	}

	s, err := open(common)
	if err != nil {
		return err
	}
	defer s.close()

	product, idx, err := s.doc.Product(*zone)
	if err != nil {
		return err
	}
	code := converter.ZoneCode(product.ID, idx)
	targets := s.res.Grid.ZoneCells(code)
	if len(targets) == 0 {
		return errors.Errorf("product %q (code %d) covers no cells", product.ID, code)
	}

	s.noteOutside(out, pt)
	start, ok := s.res.Converter.FindNearestEmptyCell(pt.Lat, pt.Lng, s.res.Grid)
	if !ok {
		return errors.Errorf("no walkable cell near %g,%g", pt.Lat, pt.Lng)
	}

	reachable, positions := reachableTargets(s.res.Grid, start.Point, targets)
	if len(reachable) == 0 {
		return errors.Errorf("product %q is unreachable from %g,%g: start and zone are in different regions",
			product.ID, pt.Lat, pt.Lng)
	}

	finder := pathfind.New(pathfind.WithLogger(s.log.Named("pathfind")))
	if err := finder.SetGrid(s.res.Grid); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	target, found, err := finder.FindNearestTargetContext(ctx, start.Point, reachable)
	if err != nil {
		return errors.Wrap(err, "route search")
	}
	if !found {
		return errors.Errorf("product %q is unreachable from %g,%g", product.ID, pt.Lat, pt.Lng)
	}
	target.Index = positions[target.Index]

	s.log.Info("route found",
		zap.String("zone", product.ID),
		zap.Int("code", code),
		zap.Int("candidates", len(targets)),
		zap.Int("reachable", len(reachable)),
		zap.Int("steps", target.Path.Steps()),
	)

	fmt.Fprintf(out, "zone %s code %d cells %d\n", product.ID, code, len(targets))
	fmt.Fprintf(out, "start (%d,%d) snapped %d\n", start.X, start.Y, start.Distance)
	fmt.Fprintf(out, "target %d cell (%d,%d) steps %d\n", target.Index, target.Cell.X, target.Cell.Y, target.Path.Steps())
	printPath(out, s.res.Converter, target.Path)

	return nil
}

// reachableTargets keeps the targets that border the walkable region holding
// start, together with their positions in targets. Targets are entered from a
// floor cell, so a target with no neighbour in that region cannot be reached.
func reachableTargets(m *occupancy.Matrix, start occupancy.Point, targets []occupancy.Point) ([]occupancy.Point, []int) {
	var region map[occupancy.Point]struct{}
	for _, r := range m.WalkableRegions() {
		if !slices.Contains(r, start) {
			continue
		}
		region = make(map[occupancy.Point]struct{}, len(r))
		for _, p := range r {
			region[p] = struct{}{}
		}
		break
	}
	if region == nil {
		return nil, nil
	}

	var (
		out       []occupancy.Point
		positions []int
	)
	for i, t := range targets {
		for _, d := range occupancy.Neighbors4 {
			if _, ok := region[t.Add(d)]; ok {
				out = append(out, t)
				positions = append(positions, i)
				break
			}
		}
	}

	return out, positions
}

func printPath(out io.Writer, conv *converter.Converter, path pathfind.Path) {
	for _, p := range path {
		c := conv.CellCenter(p)
		fmt.Fprintf(out, "  %s %g,%g\n", cellLabel(p), c.Lat, c.Lng)
	}
}

func cellLabel(p occupancy.Point) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
