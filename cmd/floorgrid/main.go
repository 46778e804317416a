package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - grid:    Rasterize a floor plan and print the occupancy matrix
// - route:   Shortest walk from a point to any cell of a product zone
// - nearest: Closest walkable cell to a point

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string, out io.Writer) error {
	switch name {
	case "grid":
		return handleGrid(args, out)
	case "route":
		return handleRoute(ctx, args, out)
	case "nearest":
		return handleNearest(args, out)
	case "help", "-h", "--help":
		printUsage(out)

		return nil
	default:
		printUsage(os.Stderr)

		return errors.Errorf("unknown subcommand %q", name)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: floorgrid <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  grid     -plan store.yaml [-cell 10]")
	fmt.Fprintln(w, "  route    -plan store.yaml -from lat,lng -zone 42 [-timeout 5s]")
	fmt.Fprintln(w, "  nearest  -plan store.yaml -at lat,lng")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Common flags: -config file.yaml, -log level, -cell size.")
	fmt.Fprintln(w, "Environment: FLOORGRID_PLAN, FLOORGRID_CELL_SIZE, FLOORGRID_LOG_LEVEL.")
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	config *string
	plan   *string
	level  *string
	cell   *float64
}

func registerCommon(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config: fs.String("config", "", "Optional YAML config file"),
		plan:   fs.String("plan", "", "Floor plan YAML (overrides FLOORGRID_PLAN)"),
		level:  fs.String("log", "", "Log level (overrides FLOORGRID_LOG_LEVEL)"),
		cell:   fs.Float64("cell", 0, "Cell size in plan units (overrides the plan and FLOORGRID_CELL_SIZE)"),
	}
}
