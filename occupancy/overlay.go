package occupancy

// Overlay is a copy-on-write view over a base Passability: the listed cells are
// passable regardless of the base, everything else defers to it. It lets a
// caller open a single destination cell without cloning the whole grid.
type Overlay struct {
	base Passability
	open []Point
}

// Open returns an Overlay of base with the in-range cells in pts opened.
func Open(base Passability, pts ...Point) Overlay {
	open := make([]Point, 0, len(pts))
	for _, p := range pts {
		if p.X >= 0 && p.X < base.Width() && p.Y >= 0 && p.Y < base.Height() {
			open = append(open, p)
		}
	}

	return Overlay{base: base, open: open}
}

// Width returns the base width.
func (o Overlay) Width() int { return o.base.Width() }

// Height returns the base height.
func (o Overlay) Height() int { return o.base.Height() }

// Passable reports whether (x,y) is opened by the overlay or passable in the base.
func (o Overlay) Passable(x, y int) bool {
	for _, p := range o.open {
		if p.X == x && p.Y == y {
			return true
		}
	}

	return o.base.Passable(x, y)
}
