package geometry

import "github.com/paulmach/orb"

// BoundOf returns the bounding box of the finite coordinates in cs.
// ok is false when cs has no finite coordinate.
func BoundOf(cs []Coordinate) (b orb.Bound, ok bool) {
	mp := make(orb.MultiPoint, 0, len(cs))
	for _, c := range cs {
		if c.Finite() {
			mp = append(mp, c.Point())
		}
	}
	if len(mp) == 0 {
		return orb.Bound{}, false
	}

	return mp.Bound(), true
}

// PlanBounds computes the union bounding box of every finite wall corner and
// every finite product-section vertex, then pads it by padding on every side.
// When nothing finite is found it returns DefaultBounds and ok=false.
//
// A wall contributes each finite corner on its own, so a wall with one
// non-finite corner still widens the box by its other corner.
func PlanBounds(walls []WallSegment, zones []ProductZone, padding float64) (b Bounds, ok bool) {
	var (
		acc  orb.Bound
		seen bool
	)
	extend := func(c Coordinate) {
		if !c.Finite() {
			return
		}
		if !seen {
			acc = c.Point().Bound()
			seen = true
			return
		}
		acc = acc.Extend(c.Point())
	}

	for _, w := range walls {
		extend(w.From)
		extend(w.To)
	}
	for _, z := range zones {
		for _, section := range z.Sections {
			for _, c := range section {
				extend(c)
			}
		}
	}
	if !seen {
		return DefaultBounds, false
	}

	return FromBound(acc.Pad(padding)), true
}
