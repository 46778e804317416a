// Package geometry holds the continuous-plane input model of a floor plan:
// coordinates, wall rectangles, product zones and their bounding boxes.
//
// What:
//
//   - Coordinate is a plain (Lat, Lng) pair. No projection is applied; the two
//     axes are treated as Cartesian, Lng horizontal and Lat vertical.
//   - WallSegment is an axis-aligned obstacle described by two opposite corners.
//   - ProductZone tags one or more polygon sections with a zone identifier.
//     Only the bounding box of each section is ever used.
//   - Bounds is the padded union bounding box of a whole plan.
//
// Bounding boxes are computed with github.com/paulmach/orb; a Coordinate maps to
// orb.Point{Lng, Lat}.
//
// Non-finite values (NaN, ±Inf) never contribute to a bounding box. Entities made
// only of non-finite values are reported as not ok rather than failing, so that a
// caller can skip them and keep going.
package geometry
