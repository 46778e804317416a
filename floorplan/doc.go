// Package floorplan reads floor-plan documents: the walls and product zones an
// editor exports, plus an optional cell size.
//
// Documents are YAML:
//
//	name: ground floor
//	cellSize: 10
//	walls:
//	  - corners: [{lat: 0, lng: 0}, {lat: 200, lng: 5}]
//	products:
//	  - id: "42"
//	    name: Coffee
//	    sections:
//	      - [{lat: 20, lng: 30}, {lat: 20, lng: 40}, {lat: 25, lng: 40}, {lat: 25, lng: 30}]
//
// Load validates only what the whole document depends on: every product has
// an id and the cell size is not negative. Individual walls and sections are
// not judged. A wall with fewer than two corners, an empty section, a product
// without sections and non-finite numbers such as .nan all pass through to
// the converter, which skips the affected entity, reports it and keeps the
// rest of the plan.
package floorplan
