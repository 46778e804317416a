package floorplan

import (
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/floorgrid/geometry"
)

// Point is a document coordinate.
type Point struct {
	Lat float64 `koanf:"lat" yaml:"lat"`
	Lng float64 `koanf:"lng" yaml:"lng"`
}

// Wall is a rectangular obstacle given by two opposite corners. Extra corners
// are ignored.
type Wall struct {
	Corners []Point `koanf:"corners" yaml:"corners"`
}

// Product is a product zone made of one or more sections.
type Product struct {
	ID       string    `koanf:"id" yaml:"id" validate:"required"`
	Name     string    `koanf:"name" yaml:"name"`
	Sections [][]Point `koanf:"sections" yaml:"sections"`
}

// Document is a whole floor plan.
type Document struct {
	Name     string    `koanf:"name" yaml:"name"`
	CellSize float64   `koanf:"cellSize" yaml:"cellSize" validate:"gte=0"`
	Walls    []Wall    `koanf:"walls" yaml:"walls" validate:"dive"`
	Products []Product `koanf:"products" yaml:"products" validate:"dive"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Load reads and validates the YAML document at path.
func Load(path string) (*Document, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read floor plan %s", path)
	}

	doc := new(Document)
	if err := k.Unmarshal("", doc); err != nil {
		return nil, errors.Wrapf(err, "decode floor plan %s", path)
	}
	if err := doc.Validate(); err != nil {
		return nil, errors.Wrapf(err, "floor plan %s", path)
	}

	return doc, nil
}

// Validate checks the document structure.
func (d *Document) Validate() error {
	if err := getValidator().Struct(d); err != nil {
		return errors.Wrap(err, "invalid document")
	}
	return nil
}

// Geometry converts the document into converter input.
func (d *Document) Geometry() ([]geometry.WallSegment, []geometry.ProductZone) {
	walls := make([]geometry.WallSegment, 0, len(d.Walls))
	for _, w := range d.Walls {
		walls = append(walls, w.segment())
	}

	zones := make([]geometry.ProductZone, 0, len(d.Products))
	for _, p := range d.Products {
		sections := make([][]geometry.Coordinate, len(p.Sections))
		for i, section := range p.Sections {
			sections[i] = make([]geometry.Coordinate, len(section))
			for j, c := range section {
				sections[i][j] = c.coordinate()
			}
		}
		zones = append(zones, geometry.ProductZone{ZoneID: p.ID, Sections: sections})
	}

	return walls, zones
}

// Product looks up a product by ID, or by case-insensitive name when no ID
// matches. It also returns the product's index, which the converter uses to
// derive fallback zone codes.
func (d *Document) Product(key string) (Product, int, error) {
	for i, p := range d.Products {
		if p.ID == key {
			return p, i, nil
		}
	}
	for i, p := range d.Products {
		if p.Name != "" && strings.EqualFold(p.Name, key) {
			return p, i, nil
		}
	}

	return Product{}, -1, errors.Errorf("product %q not found", key)
}

// segment uses the first two corners. A wall with fewer keeps its slot with
// non-finite corners, so the converter skips it and reports its index.
func (w Wall) segment() geometry.WallSegment {
	if len(w.Corners) < 2 {
		missing := geometry.Coordinate{Lat: math.NaN(), Lng: math.NaN()}
		return geometry.WallSegment{From: missing, To: missing}
	}

	return geometry.WallSegment{From: w.Corners[0].coordinate(), To: w.Corners[1].coordinate()}
}

func (p Point) coordinate() geometry.Coordinate {
	return geometry.Coordinate{Lat: p.Lat, Lng: p.Lng}
}
