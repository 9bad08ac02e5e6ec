package geometry

import (
	"errors"
	"fmt"

	"github.com/jonas-p/go-shp"
)

var ErrNoPolygon = errors.New("shapefile contains no polygon")

// LoadShapefile reads the outer ring of the first polygon in an ESRI shapefile.
// Shapefiles use a y-up axis, so y is negated to land in screen space.
func LoadShapefile(path string) (Outline, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shapefile %q: %w", path, err)
	}
	defer r.Close()

	for r.Next() {
		_, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok || len(poly.Points) == 0 {
			continue
		}

		start, end := 0, len(poly.Points)
		if len(poly.Parts) > 0 {
			start = int(poly.Parts[0])
		}
		if len(poly.Parts) > 1 {
			end = int(poly.Parts[1])
		}

		ring := make(Outline, 0, end-start)
		for _, p := range poly.Points[start:end] {
			ring = append(ring, Point{X: p.X, Y: -p.Y})
		}
		if len(ring) < 3 {
			return nil, fmt.Errorf("shapefile %q: %w", path, ErrDegenerateOutline)
		}
		return ring, nil
	}

	return nil, fmt.Errorf("shapefile %q: %w", path, ErrNoPolygon)
}
