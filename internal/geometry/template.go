package geometry

import (
	"fmt"
	"strings"
)

// HitMode selects how a template's containment test is built.
type HitMode string

const (
	HitPolygon HitMode = "polygon"
	HitRaster  HitMode = "raster"
)

// Decode implements envconfig.Decoder.
func (m *HitMode) Decode(value string) error {
	mode := HitMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case HitPolygon, HitRaster:
		*m = mode
		return nil
	default:
		return fmt.Errorf("unknown hit mode %q", value)
	}
}

// Template is the shared, read-only description new shapes are built from.
type Template struct {
	Outline Outline
	Origin  Point // minimum corner of Outline
	Width   float64
	Height  float64
	Tester  Tester
}

// NewTemplate validates o and builds its containment test.
func NewTemplate(o Outline, mode HitMode) (Template, error) {
	if len(o) < 3 {
		return Template{}, ErrDegenerateOutline
	}

	lo, hi := o.Extent()
	t := Template{
		Outline: o.Clone(),
		Origin:  lo,
		Width:   hi.X - lo.X,
		Height:  hi.Y - lo.Y,
	}

	switch mode {
	case HitPolygon, "":
		t.Tester = NewPolygonTester(o)
	case HitRaster:
		t.Tester = NewRasterTester(o)
	default:
		return Template{}, fmt.Errorf("unknown hit mode %q", mode)
	}
	return t, nil
}

// DefaultTemplate is ShipOutline with the exact polygon test.
func DefaultTemplate() Template {
	t, err := NewTemplate(ShipOutline, HitPolygon)
	if err != nil {
		panic(err)
	}
	return t
}
